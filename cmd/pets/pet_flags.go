package main

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pets-go/internal/model"
)

func addPetFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "Pet name")
	f.String("description", "", "Free-form description")
	f.String("type", "", "Pet type (see 'pets types')")
	f.String("race", "", "Race or breed")
	f.String("birthdate", "", "Birthdate, e.g. 2020-05-01")
	f.String("image", "", "Image as a data URI")
	f.String("image-file", "", "Image file, stored as a data URI")
	cmd.MarkFlagsMutuallyExclusive("image", "image-file")
}

// applyPetFlags copies every flag the user set onto pet. Unset flags leave
// the field alone.
func applyPetFlags(cmd *cobra.Command, pet *model.PetModel) error {
	f := cmd.Flags()
	fields := map[string]*string{
		"name":        &pet.Name,
		"description": &pet.Description,
		"type":        &pet.Type,
		"race":        &pet.Race,
		"birthdate":   &pet.Birthdate,
		"image":       &pet.Image,
	}
	for name, dst := range fields {
		if f.Changed(name) {
			v, err := f.GetString(name)
			if err != nil {
				return err
			}
			*dst = v
		}
	}

	if f.Changed("image-file") {
		path, _ := f.GetString("image-file")
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading image: %w", err)
		}
		pet.Image = dataURI(data)
	}
	return nil
}

// dataURI encodes data as a base64 data URI, sniffing the media type.
func dataURI(data []byte) string {
	mime := http.DetectContentType(data)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// summarizeImage shortens a data URI for display.
func summarizeImage(uri string) string {
	if uri == "" {
		return "(none)"
	}
	head, body, ok := strings.Cut(uri, ",")
	if !ok {
		return fmt.Sprintf("%d bytes", len(uri))
	}
	return fmt.Sprintf("%s (%d bytes encoded)", strings.TrimPrefix(head, "data:"), len(body))
}
