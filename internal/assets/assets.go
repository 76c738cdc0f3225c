// Package assets holds the files bundled with pets, such as the list of pet
// types offered when creating or editing a pet.
package assets

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"pets-go/internal/pets"
)

//go:embed pettype.json
var defaultPetTypes []byte

// LoadPetTypes reads a JSON array of strings from path.
// An empty path reads the built-in pettype.json.
func LoadPetTypes(path string) ([]string, error) {
	data := defaultPetTypes
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading pet types: %w", err)
		}
	}

	var types []string
	if err := json.Unmarshal(data, &types); err != nil {
		return nil, fmt.Errorf("parsing pet types from %q: %w", describe(path), err)
	}
	return types, nil
}

// PetTypesOrEmpty is LoadPetTypes for display code: any failure is logged and
// an empty list is returned.
func PetTypesOrEmpty(path string, logger pets.Logger) []string {
	types, err := LoadPetTypes(path)
	if err != nil {
		if logger != nil {
			logger.Error("failed to load pet types", "path", describe(path), "error", err)
		}
		return []string{}
	}
	return types
}

func describe(path string) string {
	if path == "" {
		return "built-in pettype.json"
	}
	return path
}
