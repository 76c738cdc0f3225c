package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"pets-go/internal/app"
	"pets-go/internal/config"
	"pets-go/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func readConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newApp reads the config and creates a PetsApp. The caller must defer app.Close().
func newApp() (*app.PetsApp, error) {
	cfg, err := readConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewPetsApp(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}
	return a, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid pet id %q", arg)
	}
	return id, nil
}

func printPets(list []model.PetModel) {
	if len(list) == 0 {
		fmt.Println("No pets registered.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTYPE\tRACE\tBIRTHDATE")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Type, p.Race, p.Birthdate)
	}
	w.Flush()
}

func printPet(p model.PetModel) {
	fmt.Printf("ID:          %d\n", p.ID)
	fmt.Printf("Name:        %s\n", p.Name)
	fmt.Printf("Type:        %s\n", p.Type)
	fmt.Printf("Race:        %s\n", p.Race)
	fmt.Printf("Birthdate:   %s\n", p.Birthdate)
	fmt.Printf("Description: %s\n", p.Description)
	fmt.Printf("Image:       %s\n", summarizeImage(p.Image))
}

var rootCmd = &cobra.Command{
	Use:          "pets",
	Short:        "Pet registry",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		hostID := uuid.New().String()
		cfg := config.NewConfig(hostID, defaults["base_dir"])

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Host ID: %s\n", hostID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		fmt.Printf("Host ID:   %s\n", cfg.HostID)
		fmt.Printf("Base Dir:  %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:   %s\n", cfg.LogDir)
		fmt.Printf("Log Level: %s\n", cfg.Log.Level)
		fmt.Printf("Database:  %s %s\n", cfg.Database.Type, cfg.Database.DataDir)
		for _, v := range cfg.Vaults {
			fmt.Printf("Vault:     %s (%s)\n", v.Name, v.Type)
		}
		fmt.Printf("Keys:      %s\n", cfg.Encryption.PublicKeyPath)
		return nil
	},
}

// keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage backup encryption keys",
}

var keysInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate the backup key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := readConfig()
		if err != nil {
			return err
		}

		passphrase, err := readNewPassphrase()
		if err != nil {
			return err
		}

		pub, err := app.InitKeys(cfg.Encryption, passphrase)
		if err != nil {
			return err
		}

		fmt.Printf("Keys written to %s\n", cfg.Encryption.PrivateKeyPath)
		if pub != "" {
			fmt.Printf("Public key: %s\n", pub)
		}
		return nil
	},
}

// pet commands
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all pets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.ListPets()
		if err != nil {
			return err
		}
		printPets(list)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a pet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		pet, err := a.GetPet(id)
		if err != nil {
			return err
		}
		printPet(pet)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a pet",
	RunE: func(cmd *cobra.Command, args []string) error {
		var pet model.PetModel
		if err := applyPetFlags(cmd, &pet); err != nil {
			return err
		}
		if pet.Name == "" {
			return fmt.Errorf("--name is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.SavePet(pet); err != nil {
			return err
		}
		fmt.Printf("Added %s\n", pet.Name)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Edit a pet; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		pet, err := a.GetPet(id)
		if err != nil {
			return err
		}
		if err := applyPetFlags(cmd, &pet); err != nil {
			return err
		}
		if err := a.SavePet(pet); err != nil {
			return err
		}
		fmt.Printf("Updated pet %d\n", id)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Remove a pet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		remaining, err := a.DeletePet(id)
		if err != nil {
			return err
		}
		printPets(remaining)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the pet list every time it changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return a.WatchPets(ctx, func(list []model.PetModel) {
			fmt.Printf("-- %s --\n", time.Now().Format("15:04:05"))
			printPets(list)
		})
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the available pet types",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, t := range a.PetTypes() {
			fmt.Println(t)
		}
		return nil
	},
}

// backup command
var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up the registry to the vault",
}

var backupPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload an encrypted snapshot of the registry",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		version, err := a.BackupPush()
		if err != nil {
			return fmt.Errorf("backup failed: %w", err)
		}
		fmt.Printf("Pushed snapshot version %d\n", version)
		return nil
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the snapshot held by the vault",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		st, err := a.BackupStatus()
		if err != nil {
			return err
		}

		fmt.Printf("Host ID: %s\n", st.HostID)
		fmt.Printf("Vault:   %s\n", st.Vault)
		if st.RemoteVersion == 0 {
			fmt.Println("Snapshot: none")
		} else {
			fmt.Printf("Snapshot: version %d (%s)\n", st.RemoteVersion,
				time.Unix(st.RemoteVersion, 0).Format("2006-01-02 15:04:05"))
		}
		if !st.Encrypted {
			fmt.Println("Keys not set up: run 'pets keys init'")
		}
		return nil
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore OUTPUT",
	Short: "Download and decrypt the snapshot into OUTPUT",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		passphrase, err := readPassphrase("Passphrase: ")
		if err != nil {
			return err
		}

		if err := a.BackupRestore(args[0], passphrase); err != nil {
			return fmt.Errorf("restore failed: %w", err)
		}
		fmt.Printf("Restored snapshot to %s\n", args[0])
		return nil
	},
}

func init() {
	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configListCmd)

	keysCmd.AddCommand(keysInitCmd)

	backupCmd.AddCommand(backupPushCmd)
	backupCmd.AddCommand(backupStatusCmd)
	backupCmd.AddCommand(backupRestoreCmd)

	addPetFlags(addCmd)
	addPetFlags(updateCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(typesCmd)
	rootCmd.AddCommand(backupCmd)
}
