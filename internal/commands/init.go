package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/store"
)

func newInitCommand() *cobra.Command {
	var name, address, phone, email, currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new tillbook shop",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := config.Default(name)
			cfg.Business.Address = address
			cfg.Business.Phone = phone
			cfg.Business.Email = email
			if currency != "" {
				cfg.Business.Currency = currency
			}

			return runInit(absDir, cfg)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&address, "address", "", "business address")
	cmd.Flags().StringVar(&phone, "phone", "", "business phone")
	cmd.Flags().StringVar(&email, "email", "", "business email")
	cmd.Flags().StringVar(&currency, "currency", "", "currency symbol")

	return cmd
}

func runInit(dir string, cfg *config.Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, "tillbook.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.MkdirAll(resolve(dir, cfg.Paths.Exports), 0o755); err != nil {
		return fmt.Errorf("creating exports dir: %w", err)
	}

	// Create the database with its schema up front.
	st, err := store.Open(resolve(dir, cfg.Paths.Database))
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	if err := st.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	fmt.Printf("Initialized %s at %s\n", cfg.Business.Name, dir)
	return nil
}
