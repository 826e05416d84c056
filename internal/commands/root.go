package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tillbook-dev/tillbook/internal/buildinfo"
	"github.com/tillbook-dev/tillbook/internal/config"
	"github.com/tillbook-dev/tillbook/internal/logger"
	"github.com/tillbook-dev/tillbook/internal/store"
)

type rootOptions struct {
	configPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "tillbook",
		Short:   "Point-of-sale billing and invoicing",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "tillbook.yaml", "path to tillbook.yaml")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newNewCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))
	rootCmd.AddCommand(newPDFCommand(opts))

	return rootCmd
}

// env is everything a store-backed command needs.
type env struct {
	cfg   *config.Config
	store *store.Store
	log   *zap.SugaredLogger
	// resolved relative to the config file's directory
	exportDir string
}

func openEnv(opts *rootOptions) (*env, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	base := filepath.Dir(opts.configPath)
	st, err := store.Open(resolve(base, cfg.Paths.Database))
	if err != nil {
		return nil, err
	}

	log, err := logger.New(opts.verbose)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	return &env{
		cfg:       cfg,
		store:     st,
		log:       log,
		exportDir: resolve(base, cfg.Paths.Exports),
	}, nil
}

func (e *env) close() {
	e.store.Close()
	_ = e.log.Sync()
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
