// Package commands is the cobra CLI driver. It parses arguments,
// builds records, and hands them to the finance manager; no ledger
// logic lives here.
package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/penny-dev/penny/internal/buildinfo"
	"github.com/penny-dev/penny/internal/config"
	"github.com/penny-dev/penny/internal/finance"
	"github.com/penny-dev/penny/internal/storage"
)

// deps carries the flag state shared by subcommands and builds the
// manager on demand.
type deps struct {
	dataFile string // --data override, empty = use config
}

func (d *deps) config() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(config.DefaultFile)
	if err != nil {
		return nil, err
	}
	if d.dataFile != "" {
		cfg.DataFile = d.dataFile
	}
	return cfg, nil
}

func (d *deps) manager() (*finance.Manager, *config.Config, error) {
	cfg, err := d.config()
	if err != nil {
		return nil, nil, err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	mgr, err := finance.NewManager(storage.NewFileStore(cfg.DataFile, log))
	if err != nil {
		return nil, nil, err
	}
	return mgr, cfg, nil
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	d := &deps{}

	rootCmd := &cobra.Command{
		Use:     "penny",
		Short:   "Penny Power Plan - personal finance manager",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&d.dataFile, "data", "", "data file path (overrides penny.yaml)")

	rootCmd.AddCommand(
		newInitCommand(),
		newIncomeCommand(d),
		newExpenseCommand(d),
		newSavingsCommand(d),
		newReportCommand(d),
		newExportCommand(d),
		newImportCommand(d),
	)

	return rootCmd
}
