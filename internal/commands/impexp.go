package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(d *deps) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "export <json|csv>",
		Short:     "Export data",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"json", "csv"},
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, cfg, err := d.manager()
			if err != nil {
				return err
			}

			path := file
			if path == "" {
				switch args[0] {
				case "json":
					path = cfg.Export.JSONFile
				case "csv":
					path = cfg.Export.CSVFile
				}
			}

			written, err := mgr.Export(args[0], path)
			if err != nil {
				return err
			}
			fmt.Printf("Data exported to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "output file path")

	return cmd
}

func newImportCommand(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data, replacing the current ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, _, err := d.manager()
			if err != nil {
				return err
			}
			if err := mgr.Import(args[0]); err != nil {
				return err
			}
			fmt.Println("Data imported successfully")
			return nil
		},
	}
	return cmd
}
