package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func importCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Upload spreadsheet or CSV data",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			return a.requireRoute("/import")
		},
	}

	cmd.AddCommand(importFileCmd(a, "csv"), importFileCmd(a, "excel"))
	return cmd
}

func importFileCmd(a *app, kind string) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <file>",
		Short: "Upload a " + kind + " file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open file: %w", err)
			}
			defer f.Close()

			upload := a.api.ImportCSV
			if kind == "excel" {
				upload = a.api.ImportExcel
			}
			report, err := upload(cmd.Context(), args[0], f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d imported, %d skipped\n", report.Filename, report.Imported, report.Skipped)
			for _, msg := range report.Errors {
				fmt.Fprintf(out, "  ! %s\n", msg)
			}
			return nil
		},
	}
}
