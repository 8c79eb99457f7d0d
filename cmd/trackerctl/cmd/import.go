package cmd

import (
	"fmt"
	"os"

	"github.com/MichalMitros/marketplace-tracker/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var userID int

	cmd := &cobra.Command{
		Use:   "import <file.xlsx>",
		Short: "Imports items and their keywords of user from spreadsheet.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("can't open %q: %w", args[0], err)
			}
			defer f.Close()

			items, err := importer.Read(f)
			if err != nil {
				return fmt.Errorf("can't read %q: %w", args[0], err)
			}

			imported, err := getEnv(cmd.Context()).Storage.ImportItems(cmd.Context(), userID, items)
			if err != nil {
				return fmt.Errorf("can't import items: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d items\n", imported)
			return nil
		},
	}
	cmd.Flags().IntVar(&userID, "user", 0, "id of items owner")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
