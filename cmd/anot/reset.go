package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/xdg"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rewrite the preferences file with defaults",
	Long: `Rewrite the preferences file with defaults.

Use this when the preferences file is invalid or to undo local changes.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	store := preferencesStore()

	if _, err := store.Reset(); err != nil {
		return errors.Wrap(err, "failed to reset preferences")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Preferences reset: %s\n", xdg.CollapseHome(store.Path()))

	return nil
}
