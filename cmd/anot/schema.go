package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the preferences file",
	Long: `Print the JSON Schema of the preferences file.

Point your editor at it to get completion and validation:
  anot schema > ~/.config/agent_notifications/a-notifications.schema.json`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(true)
	if err != nil {
		return errors.Wrap(err, "failed to generate schema")
	}

	_, err = cmd.OutOrStdout().Write(data)

	return errors.Wrap(err, "failed to write schema")
}
