package main

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/crashdump"
	"github.com/smykla-skalski/anot/internal/xdg"
)

const durationDisplayUnits = 2

var keepFlag int

var crashCmd = &cobra.Command{
	Use:   "crash",
	Short: "Manage crash dumps",
	Long: `Manage crash dumps written when anot panics.

Subcommands:
  list   List crash dumps
  clean  Remove old crash dumps`,
}

var crashListCmd = &cobra.Command{
	Use:   "list",
	Short: "List crash dumps",
	Long: `List crash dumps, newest first.

Examples:
  anot crash list`,
	Args: cobra.NoArgs,
	RunE: runCrashList,
}

var crashCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove old crash dumps",
	Long: `Remove all but the newest crash dumps.

Examples:
  anot crash clean            # Remove every dump
  anot crash clean --keep 3   # Keep the three newest`,
	Args: cobra.NoArgs,
	RunE: runCrashClean,
}

func init() {
	rootCmd.AddCommand(crashCmd)
	crashCmd.AddCommand(crashListCmd)
	crashCmd.AddCommand(crashCleanCmd)

	crashCleanCmd.Flags().IntVar(
		&keepFlag,
		"keep",
		0,
		"Number of newest dumps to keep",
	)
}

func crashStorage() (*crashdump.Store, error) {
	storage, err := crashdump.Open(xdg.CrashDumpDir())
	if err != nil {
		return nil, errors.Wrap(err, "failed to open crash dump storage")
	}

	return storage, nil
}

func runCrashList(cmd *cobra.Command, _ []string) error {
	storage, err := crashStorage()
	if err != nil {
		return err
	}

	summaries, err := storage.List()
	if err != nil {
		return errors.Wrap(err, "failed to list crash dumps")
	}

	out := cmd.OutOrStdout()

	if len(summaries) == 0 {
		fmt.Fprintln(out, "No crash dumps found")

		return nil
	}

	fmt.Fprintf(out, "Found %d crash dump(s) in %s:\n\n", len(summaries), xdg.CollapseHome(xdg.CrashDumpDir()))

	for _, s := range summaries {
		fmt.Fprintf(out, "  %s  %s ago  %s\n", s.ID, formatAge(time.Since(s.Timestamp)), humanize.Bytes(uint64(s.Size))) //nolint:gosec // size is never negative
		fmt.Fprintf(out, "    %s\n", s.PanicValue)
	}

	return nil
}

func runCrashClean(cmd *cobra.Command, _ []string) error {
	if keepFlag < 0 {
		return errors.Newf("--keep must not be negative, got %d", keepFlag)
	}

	storage, err := crashStorage()
	if err != nil {
		return err
	}

	removed, err := storage.Prune(keepFlag)
	if err != nil {
		return errors.Wrap(err, "failed to clean crash dumps")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d crash dump(s)\n", removed)

	return nil
}

func formatAge(d time.Duration) string {
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(durationDisplayUnits).String()
}
