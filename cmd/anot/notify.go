package main

import (
	"context"
	"io"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/smykla-skalski/anot/internal/exec"
	"github.com/smykla-skalski/anot/internal/hookresponse"
	"github.com/smykla-skalski/anot/internal/icon"
	"github.com/smykla-skalski/anot/internal/notifier"
	"github.com/smykla-skalski/anot/internal/parser"
	"github.com/smykla-skalski/anot/internal/render"
	"github.com/smykla-skalski/anot/internal/xdg"
	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/event"
)

// commandTimeout bounds every external command anot runs.
const commandTimeout = 5 * time.Second

var claudeCmd = &cobra.Command{
	Use:   "claude",
	Short: "Handle a Claude Code hook event",
	Long: `Read one Claude Code hook payload from stdin, show a desktop
notification for it and answer with a hook JSON response on stdout.

Register it with: anot init claude`,
	Args: cobra.NoArgs,
	RunE: runClaude,
}

var codexCmd = &cobra.Command{
	Use:   "codex [json]",
	Short: "Handle a Codex notify event",
	Long: `Show a desktop notification for a Codex notify payload. Codex passes
the payload as the last argument; without one it is read from stdin.

Register it with: anot init codex`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCodex,
}

func init() {
	rootCmd.AddCommand(claudeCmd)
	rootCmd.AddCommand(codexCmd)
}

func runClaude(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	clog := log.With("cmd", "claude")

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return respondFailed(out, errors.Wrap(err, "failed to read stdin"))
	}

	ev, err := parser.Parse(data, agent.ProtocolHook)
	if err != nil {
		clog.Error("rejected hook payload", "error", err.Error())

		if writeErr := hookresponse.ParseFailed(err).Write(out); writeErr != nil {
			return errors.CombineErrors(err, writeErr)
		}

		return errors.Wrap(err, "failed to parse hook payload")
	}

	remember(ev)

	if _, err := notify(cmd.Context(), ev); err != nil {
		if !errors.Is(err, notifier.ErrDelivery) {
			clog.Error("cannot handle hook event", "kind", ev.Kind(), "error", err.Error())

			return respondFailed(out, err)
		}

		clog.Error("delivery failed", "kind", ev.Kind(), "error", err.Error())

		return hookresponse.DeliveryFailed(err).Write(out)
	}

	clog.Info("notified", "kind", ev.Kind(), "session", ev.SessionID())

	return hookresponse.Success().Write(out)
}

// respondFailed answers the hook with err so stdout always carries one
// response object, then returns err for the exit code.
func respondFailed(out io.Writer, err error) error {
	if writeErr := hookresponse.Failed(err).Write(out); writeErr != nil {
		return errors.CombineErrors(err, writeErr)
	}

	return err
}

func runCodex(cmd *cobra.Command, args []string) error {
	clog := log.With("cmd", "codex")

	var data []byte

	if len(args) == 1 {
		data = []byte(args[0])
	} else {
		var err error

		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "failed to read stdin")
		}
	}

	ev, err := parser.Parse(data, agent.ProtocolNotify)
	if err != nil {
		clog.Error("rejected notify payload", "error", err.Error())

		return errors.Wrap(err, "failed to parse notify payload")
	}

	remember(ev)

	if _, err := notify(cmd.Context(), ev); err != nil {
		if !errors.Is(err, notifier.ErrDelivery) {
			return err
		}

		clog.Error("delivery failed", "kind", ev.Kind(), "error", err.Error())

		return nil
	}

	clog.Info("notified", "kind", ev.Kind(), "session", ev.SessionID())

	return nil
}

// notify loads preferences, then renders and delivers ev.
func notify(ctx context.Context, ev *event.AgentEvent) (*render.Presentation, error) {
	prefs, err := preferencesStore().Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load preferences")
	}

	runner := exec.NewCommandRunner(commandTimeout)
	tools := exec.NewToolChecker()

	platform := render.Platform{
		Kind:    render.PlatformKindFor(runtime.GOOS),
		Bundles: notifier.NewBundleResolver(runtime.GOOS, runner, log),
	}

	n := render.NewNotifier(
		platform,
		prefs,
		notifier.New(runtime.GOOS, runner, tools, log),
		icon.NewStore(xdg.IconsDir()),
		log,
	)

	return n.Notify(ctx, ev)
}

// remember records what is being handled for crash dumps. Payload text is
// left out.
func remember(ev *event.AgentEvent) {
	crashContext.Agent = ev.Agent().String()
	crashContext.EventKind = ev.Kind()
	crashContext.SessionID = ev.SessionID()
}
