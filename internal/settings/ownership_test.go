package settings_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/pkg/agent"
)

var _ = Describe("Ownership", func() {
	claude := settings.NewOwnership(agent.Claude)
	codex := settings.NewOwnership(agent.Codex)

	DescribeTable("OwnsCommand for Claude",
		func(command string, owned bool) {
			Expect(claude.OwnsCommand(command)).To(Equal(owned))
		},
		Entry("bare name", "anot claude", true),
		Entry("absolute path", "/usr/local/bin/anot claude", true),
		Entry("quoted path with spaces", `'/Users/me/My Tools/anot' claude`, true),
		Entry("double-quoted path", `"/opt/anot/bin/anot" claude`, true),
		Entry("home variable", "$HOME/.local/bin/anot claude", true),
		Entry("flags before subcommand", "anot -d --no-color claude", true),
		Entry("other subcommand", "anot codex", false),
		Entry("echo prefix", "echo anot claude", false),
		Entry("similar binary name", "/opt/notanot claude", false),
		Entry("binary as directory", "/opt/anot/bin/tool claude", false),
		Entry("trailing argument", "anot claude extra", false),
		Entry("positional before subcommand", "anot init claude", false),
		Entry("command list", "anot claude && rm -rf /", false),
		Entry("pipeline", "anot claude | tee log", false),
		Entry("redirect", "anot claude > /tmp/out", false),
		Entry("env assignment", "FOO=1 anot claude", false),
		Entry("command substitution", "$(which anot) claude", false),
		Entry("subcommand alone", "claude", false),
		Entry("empty", "", false),
		Entry("unparsable", "anot 'claude", false),
	)

	DescribeTable("OwnsArgv for Codex",
		func(argv []string, owned bool) {
			Expect(codex.OwnsArgv(argv)).To(Equal(owned))
		},
		Entry("canonical vector", []string{"/usr/local/bin/anot", "codex"}, true),
		Entry("with flag", []string{"anot", "-d", "codex"}, true),
		Entry("foreign notifier", []string{"notify-send", "Codex"}, false),
		Entry("claude subcommand", []string{"anot", "claude"}, false),
		Entry("single element", []string{"anot"}, false),
		Entry("empty", []string{}, false),
	)

	It("recognizes every command line it renders", func() {
		for _, exe := range []string{
			"/usr/local/bin/anot",
			"/Users/me/My Tools/anot",
			"/tmp/it's/anot",
			"anot",
		} {
			line := settings.CommandLine(exe, agent.Claude)
			Expect(claude.OwnsCommand(line)).To(BeTrue(), "command %q", line)
			Expect(codex.OwnsCommand(line)).To(BeFalse(), "command %q", line)
		}
	})

	It("renders the notify vector", func() {
		Expect(settings.CommandArgv("/bin/anot", agent.Codex)).To(Equal([]string{"/bin/anot", "codex"}))
	})
})
