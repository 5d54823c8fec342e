package settings_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tidwall/gjson"

	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/pkg/event"
)

const anotCmd = "/usr/local/bin/anot claude"

var _ = Describe("MergeClaude", func() {
	merge := func(doc string, desired ...event.HookEventName) string {
		out, err := settings.MergeClaude([]byte(doc), desired, anotCmd)
		Expect(err).NotTo(HaveOccurred())

		return string(out)
	}

	Context("with an empty document", func() {
		It("adds a PreToolUse group with a match-all matcher", func() {
			out := merge("", event.HookEventPreToolUse)

			Expect(out).To(MatchJSON(`{
				"hooks": {
					"PreToolUse": [
						{"matcher": "*", "hooks": [{"type": "command", "command": "/usr/local/bin/anot claude", "timeout": 10}]}
					]
				}
			}`))
		})

		It("omits the matcher for non-tool events", func() {
			out := merge("{}", event.HookEventStop)

			Expect(gjson.Get(out, "hooks.Stop.0.matcher").Exists()).To(BeFalse())
			Expect(gjson.Get(out, "hooks.Stop.0.hooks.0.command").String()).To(Equal(anotCmd))
		})

		It("returns the input untouched when nothing is desired", func() {
			Expect(merge("")).To(Equal(""))
			Expect(merge("{}\n")).To(Equal("{}\n"))
		})
	})

	Context("with foreign content", func() {
		const doc = `{
  "model": "opus",
  "hooks": {
    "PreToolUse": [
      {"matcher": "Bash", "hooks": [{"type": "command", "command": "my-guard --hook-type PreToolUse"}]}
    ],
    "Stop": [
      {"hooks": [{"type": "command", "command": "echo anot claude"}]}
    ]
  },
  "permissions": {"allow": ["Bash(ls:*)"]}
}`

		It("appends next to foreign groups and keeps them intact", func() {
			out := merge(doc, event.HookEventPreToolUse, event.HookEventStop)

			Expect(gjson.Get(out, "hooks.PreToolUse.#").Int()).To(Equal(int64(2)))
			Expect(gjson.Get(out, "hooks.PreToolUse.0").Raw).To(MatchJSON(
				`{"matcher": "Bash", "hooks": [{"type": "command", "command": "my-guard --hook-type PreToolUse"}]}`,
			))
			Expect(gjson.Get(out, "hooks.PreToolUse.1.hooks.0.command").String()).To(Equal(anotCmd))

			Expect(gjson.Get(out, "hooks.Stop.#").Int()).To(Equal(int64(2)))
			Expect(gjson.Get(out, "hooks.Stop.0.hooks.0.command").String()).To(Equal("echo anot claude"))
		})

		It("preserves unrelated keys and their order", func() {
			out := merge(doc, event.HookEventNotification)

			var keys []string
			gjson.Parse(out).ForEach(func(key, _ gjson.Result) bool {
				keys = append(keys, key.String())

				return true
			})

			Expect(keys).To(Equal([]string{"model", "hooks", "permissions"}))
			Expect(gjson.Get(out, "permissions").Raw).To(MatchJSON(`{"allow": ["Bash(ls:*)"]}`))
			Expect(gjson.Get(out, "hooks.Notification.0.hooks.0.command").String()).To(Equal(anotCmd))
		})

		It("never treats look-alike commands as owned", func() {
			out := merge(doc)

			Expect(out).To(Equal(doc))
		})
	})

	Context("with owned groups", func() {
		owned := func(matcher string) string {
			if matcher == "" {
				return `{"hooks": [{"type": "command", "command": "/old/path/anot claude", "timeout": 10}]}`
			}

			return `{"matcher": "` + matcher + `", "hooks": [{"type": "command", "command": "/old/path/anot claude", "timeout": 10}]}`
		}

		It("leaves an existing owned group alone", func() {
			doc := `{"hooks": {"PreToolUse": [` + owned("*") + `]}}`

			Expect(merge(doc, event.HookEventPreToolUse)).To(Equal(doc))
		})

		It("removes owned groups but keeps foreign ones", func() {
			doc := `{"hooks": {
				"PreToolUse": [{"matcher": "Bash", "hooks": [{"type": "command", "command": "lint.sh"}]}, ` + owned("*") + `],
				"Stop": [` + owned("") + `]
			}}`

			out := merge(doc)

			Expect(out).To(MatchJSON(`{"hooks": {
				"PreToolUse": [{"matcher": "Bash", "hooks": [{"type": "command", "command": "lint.sh"}]}]
			}}`))
		})

		It("deletes hooks when removal empties it", func() {
			doc := `{"model": "opus", "hooks": {"Stop": [` + owned("") + `]}}`

			Expect(merge(doc)).To(MatchJSON(`{"model": "opus"}`))
		})

		It("keeps a hooks object that was already empty", func() {
			doc := `{"hooks": {}}`

			Expect(merge(doc)).To(Equal(doc))
		})

		It("collapses duplicate owned groups", func() {
			doc := `{"hooks": {"Stop": [` + owned("") + `, ` + owned("") + `]}}`

			out := merge(doc, event.HookEventStop)

			Expect(gjson.Get(out, "hooks.Stop.#").Int()).To(Equal(int64(1)))
		})

		It("recognizes flat owned entries", func() {
			doc := `{"hooks": {"Stop": [{"type": "command", "command": "anot claude"}]}}`

			Expect(merge(doc)).To(MatchJSON(`{}`))
		})
	})

	Context("properties", func() {
		docs := []string{
			``,
			`{}`,
			`{"hooks": {"PreToolUse": [{"matcher": "Bash", "hooks": [{"type": "command", "command": "x"}]}]}}`,
			`{"env": {"A": "1"}, "hooks": {"Stop": [{"hooks": [{"type": "command", "command": "anot claude"}]}]}}`,
		}
		sets := [][]event.HookEventName{
			nil,
			{event.HookEventPreToolUse},
			{event.HookEventNotification, event.HookEventStop, event.HookEventSessionEnd},
			event.HookEventNameValues(),
		}

		It("is idempotent", func() {
			for _, doc := range docs {
				for _, desired := range sets {
					once, err := settings.MergeClaude([]byte(doc), desired, anotCmd)
					Expect(err).NotTo(HaveOccurred())

					twice, err := settings.MergeClaude(once, desired, anotCmd)
					Expect(err).NotTo(HaveOccurred())
					Expect(string(twice)).To(Equal(string(once)), "doc %q desired %v", doc, desired)
				}
			}
		})

		It("round-trips the desired set", func() {
			for _, doc := range docs {
				for _, desired := range sets {
					out, err := settings.MergeClaude([]byte(doc), desired, anotCmd)
					Expect(err).NotTo(HaveOccurred())

					got, err := settings.OwnedClaudeEvents(out)
					Expect(err).NotTo(HaveOccurred())

					if len(desired) == 0 {
						Expect(got).To(BeEmpty())
					} else {
						Expect(got).To(Equal(desired))
					}
				}
			}
		})
	})

	Context("errors", func() {
		DescribeTable("unparsable documents",
			func(doc string) {
				_, err := settings.MergeClaude([]byte(doc), []event.HookEventName{event.HookEventStop}, anotCmd)
				Expect(errors.Is(err, settings.ErrUnparsableDocument)).To(BeTrue(), "got %v", err)
			},
			Entry("truncated", `{"hooks": `),
			Entry("array root", `[]`),
			Entry("string root", `"x"`),
		)

		DescribeTable("ambiguous ownership",
			func(doc string) {
				_, err := settings.MergeClaude([]byte(doc), []event.HookEventName{event.HookEventStop}, anotCmd)
				Expect(errors.Is(err, settings.ErrAmbiguousOwnership)).To(BeTrue(), "got %v", err)
			},
			Entry("mixed group",
				`{"hooks": {"Stop": [{"hooks": [{"type": "command", "command": "anot claude"}, {"type": "command", "command": "say done"}]}]}}`),
			Entry("owned command with another type",
				`{"hooks": {"Stop": [{"hooks": [{"type": "prompt", "command": "anot claude"}]}]}}`),
			Entry("hooks is an array", `{"hooks": []}`),
			Entry("event key is an object", `{"hooks": {"Stop": {"command": "anot claude"}}}`),
		)

		DescribeTable("ambiguous ownership when no event is desired",
			func(doc string) {
				out, err := settings.MergeClaude([]byte(doc), nil, anotCmd)
				Expect(errors.Is(err, settings.ErrAmbiguousOwnership)).To(BeTrue(), "got %v", err)
				Expect(out).To(BeNil())
			},
			Entry("event key is an object holding an anot command",
				`{"hooks": {"Stop": {"hooks": [{"type": "command", "command": "anot claude"}]}}}`),
			Entry("hooks is an array holding an anot command",
				`{"hooks": [{"type": "command", "command": "anot claude"}]}`),
			Entry("hooks is an anot command string", `{"hooks": "anot claude"}`),
			Entry("group hooks is an object holding an anot command",
				`{"hooks": {"Stop": [{"hooks": {"type": "command", "command": "anot claude"}}]}}`),
		)

		It("leaves malformed foreign values alone when nothing is desired", func() {
			doc := `{"hooks": {"Stop": {"hooks": [{"type": "command", "command": "say done"}]}}}`

			out, err := settings.MergeClaude([]byte(doc), nil, anotCmd)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal(doc))
		})

		It("reports an anot command in a malformed event key when reading owned events", func() {
			_, err := settings.OwnedClaudeEvents(
				[]byte(`{"hooks": {"Stop": {"hooks": [{"type": "command", "command": "anot claude"}]}}}`),
			)
			Expect(errors.Is(err, settings.ErrAmbiguousOwnership)).To(BeTrue())
		})

		It("rejects a command it would not recognize", func() {
			_, err := settings.MergeClaude([]byte(`{}`), nil, "notify-send hi")
			Expect(err).To(HaveOccurred())
		})

		It("reports ambiguity when reading owned events", func() {
			_, err := settings.OwnedClaudeEvents(
				[]byte(`{"hooks": {"Stop": [{"hooks": [{"type": "command", "command": "anot claude"}, {"type": "command", "command": "x"}]}]}}`),
			)
			Expect(errors.Is(err, settings.ErrAmbiguousOwnership)).To(BeTrue())
		})
	})
})

var _ = Describe("DescribeClaude", func() {
	It("counts total and owned groups per kind", func() {
		summaries, err := settings.DescribeClaude([]byte(`{"hooks": {"PreToolUse": [
			{"matcher": "Bash", "hooks": [{"type": "command", "command": "x"}]},
			{"matcher": "*", "hooks": [{"type": "command", "command": "anot claude"}]}
		]}}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(summaries).To(HaveLen(len(event.HookEventNameValues())))
		Expect(summaries[0]).To(Equal(settings.EventSummary{Kind: event.HookEventPreToolUse, Total: 2, Owned: 1}))
		Expect(summaries[1]).To(Equal(settings.EventSummary{Kind: event.HookEventPostToolUse}))
	})
})
