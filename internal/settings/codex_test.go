package settings_test

import (
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/anot/internal/settings"
)

var anotNotify = []string{"/usr/local/bin/anot", "codex"}

func decodeTOML(doc []byte) map[string]any {
	tree := map[string]any{}
	Expect(toml.Unmarshal(doc, &tree)).To(Succeed())

	return tree
}

var _ = Describe("MergeCodex", func() {
	Context("setting notify", func() {
		It("adds notify to an empty document", func() {
			out, err := settings.MergeCodex(nil, anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())

			state, err := settings.InspectCodex(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Status).To(Equal(settings.NotifyOwned))
			Expect(state.Argv).To(Equal(anotNotify))
		})

		It("keeps comments and places notify in the root table", func() {
			doc := "# Codex settings\nmodel = \"o3\" # fast\n\n[tui]\nnotifications = true\n"

			out, err := settings.MergeCodex([]byte(doc), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())

			text := string(out)
			Expect(text).To(HavePrefix("# Codex settings\nmodel = \"o3\" # fast\nnotify = "))
			Expect(text).To(HaveSuffix("\n\n[tui]\nnotifications = true\n"))

			tree := decodeTOML(out)
			Expect(tree["model"]).To(Equal("o3"))
			Expect(tree["tui"]).To(Equal(map[string]any{"notifications": true}))
		})

		It("adds a blank line before a leading table header", func() {
			doc := "[tui]\nnotifications = true\n"

			out, err := settings.MergeCodex([]byte(doc), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(HavePrefix("notify = "))
			Expect(string(out)).To(HaveSuffix("\n\n[tui]\nnotifications = true\n"))
		})

		It("handles a document without a trailing newline", func() {
			out, err := settings.MergeCodex([]byte(`model = "o3"`), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())
			Expect(decodeTOML(out)).To(HaveKeyWithValue("model", "o3"))
		})

		It("is idempotent", func() {
			once, err := settings.MergeCodex([]byte("model = \"o3\"\n"), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())

			twice, err := settings.MergeCodex(once, anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())
			Expect(twice).To(Equal(once))
		})

		It("overwrites a foreign multi-line notify in place", func() {
			doc := "notify = [\n  \"notify-send\",\n  \"Codex\",\n]\nmodel = \"o3\"\n"

			out, err := settings.MergeCodex([]byte(doc), anotNotify, settings.PolicyOverride)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(HaveSuffix("]\nmodel = \"o3\"\n"))
			Expect(strings.Count(string(out), "notify")).To(Equal(1))

			state, err := settings.InspectCodex(out)
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Argv).To(Equal(anotNotify))
		})

		It("ignores notify keys inside tables", func() {
			doc := "[profiles.work]\nnotify = [\"x\"]\n"

			state, err := settings.InspectCodex([]byte(doc))
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Status).To(Equal(settings.NotifyAbsent))

			out, err := settings.MergeCodex([]byte(doc), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())

			tree := decodeTOML(out)
			Expect(tree["notify"]).To(Equal([]any{"/usr/local/bin/anot", "codex"}))
			Expect(tree["profiles"]).To(Equal(map[string]any{
				"work": map[string]any{"notify": []any{"x"}},
			}))
		})

		It("does not mistake bracketed lines inside strings for tables", func() {
			doc := "instructions = \"\"\"\n[not a table]\n\"\"\"\n\n[tui]\nnotifications = false\n"

			out, err := settings.MergeCodex([]byte(doc), anotNotify, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())

			tree := decodeTOML(out)
			Expect(tree["instructions"]).To(Equal("[not a table]\n"))
			Expect(tree["notify"]).NotTo(BeNil())
		})
	})

	Context("removing notify", func() {
		It("removes an owned notify and nothing else", func() {
			doc := "model = \"o3\"\nnotify = [\"/usr/bin/anot\", \"codex\"]\n\n[tui]\nnotifications = true\n"

			out, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal("model = \"o3\"\n\n[tui]\nnotifications = true\n"))
		})

		It("is a no-op without notify", func() {
			doc := "model = \"o3\"\n"

			out, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyUnset)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(out)).To(Equal(doc))
		})

		Context("with a foreign notify", func() {
			const doc = "notify = [\"notify-send\", \"Codex\"]\nmodel = \"o3\"\n"

			It("requires an explicit policy", func() {
				_, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyUnset)
				Expect(errors.Is(err, settings.ErrExplicitPolicyRequired)).To(BeTrue())
			})

			It("keeps it with PolicyKeep", func() {
				out, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyKeep)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(out)).To(Equal(doc))
			})

			It("removes it with PolicyRemove", func() {
				out, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyRemove)
				Expect(err).NotTo(HaveOccurred())
				Expect(string(out)).To(Equal("model = \"o3\"\n"))
			})

			It("rejects PolicyOverride without a command", func() {
				_, err := settings.MergeCodex([]byte(doc), nil, settings.PolicyOverride)
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Context("errors", func() {
		It("rejects invalid TOML", func() {
			_, err := settings.MergeCodex([]byte("model = "), anotNotify, settings.PolicyUnset)
			Expect(errors.Is(err, settings.ErrUnparsableDocument)).To(BeTrue())
		})

		It("treats a non-array notify as ambiguous", func() {
			_, err := settings.MergeCodex([]byte(`notify = "anot codex"`), anotNotify, settings.PolicyOverride)
			Expect(errors.Is(err, settings.ErrAmbiguousOwnership)).To(BeTrue())
		})

		It("rejects an empty command vector", func() {
			_, err := settings.MergeCodex(nil, []string{}, settings.PolicyUnset)
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("InspectCodex", func() {
	DescribeTable("classifies notify",
		func(doc string, want settings.NotifyStatus) {
			state, err := settings.InspectCodex([]byte(doc))
			Expect(err).NotTo(HaveOccurred())
			Expect(state.Status).To(Equal(want))
		},
		Entry("absent", `model = "o3"`, settings.NotifyAbsent),
		Entry("owned", `notify = ["/opt/bin/anot", "codex"]`, settings.NotifyOwned),
		Entry("owned with flag", `notify = ["anot", "-d", "codex"]`, settings.NotifyOwned),
		Entry("foreign", `notify = ["python3", "/home/me/notify.py"]`, settings.NotifyForeign),
		Entry("claude subcommand", `notify = ["anot", "claude"]`, settings.NotifyForeign),
	)
})

var _ = Describe("ParseOverridePolicy", func() {
	It("parses known actions", func() {
		for _, name := range []string{"override", "keep", "remove"} {
			p, err := settings.ParseOverridePolicy(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.String()).To(Equal(name))
		}
	})

	It("rejects unset and unknown actions", func() {
		_, err := settings.ParseOverridePolicy("unset")
		Expect(err).To(HaveOccurred())

		_, err = settings.ParseOverridePolicy("replace")
		Expect(err).To(HaveOccurred())
	})
})
