package settings_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/anot/internal/settings"
)

var _ = Describe("Documents", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("reports a missing document without error", func() {
		data, exists, err := settings.ReadDocument(filepath.Join(dir, "nope.json"))
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeFalse())
		Expect(data).To(BeNil())
	})

	It("writes atomically and keeps a backup of the previous content", func() {
		path := filepath.Join(dir, ".claude", "settings.json")

		backup, err := settings.WriteDocument(path, []byte(`{"a":1}`), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(backup).To(BeEmpty())

		backup, err = settings.WriteDocument(path, []byte(`{"a":2}`), true)
		Expect(err).NotTo(HaveOccurred())
		Expect(backup).To(HavePrefix(path + ".backup."))

		old, err := os.ReadFile(backup)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(old)).To(Equal(`{"a":1}`))

		data, exists, err := settings.ReadDocument(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(exists).To(BeTrue())
		Expect(string(data)).To(Equal(`{"a":2}`))
	})

	It("skips the backup when asked", func() {
		path := filepath.Join(dir, "config.toml")

		_, err := settings.WriteDocument(path, []byte("a = 1\n"), false)
		Expect(err).NotTo(HaveOccurred())

		backup, err := settings.WriteDocument(path, []byte("a = 2\n"), false)
		Expect(err).NotTo(HaveOccurred())
		Expect(backup).To(BeEmpty())

		matches, err := filepath.Glob(path + ".backup.*")
		Expect(err).NotTo(HaveOccurred())
		Expect(matches).To(BeEmpty())
	})
})

var _ = Describe("UnifiedDiff", func() {
	It("is empty for identical documents", func() {
		diff, err := settings.UnifiedDiff("config.toml", []byte("a = 1\n"), []byte("a = 1\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(diff).To(BeEmpty())
	})

	It("shows added and removed lines", func() {
		diff, err := settings.UnifiedDiff("config.toml", []byte("a = 1\n"), []byte("a = 1\nnotify = ['anot', 'codex']\n"))
		Expect(err).NotTo(HaveOccurred())
		Expect(diff).To(ContainSubstring("--- config.toml"))
		Expect(diff).To(ContainSubstring("+++ config.toml (updated)"))
		Expect(diff).To(ContainSubstring("+notify = ['anot', 'codex']"))
	})
})

var _ = Describe("Locations", func() {
	It("describes missing and existing files", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "settings.json")

		Expect(settings.NewLocation("project", path).Describe()).To(HaveSuffix("(project, will be created)"))

		Expect(os.WriteFile(path, []byte("{}"), 0o600)).To(Succeed())

		loc := settings.NewLocation("project", path)
		Expect(loc.Exists).To(BeTrue())
		Expect(loc.ModTime).To(BeTemporally("~", time.Now(), time.Minute))
		Expect(loc.Describe()).To(ContainSubstring("(project, modified "))
	})

	It("lists Claude locations in precedence order", func() {
		GinkgoT().Setenv("HOME", "/home/dev")

		locs := settings.ClaudeLocations("/work/repo")
		Expect(locs).To(HaveLen(3))
		Expect(locs[0].Path).To(Equal("/home/dev/.claude/settings.json"))
		Expect(locs[1].Path).To(Equal("/work/repo/.claude/settings.json"))
		Expect(locs[2].Path).To(Equal("/work/repo/.claude/settings.local.json"))
	})

	It("honors CODEX_HOME", func() {
		GinkgoT().Setenv("HOME", "/home/dev")
		GinkgoT().Setenv("CODEX_HOME", "/srv/codex")

		Expect(settings.CodexConfigPath()).To(Equal("/srv/codex/config.toml"))

		locs := settings.CodexLocations()
		Expect(locs).To(HaveLen(2))
		Expect(locs[0].Scope).To(Equal("active"))
		Expect(locs[1].Path).To(Equal("/home/dev/.codex/config.toml"))
	})

	It("defaults to ~/.codex/config.toml", func() {
		GinkgoT().Setenv("HOME", "/home/dev")
		GinkgoT().Setenv("CODEX_HOME", "")

		Expect(settings.CodexConfigPath()).To(Equal("/home/dev/.codex/config.toml"))
		Expect(settings.CodexLocations()).To(HaveLen(1))
	})
})
