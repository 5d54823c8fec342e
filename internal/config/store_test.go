package config_test

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/anot/internal/config"
	pkgConfig "github.com/smykla-skalski/anot/pkg/config"
	"github.com/smykla-skalski/anot/pkg/logger"
)

var _ = Describe("Store", func() {
	var (
		path  string
		store *config.Store
	)

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "agent_notifications", "a-notifications.json")
		store = config.NewStore(path, logger.NewNoOpLogger())

		GinkgoT().Setenv("ANOT_CLAUDE_PRETEND", "")
		GinkgoT().Setenv("ANOT_CODEX_PRETEND", "")
		Expect(os.Unsetenv("ANOT_CLAUDE_PRETEND")).To(Succeed())
		Expect(os.Unsetenv("ANOT_CODEX_PRETEND")).To(Succeed())
	})

	write := func(content string) {
		Expect(os.MkdirAll(filepath.Dir(path), 0o700)).To(Succeed())
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
	}

	Describe("Load", func() {
		It("writes and returns defaults on first run", func() {
			prefs, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs).To(Equal(pkgConfig.DefaultPreferences()))

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(MatchJSON(`{"version":1,"claude":{"pretend":true},"codex":{"pretend":false}}`))

			info, err := os.Stat(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("reads an existing file", func() {
			write(`{"version":1,"claude":{"pretend":false},"codex":{"pretend":true}}`)

			prefs, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs.Claude.Pretend).To(BeFalse())
			Expect(prefs.Codex.Pretend).To(BeTrue())
		})

		It("fills agent sections missing from the file with defaults", func() {
			write(`{"version":1}`)

			prefs, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs.Claude.Pretend).To(BeTrue())
			Expect(prefs.Codex.Pretend).To(BeFalse())
		})

		It("rejects a missing version", func() {
			write(`{"claude":{"pretend":true}}`)

			_, err := store.Load()
			Expect(errors.Is(err, config.ErrConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("missing version"))
		})

		It("rejects an unsupported version", func() {
			write(`{"version":2,"claude":{"pretend":true},"codex":{"pretend":false}}`)

			_, err := store.Load()
			Expect(errors.Is(err, config.ErrConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("unsupported version 2"))
		})

		It("rejects malformed JSON", func() {
			write(`{"version":1,`)

			_, err := store.Load()
			Expect(errors.Is(err, config.ErrConfig)).To(BeTrue())
		})

		It("does not overwrite an invalid file", func() {
			write(`{"version":7}`)

			_, err := store.Load()
			Expect(err).To(HaveOccurred())

			data, readErr := os.ReadFile(path)
			Expect(readErr).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`{"version":7}`))
		})

		It("applies environment overrides", func() {
			write(`{"version":1,"claude":{"pretend":true},"codex":{"pretend":false}}`)
			GinkgoT().Setenv("ANOT_CLAUDE_PRETEND", "false")
			GinkgoT().Setenv("ANOT_CODEX_PRETEND", "true")

			prefs, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs.Claude.Pretend).To(BeFalse())
			Expect(prefs.Codex.Pretend).To(BeTrue())
		})

		It("rejects an environment override that is not a boolean", func() {
			write(`{"version":1}`)
			GinkgoT().Setenv("ANOT_CODEX_PRETEND", "maybe")

			_, err := store.Load()
			Expect(errors.Is(err, config.ErrConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(`invalid boolean "maybe"`))
		})

		It("ignores empty environment overrides", func() {
			write(`{"version":1,"claude":{"pretend":true}}`)
			GinkgoT().Setenv("ANOT_CLAUDE_PRETEND", "")

			prefs, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs.Claude.Pretend).To(BeTrue())
		})
	})

	Describe("Reset", func() {
		It("replaces an invalid file with defaults", func() {
			write(`{"version":9}`)

			prefs, err := store.Reset()
			Expect(err).NotTo(HaveOccurred())
			Expect(prefs).To(Equal(pkgConfig.DefaultPreferences()))

			loaded, err := store.Load()
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(pkgConfig.DefaultPreferences()))
		})
	})
})

var _ = Describe("Validator", func() {
	DescribeTable("ValidateVersion",
		func(present bool, raw any, ok bool) {
			err := config.NewValidator().ValidateVersion(present, raw)
			if ok {
				Expect(err).NotTo(HaveOccurred())
			} else {
				Expect(errors.Is(err, config.ErrConfig)).To(BeTrue())
			}
		},
		Entry("json number 1", true, float64(1), true),
		Entry("int 1", true, 1, true),
		Entry("absent", false, nil, false),
		Entry("fractional", true, 1.5, false),
		Entry("string", true, "1", false),
		Entry("future version", true, float64(2), false),
	)

	It("rejects nil preferences", func() {
		Expect(errors.Is(config.NewValidator().Validate(nil), config.ErrConfig)).To(BeTrue())
	})
})
