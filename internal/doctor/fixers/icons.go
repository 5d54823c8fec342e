package fixers

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/doctor"
	"github.com/smykla-skalski/anot/internal/icon"
	"github.com/smykla-skalski/anot/pkg/agent"
)

// IconsFixer writes every agent icon into the cache.
type IconsFixer struct {
	store *icon.Store
}

// NewIconsFixer creates a new IconsFixer.
func NewIconsFixer(store *icon.Store) *IconsFixer {
	return &IconsFixer{store: store}
}

// ID returns the fixer identifier.
func (*IconsFixer) ID() string {
	return doctor.FixInstallIcons
}

// Description returns a human-readable description.
func (*IconsFixer) Description() string {
	return "Write the bundled agent icons into the cache directory"
}

// CanFix checks if this fixer can fix the given result.
func (f *IconsFixer) CanFix(result doctor.CheckResult) bool {
	return result.FixID == f.ID() && result.Status == doctor.StatusFail
}

// Fix writes missing or stale icons. It never prompts.
func (f *IconsFixer) Fix(_ context.Context, _ bool) error {
	var errs error

	for _, a := range agent.AgentValues() {
		if _, err := f.store.Path(a); err != nil {
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "icon for %s", a))
		}
	}

	return errs
}
