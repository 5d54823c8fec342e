// Package icon ships the agent icons and materializes them on disk, where
// notification backends can reference them by path.
package icon

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/atomicfile"
	"github.com/smykla-skalski/anot/pkg/agent"
)

//go:embed assets/*.png
var assets embed.FS

const iconFileMode = 0o644

// Asset returns the embedded icon of agent a.
func Asset(a agent.Agent) ([]byte, error) {
	info, ok := agent.Lookup(a)
	if !ok {
		return nil, errors.Newf("unknown agent %d", a)
	}

	data, err := assets.ReadFile("assets/" + info.IconAsset)
	if err != nil {
		return nil, errors.Wrapf(err, "missing icon asset %s", info.IconAsset)
	}

	return data, nil
}

// Store writes icons into a cache directory.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the on-disk path of agent a's icon, writing it first when it
// is missing or stale.
func (s *Store) Path(a agent.Agent) (string, error) {
	data, err := Asset(a)
	if err != nil {
		return "", err
	}

	path := s.file(a)

	if s.current(path, data) {
		return path, nil
	}

	if _, err := atomicfile.Write(path, data, atomicfile.Options{Perm: iconFileMode}); err != nil {
		return "", errors.Wrap(err, "failed to write icon")
	}

	return path, nil
}

// Installed reports whether agent a's icon is on disk and up to date.
func (s *Store) Installed(a agent.Agent) bool {
	data, err := Asset(a)
	if err != nil {
		return false
	}

	return s.current(s.file(a), data)
}

// Dir returns the cache directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) file(a agent.Agent) string {
	return filepath.Join(s.dir, agent.MustLookup(a).IconAsset)
}

func (*Store) current(path string, data []byte) bool {
	existing, err := os.ReadFile(path) //nolint:gosec // cache path
	if err != nil {
		return false
	}

	return bytes.Equal(existing, data)
}
