package crashdump

import (
	"cmp"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/atomicfile"
	"github.com/smykla-skalski/anot/internal/xdg"
)

const (
	// FilePerm keeps dumps private: stacks can include paths and session ids.
	FilePerm fs.FileMode = 0o600

	// FileExtension is the extension of dump files.
	FileExtension = ".json"

	// MaxDumps is how many dumps survive a Save.
	MaxDumps = 10

	summaryPanicLen = 80
)

var (
	// ErrWriteFailed is returned when a dump cannot be saved.
	ErrWriteFailed = errors.New("failed to write crash dump")

	// ErrInvalidDumpDir is returned for an empty or unexpandable directory.
	ErrInvalidDumpDir = errors.New("invalid dump directory")

	// ErrDumpNotFound is returned when no dump has the requested id.
	ErrDumpNotFound = errors.New("crash dump not found")
)

// Store keeps crash dumps as one JSON file per crash in a directory.
type Store struct {
	dir string
}

// Open returns a Store for dir, which may start with ~ and need not exist.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.Wrap(ErrInvalidDumpDir, "dump directory cannot be empty")
	}

	expanded, err := xdg.ExpandPath(dir)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidDumpDir, err.Error())
	}

	return &Store{dir: expanded}, nil
}

// Dir returns the expanded dump directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes info and trims the store to MaxDumps. It returns the path of
// the new dump; a failed trim is ignored.
func (s *Store) Save(info *CrashInfo) (string, error) {
	if info == nil {
		return "", errors.Wrap(ErrWriteFailed, "crash info is nil")
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return "", errors.Wrap(ErrWriteFailed, "failed to marshal crash info")
	}

	path := s.path(info.ID)

	if _, err := atomicfile.Write(path, data, atomicfile.Options{Perm: FilePerm}); err != nil {
		return "", errors.Wrap(ErrWriteFailed, err.Error())
	}

	_, _ = s.Prune(MaxDumps)

	return path, nil
}

// List returns summaries of readable dumps, newest first. A missing
// directory holds no dumps. Corrupt files are skipped.
func (s *Store) List() ([]DumpSummary, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []DumpSummary{}, nil
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to read dump directory")
	}

	summaries := make([]DumpSummary, 0, len(entries))

	for _, entry := range entries {
		id, ok := strings.CutSuffix(entry.Name(), FileExtension)
		if entry.IsDir() || !ok {
			continue
		}

		if summary, err := s.summary(id); err == nil {
			summaries = append(summaries, summary)
		}
	}

	slices.SortFunc(summaries, func(a, b DumpSummary) int {
		return cmp.Compare(b.Timestamp.UnixNano(), a.Timestamp.UnixNano())
	})

	return summaries, nil
}

// Load reads the dump with id.
func (s *Store) Load(id string) (*CrashInfo, error) {
	data, err := os.ReadFile(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrapf(ErrDumpNotFound, "ID: %s", id)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to read dump file")
	}

	var info CrashInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, errors.Wrapf(err, "failed to decode dump %s", id)
	}

	return &info, nil
}

// Remove deletes the dump with id.
func (s *Store) Remove(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Wrapf(ErrDumpNotFound, "ID: %s", id)
	}

	return errors.Wrap(err, "failed to delete dump file")
}

// Prune removes all but the newest keep dumps and reports how many went.
func (s *Store) Prune(keep int) (int, error) {
	summaries, err := s.List()
	if err != nil {
		return 0, err
	}

	removed := 0

	for _, old := range summaries[min(max(keep, 0), len(summaries)):] {
		if s.Remove(old.ID) == nil {
			removed++
		}
	}

	return removed, nil
}

func (s *Store) summary(id string) (DumpSummary, error) {
	info, err := s.Load(id)
	if err != nil {
		return DumpSummary{}, err
	}

	stat, err := os.Stat(s.path(id))
	if err != nil {
		return DumpSummary{}, errors.Wrap(err, "failed to stat dump file")
	}

	value := info.PanicValue
	if len(value) > summaryPanicLen {
		value = value[:summaryPanicLen] + "..."
	}

	return DumpSummary{
		ID:         info.ID,
		Timestamp:  info.Timestamp,
		PanicValue: value,
		FilePath:   s.path(id),
		Size:       stat.Size(),
	}, nil
}

func (s *Store) path(id string) string {
	return filepath.Join(s.dir, id+FileExtension)
}
