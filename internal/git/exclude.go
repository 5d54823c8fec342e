package git

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/smykla-skalski/anot/internal/atomicfile"
)

const (
	excludeFileMode = 0o644
	excludeMarker   = "# Added by anot"
)

// ErrAlreadyExcluded is returned by Add when the pattern is already listed.
var ErrAlreadyExcluded = errors.New("pattern already excluded")

// ExcludeFile is the repository-local ignore list, .git/info/exclude. Unlike
// .gitignore it is never committed.
type ExcludeFile struct {
	path string
}

// NewExcludeFile returns the exclude file of the worktree rooted at root.
func NewExcludeFile(root string) *ExcludeFile {
	return &ExcludeFile{path: filepath.Join(root, ".git", "info", "exclude")}
}

// Path returns the location of the exclude file.
func (f *ExcludeFile) Path() string {
	return f.path
}

// Contains reports whether pattern is listed verbatim. Comments and blank
// lines never match. A missing file lists nothing.
func (f *ExcludeFile) Contains(pattern string) (bool, error) {
	content, err := f.read()
	if err != nil {
		return false, err
	}

	for line := range strings.Lines(string(content)) {
		line = strings.TrimSpace(line)
		if line != "" && !strings.HasPrefix(line, "#") && line == pattern {
			return true, nil
		}
	}

	return false, nil
}

// Add appends pattern under an anot marker comment, creating the file if
// needed.
func (f *ExcludeFile) Add(pattern string) error {
	content, err := f.read()
	if err != nil {
		return err
	}

	if found, _ := f.Contains(pattern); found {
		return errors.Wrapf(ErrAlreadyExcluded, "pattern %q", pattern)
	}

	var buf bytes.Buffer

	buf.Write(content)

	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		buf.WriteByte('\n')
	}

	buf.WriteString(excludeMarker + "\n" + pattern + "\n")

	if _, err := atomicfile.Write(f.path, buf.Bytes(), atomicfile.Options{Perm: excludeFileMode}); err != nil {
		return errors.Wrapf(err, "failed to write %s", f.path)
	}

	return nil
}

func (f *ExcludeFile) read() ([]byte, error) {
	content, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	return content, errors.Wrapf(err, "failed to read %s", f.path)
}
