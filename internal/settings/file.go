package settings

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/smykla-skalski/anot/internal/atomicfile"
)

const diffContextLines = 3

// ReadDocument reads a settings document. A missing file is reported as
// exists == false with no error.
func ReadDocument(path string) (data []byte, exists bool, err error) {
	data, err = os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "failed to read %s", path)
	}

	return data, true, nil
}

// WriteDocument atomically replaces path with data, optionally keeping a
// timestamped backup of the previous content. It returns the backup path.
func WriteDocument(path string, data []byte, backup bool) (string, error) {
	backupPath, err := atomicfile.Write(path, data, atomicfile.Options{Backup: backup})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write %s", path)
	}

	return backupPath, nil
}

// UnifiedDiff renders the change from before to after as a unified diff.
// It returns an empty string when the documents are identical.
func UnifiedDiff(path string, before, after []byte) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: path,
		ToFile:   path + " (updated)",
		Context:  diffContextLines,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", errors.Wrap(err, "failed to render diff")
	}

	return text, nil
}
