// Package git locates the repository a project directory belongs to.
package git

import (
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
)

// ErrNotRepository is returned when a directory is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repository is an opened git repository.
type Repository struct {
	repo *git.Repository
}

// Open opens the repository containing path.
//
// go-git v6 always resolves the .git commondir, so linked worktrees, whose
// .git is a file pointing into the main repository, resolve to their own
// worktree root.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.Wrapf(ErrNotRepository, "%s", path)
		}

		return nil, errors.Wrap(err, "failed to open repository")
	}

	return &Repository{repo: repo}, nil
}

// Root returns the worktree root directory.
func (r *Repository) Root() (string, error) {
	worktree, err := r.repo.Worktree()
	if err != nil {
		return "", errors.Wrap(err, "failed to get worktree")
	}

	return worktree.Filesystem.Root(), nil
}

// ProjectRoot returns the worktree root containing dir and whether dir is in
// a repository. Outside a repository dir itself is the project root.
func ProjectRoot(dir string) (string, bool) {
	repo, err := Open(dir)
	if err != nil {
		return dir, false
	}

	root, err := repo.Root()
	if err != nil {
		return dir, false
	}

	return filepath.Clean(root), true
}
