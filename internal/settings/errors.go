package settings

import "github.com/cockroachdb/errors"

var (
	// ErrUnparsableDocument is returned when a settings document is not
	// valid for its format. Nothing is written.
	ErrUnparsableDocument = errors.New("unparsable settings document")

	// ErrAmbiguousOwnership is returned when an entry cannot be classified
	// as cleanly owned or cleanly foreign. Nothing is written.
	ErrAmbiguousOwnership = errors.New("ambiguous ownership")

	// ErrExplicitPolicyRequired is returned when a foreign Codex notify
	// command would be touched without an explicit override policy.
	ErrExplicitPolicyRequired = errors.New("explicit override policy required")
)
