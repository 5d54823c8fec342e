package settings

import (
	"reflect"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"

	"github.com/smykla-skalski/anot/pkg/agent"
)

const notifyKey = "notify"

// OverridePolicy says what to do with a notify command anot does not own.
type OverridePolicy int

const (
	// PolicyUnset means the caller has not decided.
	PolicyUnset OverridePolicy = iota

	// PolicyOverride replaces the foreign command with anot.
	PolicyOverride

	// PolicyKeep leaves the foreign command in place.
	PolicyKeep

	// PolicyRemove deletes the notify key.
	PolicyRemove
)

var policyNames = map[OverridePolicy]string{
	PolicyUnset:    "unset",
	PolicyOverride: "override",
	PolicyKeep:     "keep",
	PolicyRemove:   "remove",
}

// String returns the policy name.
func (p OverridePolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}

	return "unknown"
}

// ParseOverridePolicy parses a policy name.
func ParseOverridePolicy(s string) (OverridePolicy, error) {
	for p, name := range policyNames {
		if name == s && p != PolicyUnset {
			return p, nil
		}
	}

	return PolicyUnset, errors.Newf("unknown action %q (expected override, keep or remove)", s)
}

// NotifyStatus classifies the notify key of a Codex config.
type NotifyStatus int

const (
	// NotifyAbsent means there is no root notify key.
	NotifyAbsent NotifyStatus = iota

	// NotifyOwned means notify invokes anot.
	NotifyOwned

	// NotifyForeign means notify invokes something else.
	NotifyForeign
)

// String returns a human-readable status.
func (s NotifyStatus) String() string {
	switch s {
	case NotifyAbsent:
		return "not configured"
	case NotifyOwned:
		return "anot"
	case NotifyForeign:
		return "other command"
	default:
		return "unknown"
	}
}

// NotifyState is the current notify configuration.
type NotifyState struct {
	Status NotifyStatus
	Argv   []string
}

// InspectCodex reports the notify configuration of a Codex config document.
func InspectCodex(doc []byte) (*NotifyState, error) {
	_, state, err := decodeCodex(doc)

	return state, err
}

// MergeCodex reconciles the root notify key of a Codex config document.
//
// A non-nil desired vector sets notify to it. A nil desired vector removes
// an anot-owned notify; a foreign one is kept or removed per policy, and
// PolicyUnset yields ErrExplicitPolicyRequired. Only the notify key-value
// is rewritten; comments, ordering and every other key are preserved.
func MergeCodex(doc []byte, desired []string, policy OverridePolicy) ([]byte, error) {
	before, state, err := decodeCodex(doc)
	if err != nil {
		return nil, err
	}

	if desired != nil {
		if len(desired) == 0 {
			return nil, errors.New("notify command must not be empty")
		}

		if state.Status != NotifyAbsent && slices.Equal(state.Argv, desired) {
			return doc, nil
		}

		line, err := notifyLine(desired)
		if err != nil {
			return nil, err
		}

		return spliceVerified(doc, before, line, desired)
	}

	switch state.Status {
	case NotifyAbsent:
		return doc, nil
	case NotifyOwned:
		return spliceVerified(doc, before, nil, nil)
	case NotifyForeign:
		switch policy {
		case PolicyKeep:
			return doc, nil
		case PolicyRemove:
			return spliceVerified(doc, before, nil, nil)
		case PolicyOverride:
			return nil, errors.New("override requires a notify command")
		default:
			return nil, errors.Wrapf(
				ErrExplicitPolicyRequired,
				"notify is set to %q",
				state.Argv,
			)
		}
	default:
		return nil, errors.Newf("unknown notify status %d", state.Status)
	}
}

func decodeCodex(doc []byte) (map[string]any, *NotifyState, error) {
	tree := map[string]any{}
	if err := toml.Unmarshal(doc, &tree); err != nil {
		return nil, nil, errors.Wrapf(ErrUnparsableDocument, "invalid TOML: %v", err)
	}

	raw, ok := tree[notifyKey]
	if !ok {
		return tree, &NotifyState{Status: NotifyAbsent}, nil
	}

	argv, ok := stringSlice(raw)
	if !ok {
		return nil, nil, errors.Wrapf(ErrAmbiguousOwnership, "notify must be an array of strings, got %T", raw)
	}

	status := NotifyForeign
	if NewOwnership(agent.Codex).OwnsArgv(argv) {
		status = NotifyOwned
	}

	return tree, &NotifyState{Status: status, Argv: argv}, nil
}

func stringSlice(raw any) ([]string, bool) {
	items, ok := raw.([]any)
	if !ok {
		return nil, false
	}

	out := make([]string, 0, len(items))

	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}

		out = append(out, s)
	}

	return out, true
}

func notifyLine(argv []string) ([]byte, error) {
	line, err := toml.Marshal(map[string]any{notifyKey: argv})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode notify")
	}

	if len(line) == 0 || line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	return line, nil
}

// spliceVerified replaces (line != nil) or removes (line == nil) the root
// notify key and checks that nothing else in the document changed.
func spliceVerified(doc []byte, before map[string]any, line []byte, want []string) ([]byte, error) {
	out := spliceRootKey(doc, notifyKey, line)

	after, state, err := decodeCodex(out)
	if err != nil {
		return nil, errors.Wrap(err, "edited document no longer parses")
	}

	delete(before, notifyKey)
	delete(after, notifyKey)

	if !reflect.DeepEqual(before, after) {
		return nil, errors.Wrap(ErrUnparsableDocument, "editing notify would change other keys")
	}

	if want == nil && state.Status != NotifyAbsent {
		return nil, errors.Wrap(ErrUnparsableDocument, "notify could not be removed")
	}

	if want != nil && !slices.Equal(state.Argv, want) {
		return nil, errors.Wrap(ErrUnparsableDocument, "notify could not be set")
	}

	return out, nil
}
