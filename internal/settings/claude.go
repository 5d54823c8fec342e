package settings

import (
	"bytes"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/smykla-skalski/anot/pkg/agent"
	"github.com/smykla-skalski/anot/pkg/event"
)

const (
	// HookTimeoutSeconds is the timeout written into new hook entries.
	HookTimeoutSeconds = 10

	// MatchAllTools is the matcher written for tool events.
	MatchAllTools = "*"

	hooksKey    = "hooks"
	commandType = "command"
)

var prettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// HookGroup is a Claude Code matcher group as written by anot.
type HookGroup struct {
	Matcher string        `json:"matcher,omitempty"`
	Hooks   []HookCommand `json:"hooks"`
}

// HookCommand is a single hook command inside a group.
type HookCommand struct {
	Type    string `json:"type"`
	Command string `json:"command"`
	Timeout int    `json:"timeout,omitempty"`
}

// NewHookGroup returns the group anot writes for kind.
func NewHookGroup(kind event.HookEventName, command string) HookGroup {
	group := HookGroup{
		Hooks: []HookCommand{{
			Type:    commandType,
			Command: command,
			Timeout: HookTimeoutSeconds,
		}},
	}

	if kind.HasMatcher() {
		group.Matcher = MatchAllTools
	}

	return group
}

// EventSummary describes the hook groups registered for one event kind.
type EventSummary struct {
	Kind  event.HookEventName
	Total int
	Owned int
}

// MergeClaude reconciles the hook groups anot owns in a Claude Code
// settings document with the desired set of event kinds. Foreign groups
// and every other part of the document keep their position and value.
// An unchanged result is returned as the original bytes.
func MergeClaude(doc []byte, desired []event.HookEventName, command string) ([]byte, error) {
	own := NewOwnership(agent.Claude)
	if !own.OwnsCommand(command) {
		return nil, errors.Newf("command %q is not recognizable as an anot hook", command)
	}

	root, err := jsonRoot(doc)
	if err != nil {
		return nil, err
	}

	hooks := gjson.GetBytes(root, hooksKey)
	if hooks.Exists() && !hooks.IsObject() {
		if len(desired) > 0 || holdsOwnedCommand(hooks, own) {
			return nil, errors.Wrapf(ErrAmbiguousOwnership, "%q is %s, expected an object", hooksKey, hooks.Type)
		}

		return doc, nil
	}

	out := root
	changed := false
	removed := false

	for _, kind := range event.HookEventNameValues() {
		path := hooksKey + "." + kind.String()
		want := slices.Contains(desired, kind)

		groups := gjson.GetBytes(out, path)
		if groups.Exists() && !groups.IsArray() {
			if want || holdsOwnedCommand(groups, own) {
				return nil, errors.Wrapf(ErrAmbiguousOwnership, "%s is %s, expected an array", path, groups.Type)
			}

			continue
		}

		owned, err := ownedGroups(groups, own, path)
		if err != nil {
			return nil, err
		}

		switch {
		case want && len(owned) == 0:
			out, err = appendGroup(out, path, groups.Exists(), NewHookGroup(kind, command))
			if err != nil {
				return nil, err
			}

			changed = true
		case want && len(owned) > 1:
			out, err = deleteGroups(out, path, owned[1:])
			if err != nil {
				return nil, err
			}

			changed = true
		case !want && len(owned) > 0:
			out, err = deleteGroups(out, path, owned)
			if err != nil {
				return nil, err
			}

			if len(owned) == len(groups.Array()) {
				if out, err = sjson.DeleteBytes(out, path); err != nil {
					return nil, errors.Wrapf(err, "failed to delete %s", path)
				}
			}

			changed = true
			removed = true
		}
	}

	if !changed {
		return doc, nil
	}

	if removed && hooks.Exists() {
		if h := gjson.GetBytes(out, hooksKey); h.IsObject() && len(h.Map()) == 0 {
			if out, err = sjson.DeleteBytes(out, hooksKey); err != nil {
				return nil, errors.Wrap(err, "failed to delete empty hooks")
			}
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

// OwnedClaudeEvents returns the event kinds that have an anot-owned group.
func OwnedClaudeEvents(doc []byte) ([]event.HookEventName, error) {
	summaries, err := DescribeClaude(doc)
	if err != nil {
		return nil, err
	}

	var kinds []event.HookEventName

	for _, s := range summaries {
		if s.Owned > 0 {
			kinds = append(kinds, s.Kind)
		}
	}

	return kinds, nil
}

// DescribeClaude summarizes the hook groups of every known event kind.
func DescribeClaude(doc []byte) ([]EventSummary, error) {
	root, err := jsonRoot(doc)
	if err != nil {
		return nil, err
	}

	hooks := gjson.GetBytes(root, hooksKey)
	if hooks.Exists() && !hooks.IsObject() {
		return nil, errors.Wrapf(ErrAmbiguousOwnership, "%q is %s, expected an object", hooksKey, hooks.Type)
	}

	own := NewOwnership(agent.Claude)
	summaries := make([]EventSummary, 0, len(event.HookEventNameValues()))

	for _, kind := range event.HookEventNameValues() {
		path := hooksKey + "." + kind.String()
		summary := EventSummary{Kind: kind}

		groups := gjson.GetBytes(root, path)
		if groups.Exists() && !groups.IsArray() && holdsOwnedCommand(groups, own) {
			return nil, errors.Wrapf(ErrAmbiguousOwnership, "%s is %s, expected an array", path, groups.Type)
		}

		if groups.IsArray() {
			owned, err := ownedGroups(groups, own, path)
			if err != nil {
				return nil, err
			}

			summary.Total = len(groups.Array())
			summary.Owned = len(owned)
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// jsonRoot validates doc and returns the bytes to edit. An empty document
// is an empty object.
func jsonRoot(doc []byte) ([]byte, error) {
	if len(bytes.TrimSpace(doc)) == 0 {
		return []byte("{}"), nil
	}

	if !gjson.ValidBytes(doc) {
		return nil, errors.Wrap(ErrUnparsableDocument, "invalid JSON")
	}

	if !gjson.ParseBytes(doc).IsObject() {
		return nil, errors.Wrap(ErrUnparsableDocument, "settings root must be a JSON object")
	}

	return doc, nil
}

// ownedGroups returns the indices of the groups in arr that anot owns.
// A group mixing owned and foreign commands, or an owned command with a
// type other than "command", is ambiguous.
func ownedGroups(arr gjson.Result, own Ownership, path string) ([]int, error) {
	if !arr.IsArray() {
		return nil, nil
	}

	var owned []int

	for i, group := range arr.Array() {
		var commands gjson.Result

		if group.IsObject() {
			commands = group.Get(hooksKey)
			if !commands.Exists() && group.Get("command").Exists() {
				// Flat entry without a matcher group.
				commands = gjson.Parse("[" + group.Raw + "]")
			}
		}

		if !commands.IsArray() {
			if holdsOwnedCommand(group, own) {
				return nil, errors.Wrapf(
					ErrAmbiguousOwnership,
					"%s[%d]: anot command outside a hooks array",
					path, i,
				)
			}

			continue
		}

		ownedCount, foreignCount := 0, 0

		for _, cmd := range commands.Array() {
			c := cmd.Get("command")
			if c.Type != gjson.String || !own.OwnsCommand(c.String()) {
				foreignCount++

				continue
			}

			if t := cmd.Get("type"); t.String() != commandType {
				return nil, errors.Wrapf(
					ErrAmbiguousOwnership,
					"%s[%d]: anot command has type %q",
					path, i, t.String(),
				)
			}

			ownedCount++
		}

		if ownedCount > 0 && foreignCount > 0 {
			return nil, errors.Wrapf(
				ErrAmbiguousOwnership,
				"%s[%d]: group mixes anot and foreign commands",
				path, i,
			)
		}

		if ownedCount > 0 {
			owned = append(owned, i)
		}
	}

	return owned, nil
}

// holdsOwnedCommand reports whether any string inside v is an anot
// command. It finds owned entries in values too malformed to edit.
func holdsOwnedCommand(v gjson.Result, own Ownership) bool {
	if v.Type == gjson.String {
		return own.OwnsCommand(v.Str)
	}

	if !v.IsObject() && !v.IsArray() {
		return false
	}

	found := false

	v.ForEach(func(_, item gjson.Result) bool {
		found = holdsOwnedCommand(item, own)

		return !found
	})

	return found
}

func appendGroup(doc []byte, path string, exists bool, group HookGroup) ([]byte, error) {
	raw, err := marshalNoEscape(group)
	if err != nil {
		return nil, err
	}

	if exists {
		doc, err = sjson.SetRawBytes(doc, path+".-1", raw)
	} else {
		doc, err = sjson.SetRawBytes(doc, path, append(append([]byte{'['}, raw...), ']'))
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to add hook to %s", path)
	}

	return doc, nil
}

// deleteGroups removes the given indices from the array at path, highest
// index first so earlier indices stay valid.
func deleteGroups(doc []byte, path string, indices []int) ([]byte, error) {
	var err error

	for i := len(indices) - 1; i >= 0; i-- {
		doc, err = sjson.DeleteBytes(doc, path+"."+strconv.Itoa(indices[i]))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to delete %s[%d]", path, indices[i])
		}
	}

	return doc, nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(err, "failed to encode hook entry")
	}

	return bytes.TrimSpace(buf.Bytes()), nil
}
