package tui

import (
	"slices"

	"github.com/smykla-skalski/anot/internal/settings"
	"github.com/smykla-skalski/anot/pkg/event"
)

// defaultPath preselects the first existing location, or the first one.
func defaultPath(locations []settings.Location) string {
	for _, loc := range locations {
		if loc.Exists {
			return loc.Path
		}
	}

	if len(locations) > 0 {
		return locations[0].Path
	}

	return ""
}

func sortEvents(kinds []event.HookEventName) []event.HookEventName {
	out := slices.Clone(kinds)
	slices.Sort(out)

	return slices.Compact(out)
}
