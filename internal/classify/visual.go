package classify

import (
	"strings"

	"github.com/kentdenver/events-digest/internal/event"
)

// Visual is the icon and accent colours used for an event card
type Visual struct {
	Icon   string `json:"icon"`
	Color  string `json:"color"`
	Border string `json:"border"`
}

// Palette maps a sport or arts category to its Visual. Entries are matched
// in order, by substring of the event topic.
type Palette struct {
	entries  []paletteEntry
	fallback Visual
}

type paletteEntry struct {
	key    string
	visual Visual
}

func gradient(from, to string) string {
	return "linear-gradient(135deg, " + from + " 0%, " + to + " 100%)"
}

func visual(icon, from, to string) Visual {
	return Visual{Icon: icon, Color: gradient(from, to), Border: from}
}

// SportPalette returns the palette for athletics
func SportPalette() Palette {
	return Palette{
		entries: []paletteEntry{
			{"soccer", visual("⚽", "#22c55e", "#16a34a")},
			{"football", visual("🏈", "#dc2626", "#991b1b")},
			{"tennis", visual("🎾", "#06b6d4", "#0891b2")},
			{"golf", visual("⛳", "#eab308", "#ca8a04")},
			{"cross country", visual("🏃", "#8b5cf6", "#7c3aed")},
			{"field hockey", visual("🏑", "#ec4899", "#db2777")},
			{"volleyball", visual("🏐", "#f59e0b", "#d97706")},
			{"basketball", visual("🏀", "#f97316", "#ea580c")},
			{"lacrosse", visual("🥍", "#10b981", "#059669")},
			{"baseball", visual("⚾", "#3b82f6", "#2563eb")},
			{"swimming", visual("🏊", "#06b6d4", "#0891b2")},
			{"track", visual("🏃", "#8b5cf6", "#7c3aed")},
			{"ice hockey", visual("🏒", "#64748b", "#475569")},
		},
		fallback: visual("🏆", "#6b7280", "#4b5563"),
	}
}

// ArtsPalette returns the palette for arts categories
func ArtsPalette() Palette {
	return Palette{
		entries: []paletteEntry{
			{"dance", visual("💃", "#ec4899", "#db2777")},
			{"music", visual("🎵", "#8b5cf6", "#7c3aed")},
			{"theater", visual("🎭", "#f59e0b", "#d97706")},
			{"theatre", visual("🎭", "#f59e0b", "#d97706")},
			{"visual", visual("🎨", "#06b6d4", "#0891b2")},
			{"art", visual("🎨", "#06b6d4", "#0891b2")},
			{"concert", visual("🎶", "#8b5cf6", "#7c3aed")},
			{"performance", visual("🎵", "#f97316", "#ea580c")},
			{"showcase", visual("✨", "#eab308", "#ca8a04")},
			{"exhibit", visual("🖼️", "#06b6d4", "#0891b2")},
		},
		fallback: visual("🎪", "#a11919", "#7c1414"),
	}
}

// Lookup returns the first entry whose key appears in topic, or the fallback
func (p Palette) Lookup(topic string) Visual {
	lower := strings.ToLower(topic)
	for _, e := range p.entries {
		if strings.Contains(lower, e.key) {
			return e.visual
		}
	}
	return p.fallback
}

// Classifier resolves the visual config for events
type Classifier struct {
	sports Palette
	arts   Palette
}

// New creates a Classifier with the given palettes
func New(sports, arts Palette) *Classifier {
	return &Classifier{sports: sports, arts: arts}
}

// Default creates a Classifier with the built-in palettes
func Default() *Classifier {
	return New(SportPalette(), ArtsPalette())
}

// Visual returns the icon and colours for an event
func (c *Classifier) Visual(e event.Event) Visual {
	switch v := e.(type) {
	case *event.Performance:
		return c.arts.Lookup(v.Category)
	case *event.Game:
		return c.sports.Lookup(v.Sport)
	default:
		return c.sports.fallback
	}
}
