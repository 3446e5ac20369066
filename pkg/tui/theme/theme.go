// ABOUTME: Theme records and the ordered Catalog the manager cycles through
// ABOUTME: Catalog lookups are first-match-wins by ID; Search ranks by fuzzy score

package theme

import (
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// Theme is an immutable record describing one selectable theme.
type Theme struct {
	ID          string `json:"id" yaml:"id" toml:"id"`
	DisplayName string `json:"displayName" yaml:"display_name" toml:"display_name"`
	IsDark      bool   `json:"isDark" yaml:"is_dark" toml:"is_dark"`
}

// Label returns the display name, falling back to the ID when it is empty.
func (t Theme) Label() string {
	if t.DisplayName == "" {
		return t.ID
	}
	return t.DisplayName
}

// Mode returns "dark" or "light".
func (t Theme) Mode() string {
	if t.IsDark {
		return "dark"
	}
	return "light"
}

// Catalog is an ordered sequence of themes. Order defines cycling order.
type Catalog []Theme

// Clone returns a copy that shares nothing with c.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	copy(out, c)
	return out
}

// Len returns the number of themes.
func (c Catalog) Len() int { return len(c) }

// Index returns the position of the first theme with the given ID, or -1.
func (c Catalog) Index(id string) int {
	for i := range c {
		if c[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the first theme with the given ID.
func (c Catalog) Find(id string) (Theme, bool) {
	if i := c.Index(id); i >= 0 {
		return c[i], true
	}
	return Theme{}, false
}

// Contains reports whether a theme with the given ID is present.
func (c Catalog) Contains(id string) bool {
	return c.Index(id) >= 0
}

// IDs returns the theme IDs in catalog order.
func (c Catalog) IDs() []string {
	ids := make([]string, len(c))
	for i, t := range c {
		ids[i] = t.ID
	}
	return ids
}

// Search returns the themes whose label or ID fuzzy-matches query, best
// match first. An empty query returns a copy of the whole catalog.
func (c Catalog) Search(query string) Catalog {
	if query == "" {
		return c.Clone()
	}
	matches := fuzzy.FindFrom(norm.NFC.String(query), searchSource(c))
	out := make(Catalog, len(matches))
	for i, m := range matches {
		out[i] = c[m.Index]
	}
	return out
}

// searchSource adapts a Catalog to fuzzy.Source.
type searchSource Catalog

func (s searchSource) String(i int) string {
	t := s[i]
	return norm.NFC.String(t.Label() + " " + t.ID)
}

func (s searchSource) Len() int { return len(s) }
