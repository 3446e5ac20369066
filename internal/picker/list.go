// ABOUTME: Non-interactive catalog listing rendered as a markdown table via glamour
// ABOUTME: Used by `themeswitch list`; falls back to raw markdown if rendering fails

package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/themeswitch/pkg/tui/theme"
)

// ListMarkdown builds the markdown table for c, marking activeID.
func ListMarkdown(c theme.Catalog, activeID string) string {
	var b strings.Builder
	b.WriteString("# Themes\n\n")
	if len(c) == 0 {
		b.WriteString("_No themes available._\n")
		return b.String()
	}

	b.WriteString("| | Theme | ID | Mode |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, t := range c {
		mark := ""
		if t.ID == activeID {
			mark = "●"
		}
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n", mark, escapeCell(t.Label()), t.ID, t.Mode())
	}
	if !c.Contains(activeID) && activeID != "" {
		fmt.Fprintf(&b, "\nActive selection `%s` is not in the catalog.\n", activeID)
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// RenderList renders the catalog table for a terminal of the given width,
// using glamour's dark or light style to match the active theme.
func RenderList(c theme.Catalog, activeID string, wrap int, dark bool) string {
	md := ListMarkdown(c, activeID)

	style := "dark"
	if !dark {
		style = "light"
	}
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if wrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wrap))
	}

	renderer, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n ")
}
