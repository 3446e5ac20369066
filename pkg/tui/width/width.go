// ABOUTME: Cell-width helpers for aligning theme labels in the picker
// ABOUTME: Grapheme-aware via uniseg; East Asian and emoji widths via go-runewidth

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const ellipsis = "…"

// Of returns the number of terminal cells s occupies. Input must be plain
// text; style it after measuring.
func Of(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
	}
	return w
}

// Truncate shortens s to at most maxWidth cells, marking the cut with an
// ellipsis. Grapheme clusters are never split.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Of(s) <= maxWidth {
		return s
	}
	budget := maxWidth - runewidth.StringWidth(ellipsis)
	var b strings.Builder
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		cw := clusterWidth(cluster)
		if used+cw > budget {
			break
		}
		b.WriteString(cluster)
		used += cw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// PadRight appends spaces until s occupies exactly n cells, truncating
// first when it is wider.
func PadRight(s string, n int) string {
	s = Truncate(s, n)
	if gap := n - Of(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if b := s[i]; b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
