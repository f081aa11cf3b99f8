package report

import (
	"strings"

	"golang.org/x/text/width"
)

// displayWidth returns the terminal cell count of s: East Asian wide and
// fullwidth runes take two cells, everything else one.
func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		w += runeWidth(r)
	}
	return w
}

func runeWidth(r rune) int {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// padToWidth fits s to exactly w display cells: too-wide strings are cut
// with a trailing ellipsis, short ones are space-padded.
func padToWidth(s string, w int) string {
	cur := displayWidth(s)
	if cur < w {
		return s + strings.Repeat(" ", w-cur)
	}
	if cur == w {
		return s
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		rw := runeWidth(r)
		if used+rw > w-1 {
			b.WriteRune('…')
			break
		}
		b.WriteRune(r)
		used += rw
	}
	out := b.String()
	if pad := w - displayWidth(out); pad > 0 {
		out += strings.Repeat(" ", pad)
	}
	return out
}

// middleTruncate shortens a long path by cutting out its middle, keeping
// the drive prefix and the file name end readable.
func middleTruncate(s string, maxCells int) string {
	if displayWidth(s) <= maxCells {
		return s
	}
	runes := []rune(s)
	const prefixLen, suffixLen = 20, 26
	if len(runes) <= prefixLen+suffixLen {
		return s
	}
	return string(runes[:prefixLen]) + "..." + string(runes[len(runes)-suffixLen:])
}

// center pads s with spaces on both sides to w display cells.
func center(s string, w int) string {
	gap := w - displayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
