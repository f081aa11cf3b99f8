// Package extract pulls loosely delimited fields out of raw log text.
// The log format has no escaping and no guaranteed field order, so
// extraction is purely heuristic: a field starts after a known prefix and
// ends at the nearest of several candidate terminators.
package extract

import (
	"strconv"
	"strings"
)

// Field returns the substring of text between the first occurrence of
// prefix and the earliest following occurrence of any terminator, or the
// end of text when none occurs. The span is returned untrimmed; callers
// decide how much whitespace matters. The second return is false when the
// prefix is absent or the span is empty.
//
// Terminator lists are deliberately over-specified (the next field's label
// plus raw line breaks) because the producer guarantees neither field order
// nor line termination; taking the minimum offset tolerates both.
func Field(text, prefix string, terminators []string) (string, bool) {
	start := strings.Index(text, prefix)
	if start < 0 {
		return "", false
	}
	valueStart := start + len(prefix)
	if valueStart >= len(text) {
		return "", false
	}

	rest := text[valueStart:]
	valueEnd := len(text)
	for _, term := range terminators {
		if pos := strings.Index(rest, term); pos >= 0 && valueStart+pos < valueEnd {
			valueEnd = valueStart + pos
		}
	}

	if valueStart >= valueEnd {
		return "", false
	}
	return text[valueStart:valueEnd], true
}

// Hour recovers the hour of day from an entry's first line, assuming the
// conventional "<date> <HH:MM:SS> ..." layout: second whitespace token,
// text before the first ':'. Any deviation yields false rather than an
// error; values of 24 and above are rejected, not clamped.
func Hour(entry string) (int, bool) {
	firstLine := entry
	if i := strings.IndexByte(entry, '\n'); i >= 0 {
		firstLine = entry[:i]
	}
	fields := strings.Fields(firstLine)
	if len(fields) < 2 {
		return 0, false
	}
	hourStr, _, _ := strings.Cut(fields[1], ":")
	hour, err := strconv.ParseUint(hourStr, 10, 32)
	if err != nil || hour >= 24 {
		return 0, false
	}
	return int(hour), true
}
