package match

import (
	"strings"
	"unicode"

	"confbind/cursor"
)

// NormalizeSegment folds one key segment for comparison. Letters are lowered
// and the word separators '-', '_' and ' ' are dropped, so max-conns,
// max_conns, maxConns and MAX_CONNS compare equal.
func NormalizeSegment(seg string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}

		return unicode.ToLower(r)
	}, seg)
}

// NormalizeKey normalizes every segment of key and joins them with dots.
// Quotes are dropped and indices become segments of their own.
func NormalizeKey(key string) string {
	segs := segments(key)
	for i, seg := range segs {
		segs[i] = NormalizeSegment(seg)
	}

	return strings.Join(segs, ".")
}

// segments splits key like cursor.Split. Malformed keys, which sources may
// still report, fall back to a plain split on dots.
func segments(key string) []string {
	segs, err := cursor.Split(key)
	if err != nil {
		return strings.Split(key, ".")
	}

	return segs
}

func lastSegment(key string) string {
	segs := segments(key)
	if len(segs) == 0 {
		return ""
	}

	return segs[len(segs)-1]
}

func isSeparator(r rune) bool {
	return r == '-' || r == '_' || r == ' '
}
