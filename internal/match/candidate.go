package match

import (
	"cmp"
	"slices"
)

// DefaultSuggestThreshold is the minimum score for a key to be suggested.
const DefaultSuggestThreshold = 0.6

// The whole key dominates; the last segment breaks ties between keys that
// differ only in their parents.
const (
	fullWeight = 0.8
	lastWeight = 0.2
)

// Candidate is a known key scored against an unrecognized one.
type Candidate struct {
	Key string

	FullScore float64 // similarity of the normalized keys
	LastScore float64 // similarity of the normalized last segments

	Score float64
}

// CandidateList is ordered best first.
type CandidateList []Candidate

// RankKeys scores every known key against unknown. Candidates are sorted by
// descending score, equal scores by key.
func RankKeys(unknown string, known []string) CandidateList {
	full := NormalizeKey(unknown)
	last := NormalizeSegment(lastSegment(unknown))

	out := make(CandidateList, 0, len(known))
	for _, key := range known {
		c := Candidate{
			Key:       key,
			FullScore: Similarity(full, NormalizeKey(key)),
			LastScore: Similarity(last, NormalizeSegment(lastSegment(key))),
		}
		c.Score = c.FullScore*fullWeight + c.LastScore*lastWeight

		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b Candidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return cmp.Compare(a.Key, b.Key)
	})

	return out
}

// Suggest returns up to n known keys close to unknown, best first.
func Suggest(unknown string, known []string, n int) []string {
	var out []string
	for _, c := range RankKeys(unknown, known).AboveThreshold(DefaultSuggestThreshold).Top(n) {
		out = append(out, c.Key)
	}

	return out
}

// Top returns the first n candidates.
func (l CandidateList) Top(n int) CandidateList {
	if n >= len(l) {
		return l
	}

	return l[:n]
}

// AboveThreshold returns the candidates scoring at least threshold.
func (l CandidateList) AboveThreshold(threshold float64) CandidateList {
	var out CandidateList
	for _, c := range l {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}

	return out
}
