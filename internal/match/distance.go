package match

import "unicode/utf8"

// Distance returns the optimal string alignment distance between a and b:
// the least number of rune insertions, deletions, substitutions and swaps of
// two adjacent runes that turn a into b. A substring is never edited twice,
// so Distance("ca", "abc") is 3.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}

	if len(rb) == 0 {
		return len(ra)
	}

	// rows i-2, i-1 and i of the edit matrix
	back := make([]int, len(rb)+1)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		cur[0] = i

		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			d := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				d = min(d, back[j-2]+1)
			}

			cur[j] = d
		}

		back, prev, cur = prev, cur, back
	}

	return prev[len(rb)]
}

// Similarity scales Distance to [0, 1] by the rune length of the longer
// string. Equal strings score 1.
func Similarity(a, b string) float64 {
	n := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if n == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(n)
}
