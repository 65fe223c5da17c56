// Package match ranks known configuration keys against an unrecognized one
// for "did you mean" suggestions.
//
// Keys are compared segment-wise after folding case and word separators,
// using an edit distance that counts a swap of adjacent runes as one edit.
package match
