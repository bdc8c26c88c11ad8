// Package fuzzy scores tab titles against launcher queries.
package fuzzy

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	substringScore   = 100
	maxOffsetPenalty = 40
	boundaryBonus    = 20
	subsequenceScore = 50
	typoScale        = 40
	// minSimilarity is the lowest per-word similarity still counted as a typo match.
	minSimilarity = 0.6
)

// Scorer implements ports.TextScorer.
//
// Matching is case-insensitive and tiered: a substring beats a subsequence, which
// beats a word within edit distance of the query.
type Scorer struct{}

// NewScorer creates a new Scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score returns the relevance of candidate for query, or 0 if it does not match.
func (s *Scorer) Score(query, candidate string) int {
	query = strings.ToLower(strings.TrimSpace(query))
	candidate = strings.ToLower(candidate)
	if query == "" || candidate == "" {
		return 0
	}

	if score, ok := substring(query, candidate); ok {
		return score
	}
	if score, ok := subsequence(query, candidate); ok {
		return score
	}
	return typo(query, candidate)
}

func substring(query, candidate string) (int, bool) {
	idx := strings.Index(candidate, query)
	if idx < 0 {
		return 0, false
	}

	offset := utf8.RuneCountInString(candidate[:idx])
	score := substringScore - min(offset, maxOffsetPenalty)
	if idx == 0 {
		return score + boundaryBonus, true
	}
	prev, _ := utf8.DecodeLastRuneInString(candidate[:idx])
	if isSeparator(prev) {
		score += boundaryBonus
	}
	return score, true
}

func subsequence(query, candidate string) (int, bool) {
	want := []rune(query)
	next, last, gaps := 0, -1, 0

	for i, r := range []rune(candidate) {
		if next == len(want) {
			break
		}
		if r != want[next] {
			continue
		}
		if last >= 0 {
			gaps += i - last - 1
		}
		last = i
		next++
	}
	if next < len(want) {
		return 0, false
	}
	return max(subsequenceScore-gaps, 1), true
}

func typo(query, candidate string) int {
	best := 0.0
	for _, word := range strings.FieldsFunc(candidate, isSeparator) {
		longest := max(utf8.RuneCountInString(word), utf8.RuneCountInString(query))
		sim := 1 - float64(levenshtein.ComputeDistance(query, word))/float64(longest)
		best = max(best, sim)
	}
	if best < minSimilarity {
		return 0
	}
	return int(best * typoScale)
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
