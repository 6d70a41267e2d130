package check

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Suggest returns the candidate closest to name by normalised edit
// distance. Ties go to the earlier candidate; "" means no candidates.
func Suggest(name string, candidates []string) string {
	best, bestScore := "", -1.0
	for _, c := range candidates {
		if c == "" || c == name {
			continue
		}
		if s := similarity(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best
}

func similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(longest)
}
