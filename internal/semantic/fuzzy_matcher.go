package semantic

import "github.com/hbollon/go-edlib"

// maxSuggestionDistance is the edlib Levenshtein-distance ceiling beyond
// which a candidate is not worth offering as a "did you mean" suggestion.
const maxSuggestionDistance = 3

// Suggest returns the candidate with the lowest Levenshtein edit distance
// to query, when that distance is within maxSuggestionDistance. Used to
// annotate an otherwise-empty findSymbols/findFiles result; it never
// changes which results are returned.
func Suggest(query string, candidates []string) (string, bool) {
	best := ""
	bestDist := maxSuggestionDistance + 1
	for _, c := range candidates {
		d := edlib.LevenshteinDistance(query, c)
		if d < bestDist {
			bestDist = d
			best = c
		}
	}
	if bestDist > maxSuggestionDistance {
		return "", false
	}
	return best, true
}
