package regexutil

// FuzzyMatch reports whether every character of query appears in target in
// order (a classic subsequence test). It is case-sensitive; callers that
// want case-insensitive matching lowercase both sides first.
func FuzzyMatch(query, target string) bool {
	if query == "" {
		return true
	}
	qr := []rune(query)
	ti := 0
	tr := []rune(target)
	for _, qc := range qr {
		found := false
		for ; ti < len(tr); ti++ {
			if tr[ti] == qc {
				found = true
				ti++
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
