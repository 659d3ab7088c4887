package semantic

import "testing"

func TestSuggestWithinDistance(t *testing.T) {
	candidates := []string{"findSymbols", "findFiles", "findReferences"}

	got, ok := Suggest("findSymbol", candidates)
	if !ok {
		t.Fatal("expected a suggestion within edit distance 3")
	}
	if got != "findSymbols" {
		t.Errorf("expected findSymbols, got %s", got)
	}
}

func TestSuggestBeyondDistance(t *testing.T) {
	candidates := []string{"findSymbols", "findFiles"}

	if _, ok := Suggest("completelyDifferentName", candidates); ok {
		t.Error("expected no suggestion beyond the distance ceiling")
	}
}

func TestSuggestNoCandidates(t *testing.T) {
	if _, ok := Suggest("anything", nil); ok {
		t.Error("expected no suggestion with an empty candidate list")
	}
}

func TestSuggestPicksClosest(t *testing.T) {
	candidates := []string{"findFiles", "findSymbols", "findReferences"}

	got, ok := Suggest("findSymbolz", candidates)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if got != "findSymbols" {
		t.Errorf("expected the closest candidate findSymbols, got %s", got)
	}
}
