package semantic

import "testing"

func TestStemDisabled(t *testing.T) {
	stemmer := NewStemmer(false, "porter2", 3, nil)

	if stemmer.Stem("running") != "running" {
		t.Error("stemming should return original when disabled")
	}
	if stemmer.Stem("authentication") != "authentication" {
		t.Error("stemming should return original when disabled")
	}
}

func TestStemExcluded(t *testing.T) {
	exclusions := map[string]bool{"api": true, "db": true, "uri": true}
	stemmer := NewStemmer(true, "porter2", 3, exclusions)

	if stemmer.Stem("api") != "api" {
		t.Error("excluded word 'api' should not be stemmed")
	}
	if stemmer.Stem("db") != "db" {
		t.Error("excluded word 'db' should not be stemmed")
	}

	stem := stemmer.Stem("running")
	if stem == "running" {
		t.Error("non-excluded word should be stemmed")
	}
}

func TestStemMinLength(t *testing.T) {
	stemmer := NewStemmer(true, "porter2", 5, nil)

	if stemmer.Stem("run") != "run" {
		t.Error("word shorter than minLength should not be stemmed")
	}

	stem := stemmer.Stem("running")
	if stem == "running" {
		t.Error("word meeting minLength should be stemmed")
	}
}

func TestPorter2Stemming(t *testing.T) {
	stemmer := NewStemmer(true, "porter2", 3, nil)

	tests := []struct {
		word     string
		expected string
		message  string
	}{
		{"running", "run", "present participle"},
		{"runs", "run", "plural"},
		{"runner", "runner", "porter2 keeps runner"},
		{"authentication", "authent", "suffix removal"},
		{"authenticate", "authent", "suffix removal"},
		{"database", "databas", "suffix removal"},
		{"searching", "search", "suffix removal"},
		{"function", "function", "no change needed"},
		{"process", "process", "no change needed"},
	}

	for _, test := range tests {
		result := stemmer.Stem(test.word)
		if result != test.expected {
			t.Errorf("%s: Stem(%q) = %q, expected %q",
				test.message, test.word, result, test.expected)
		}
	}
}

func TestStemAll(t *testing.T) {
	stemmer := NewStemmer(true, "porter2", 3, nil)

	words := []string{"running", "runs", "runner"}
	results := stemmer.StemAll(words)

	if len(results) != len(words) {
		t.Errorf("expected %d results, got %d", len(words), len(results))
	}

	foundDifferent := false
	for i, result := range results {
		if words[i] != result {
			foundDifferent = true
			break
		}
	}
	if !foundDifferent {
		t.Error("some words should be stemmed")
	}
}

func TestStemAllDisabledReturnsOriginal(t *testing.T) {
	stemmer := NewStemmer(false, "porter2", 3, nil)

	words := []string{"running", "authentication"}
	results := stemmer.StemAll(words)

	for i, word := range words {
		if results[i] != word {
			t.Errorf("disabled stemmer should pass through %q unchanged, got %q", word, results[i])
		}
	}
}

func TestStemmedContainsMatchesVariant(t *testing.T) {
	if !StemmedContains(DefaultSemanticGrepStemmer, "running", "the job keeps it running forever") {
		t.Error("expected 'running' query to match text containing 'running'")
	}
	if !StemmedContains(DefaultSemanticGrepStemmer, "run", "the job keeps running forever") {
		t.Error("expected stemmed 'run' to match text containing 'running'")
	}
}

func TestStemmedContainsRejectsUnrelated(t *testing.T) {
	if StemmedContains(DefaultSemanticGrepStemmer, "authentication", "totally unrelated text") {
		t.Error("expected no match for unrelated text")
	}
}

func TestStemmedContainsRequiresAllQueryTokens(t *testing.T) {
	if StemmedContains(DefaultSemanticGrepStemmer, "running database", "the job keeps running forever") {
		t.Error("expected no match when only one of two query tokens is present")
	}
}

func BenchmarkStem(b *testing.B) {
	stemmer := NewStemmer(true, "porter2", 3, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stemmer.Stem("authentication")
	}
}

func BenchmarkStemAll(b *testing.B) {
	stemmer := NewStemmer(true, "porter2", 3, nil)

	words := []string{
		"running", "authentication", "database", "searching",
		"processing", "communication", "function", "variable",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = stemmer.StemAll(words)
	}
}
