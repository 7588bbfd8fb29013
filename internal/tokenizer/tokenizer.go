package tokenizer

import (
	"regexp"
	"strings"
)

// nonAlphanumericRegex matches sequences of non-alphanumeric characters.
var nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenizer splits raw text into normalized terms. It is pure and
// deterministic: the same input always yields the same output, which is what
// keeps document terms and query terms aligned.
type Tokenizer struct {
	stopWords map[string]struct{}
	minLen    int
}

// New creates a Tokenizer with the given stop-word set and minimum term
// length. Tokens shorter than minTermLength and tokens in stopWords are
// discarded.
func New(stopWords []string, minTermLength int) *Tokenizer {
	sw := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		sw[strings.ToLower(w)] = struct{}{}
	}
	if minTermLength < 1 {
		minTermLength = 1
	}
	return &Tokenizer{stopWords: sw, minLen: minTermLength}
}

// Tokenize converts text into a slice of normalized terms. It lowercases the
// input, splits on runs of non-alphanumeric characters, and drops stop words
// and short tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	split := nonAlphanumericRegex.Split(lower, -1)

	tokens := make([]string, 0, len(split))
	for _, s := range split {
		if s == "" || len(s) < t.minLen {
			continue
		}
		if _, stop := t.stopWords[s]; stop {
			continue
		}
		tokens = append(tokens, s)
	}
	return tokens
}

// TermFrequencies tokenizes text and counts occurrences of each term.
func (t *Tokenizer) TermFrequencies(text string) map[string]int {
	freqs := make(map[string]int)
	for _, token := range t.Tokenize(text) {
		freqs[token]++
	}
	return freqs
}
