package index

import "strings"

// Postings maps a document ID to the raw frequency of a term in that
// document. Frequencies are always positive: a term absent from a document
// simply has no entry.
type Postings map[string]int

// InvertedIndex maps each indexed term to its postings. Every document ID
// referenced here must exist in the document store.
type InvertedIndex map[string]Postings

// Weights maps term -> document ID -> TF-IDF weight. It is derived entirely
// from the inverted index and the document store, and is recomputed in full
// rather than patched incrementally.
type Weights map[string]map[string]float64

// Index bundles the inverted index with its derived TF-IDF weights. Both
// maps are replaced wholesale on rebuild so readers never observe a partial
// state.
type Index struct {
	Terms   InvertedIndex
	Weights Weights
}

// New creates an empty Index.
func New() *Index {
	return &Index{
		Terms:   make(InvertedIndex),
		Weights: make(Weights),
	}
}

// DocumentFrequency returns the number of documents containing the term.
func (ii InvertedIndex) DocumentFrequency(term string) int {
	return len(ii[term])
}

// TermsWithPrefix returns all indexed terms starting with the given prefix.
// Order is unspecified; callers rank the result themselves.
func (ii InvertedIndex) TermsWithPrefix(prefix string) []string {
	matches := make([]string, 0)
	for term := range ii {
		if strings.HasPrefix(term, prefix) {
			matches = append(matches, term)
		}
	}
	return matches
}

// NumTerms returns the number of distinct indexed terms.
func (ii InvertedIndex) NumTerms() int {
	return len(ii)
}
