package model

// Document is a single indexed page together with the term statistics
// derived from it at add time. Documents are immutable once stored; the
// derived fields are only ever recomputed by a full index rebuild.
type Document struct {
	DocID      string          `json:"doc_id"`
	Title      string          `json:"title"`
	URL        string          `json:"url"`
	Content    string          `json:"content"` // preview, truncated to the configured snippet length
	TermFreqs  map[string]int  `json:"term_freqs"`
	TitleTerms map[string]bool `json:"title_terms"` // kept separate so scoring can apply the title boost without retokenizing
	Length     int             `json:"length"` // total token count, title plus content
}

// HasTitleTerm reports whether the given normalized term occurs in the
// document title.
func (d *Document) HasTitleTerm(term string) bool {
	return d.TitleTerms[term]
}

// Page is a fetched web page as produced by the crawler, before indexing.
type Page struct {
	URL     string   `json:"url"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Links   []string `json:"links"`
}
