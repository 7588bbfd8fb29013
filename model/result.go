package model

// QueryResult represents a single ranked hit for a search query.
// Results are ephemeral: they are built per search call and never persisted.
type QueryResult struct {
	DocID        string   `json:"doc_id"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	Snippet      string   `json:"snippet"`
	Score        float64  `json:"score"`
	MatchedTerms []string `json:"matched_terms"` // query terms found in the document, sorted
}

// IndexStats summarizes the current state of an index.
type IndexStats struct {
	NumDocuments int     `json:"num_documents"`
	NumTerms     int     `json:"num_terms"`
	AvgDocLength float64 `json:"avg_doc_length"`
}
