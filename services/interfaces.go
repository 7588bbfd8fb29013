package services

import "tfidf-search-engine/model"

// SearchResult is the envelope returned for a search call: the ranked hits
// plus request metadata.
type SearchResult struct {
	Results []model.QueryResult `json:"results"`
	Total   int                 `json:"total"`
	Took    int64               `json:"took"`     // milliseconds
	QueryID string              `json:"query_id"` // unique UUID for this search query
}

// Indexer defines operations for adding data to an index and deriving the
// inverted index and TF-IDF weights from it.
//
// BuildIndex and CalculateTFIDF must be re-run after store mutations before
// queries reflect them; the searcher never triggers recomputation itself.
type Indexer interface {
	AddDocument(docID, title, content, url string) error
	DeleteDocument(docID string) error
	BuildIndex()
	CalculateTFIDF() error
	Stats() model.IndexStats
}

// Searcher defines operations for querying an index.
type Searcher interface {
	Search(query string, topK int) (SearchResult, error)
	SearchPhrase(phrase string, topK int) (SearchResult, error)
	Suggest(prefix string, max int) []string
}
