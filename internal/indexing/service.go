package indexing

import (
	"fmt"
	"math"

	"tfidf-search-engine/config"
	"tfidf-search-engine/index"
	"tfidf-search-engine/internal/errors"
	"tfidf-search-engine/internal/tokenizer"
	"tfidf-search-engine/model"
	"tfidf-search-engine/store"
)

// Service implements the indexing logic for a single index: document
// ingestion, inverted index construction, and TF-IDF weight calculation.
// It fulfills the services.Indexer interface.
//
// The service does no locking of its own; the engine serializes access.
type Service struct {
	idx           *index.Index
	documentStore *store.DocumentStore
	tok           *tokenizer.Tokenizer
	cfg           *config.Config
}

// NewService creates a new indexing Service. The tokenizer must be the same
// instance the search service uses, so document terms and query terms
// normalize identically.
func NewService(idx *index.Index, documentStore *store.DocumentStore, tok *tokenizer.Tokenizer, cfg *config.Config) (*Service, error) {
	if idx == nil {
		return nil, fmt.Errorf("index cannot be nil")
	}
	if documentStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if tok == nil {
		return nil, fmt.Errorf("tokenizer cannot be nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if idx.Terms == nil {
		idx.Terms = make(index.InvertedIndex)
	}
	if idx.Weights == nil {
		idx.Weights = make(index.Weights)
	}
	if documentStore.Docs == nil {
		documentStore.Docs = make(map[string]*model.Document)
	}
	return &Service{
		idx:           idx,
		documentStore: documentStore,
		tok:           tok,
		cfg:           cfg,
	}, nil
}

// AddDocument tokenizes the title and content of a document and stores it
// with its term statistics. Adding an ID that is already present fails with
// ErrDuplicateDocument and leaves all previously indexed documents intact.
//
// The inverted index and TF-IDF weights are not updated here; callers must
// run BuildIndex and CalculateTFIDF before queries reflect the new document.
func (s *Service) AddDocument(docID, title, content, url string) error {
	if docID == "" {
		return errors.NewValidationError("doc_id", "cannot be empty")
	}
	if _, exists := s.documentStore.Get(docID); exists {
		return errors.NewDuplicateDocumentError(docID)
	}

	titleTokens := s.tok.Tokenize(title)
	contentTokens := s.tok.Tokenize(content)

	termFreqs := make(map[string]int, len(titleTokens)+len(contentTokens))
	for _, t := range titleTokens {
		termFreqs[t]++
	}
	for _, t := range contentTokens {
		termFreqs[t]++
	}

	titleTerms := make(map[string]bool, len(titleTokens))
	for _, t := range titleTokens {
		titleTerms[t] = true
	}

	doc := &model.Document{
		DocID:      docID,
		Title:      title,
		URL:        url,
		Content:    truncate(content, s.cfg.SnippetLength),
		TermFreqs:  termFreqs,
		TitleTerms: titleTerms,
		Length:     len(titleTokens) + len(contentTokens),
	}

	return s.documentStore.Add(doc)
}

// DeleteDocument removes a document from the store. Its postings stay in the
// inverted index until the next BuildIndex, which rebuilds from scratch and
// therefore drops them.
func (s *Service) DeleteDocument(docID string) error {
	return s.documentStore.Delete(docID)
}

// BuildIndex derives the full term -> {doc ID: frequency} mapping from the
// documents currently in the store. It always starts from an empty map, so
// repeated calls are idempotent and entries from deleted documents never
// survive a rebuild.
func (s *Service) BuildIndex() {
	rebuilt := make(index.InvertedIndex)
	for docID, doc := range s.documentStore.Docs {
		for term, freq := range doc.TermFreqs {
			if freq <= 0 {
				continue
			}
			postings, ok := rebuilt[term]
			if !ok {
				postings = make(index.Postings)
				rebuilt[term] = postings
			}
			postings[docID] = freq
		}
	}
	s.idx.Terms = rebuilt
}

// CalculateTFIDF recomputes the weight of every (term, document) pair in the
// inverted index:
//
//	tf     = term frequency in doc / doc token count
//	idf    = ln(total documents / documents containing term)
//	weight = tf * idf
//
// An empty store is a valid state: the weights are left empty and no error is
// returned. A term present in the index with zero document frequency, or a
// posting pointing at a missing document, violates the index invariants and
// fails with ErrCorruptIndex.
func (s *Service) CalculateTFIDF() error {
	numDocs := s.documentStore.Len()
	if numDocs == 0 {
		s.idx.Weights = make(index.Weights)
		return nil
	}

	weights := make(index.Weights, len(s.idx.Terms))
	for term, postings := range s.idx.Terms {
		df := len(postings)
		if df == 0 {
			return errors.NewCorruptIndexError(term, "zero document frequency")
		}
		idf := math.Log(float64(numDocs) / float64(df))

		termWeights := make(map[string]float64, df)
		for docID, freq := range postings {
			doc, ok := s.documentStore.Get(docID)
			if !ok {
				return errors.NewCorruptIndexError(term, fmt.Sprintf("posting references missing document '%s'", docID))
			}
			var tf float64
			if doc.Length > 0 {
				tf = float64(freq) / float64(doc.Length)
			}
			termWeights[docID] = tf * idf
		}
		weights[term] = termWeights
	}

	s.idx.Weights = weights
	return nil
}

// Stats returns document count, distinct term count, and average document
// length for the current store and index.
func (s *Service) Stats() model.IndexStats {
	stats := model.IndexStats{
		NumDocuments: s.documentStore.Len(),
		NumTerms:     s.idx.Terms.NumTerms(),
	}
	if stats.NumDocuments > 0 {
		total := 0
		for _, doc := range s.documentStore.Docs {
			total += doc.Length
		}
		stats.AvgDocLength = float64(total) / float64(stats.NumDocuments)
	}
	return stats
}

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
