package engine

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"tfidf-search-engine/config"
	"tfidf-search-engine/index"
	"tfidf-search-engine/internal/indexing"
	"tfidf-search-engine/internal/search"
	"tfidf-search-engine/internal/tokenizer"
	"tfidf-search-engine/model"
	"tfidf-search-engine/services"
	"tfidf-search-engine/store"
)

const dataDirPerm = 0755

// Engine owns the document store, the inverted index, and the TF-IDF weights
// for one search index, together with the configuration they were built with.
// There is no process-wide singleton: callers construct an Engine and pass it
// to whatever needs it.
//
// All exported methods are safe for concurrent use. Writers are exclusive,
// and Rebuild replaces the index and weights under a single write lock, so
// readers observe either the fully-old or fully-new index, never a partial
// rebuild.
type Engine struct {
	mu       sync.RWMutex
	cfg      config.Config
	store    *store.DocumentStore
	idx      *index.Index
	indexer  *indexing.Service
	searcher *search.Service
	dataDir  string
}

// NewEngine creates an engine with the given configuration. If dataDir is
// non-empty, an existing snapshot in it is loaded; a missing or unreadable
// snapshot is logged and the engine starts empty.
func NewEngine(dataDir string, cfg config.Config) (*Engine, error) {
	cfg.ApplyDefaults()
	if problems := cfg.Validate(); len(problems) > 0 {
		return nil, fmt.Errorf("invalid engine config: %s", strings.Join(problems, "; "))
	}

	idx := index.New()
	docStore := store.New()
	// One tokenizer for both services keeps document and query
	// normalization aligned.
	tok := tokenizer.New(cfg.StopWords, cfg.MinTermLength)

	indexerService, err := indexing.NewService(idx, docStore, tok, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexer service: %w", err)
	}
	searchService, err := search.NewService(idx, docStore, tok, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create search service: %w", err)
	}

	eng := &Engine{
		cfg:      cfg,
		store:    docStore,
		idx:      idx,
		indexer:  indexerService,
		searcher: searchService,
		dataDir:  dataDir,
	}

	if dataDir != "" {
		if err := os.MkdirAll(dataDir, dataDirPerm); err != nil {
			log.Printf("Warning: Could not create data directory %s: %v. Proceeding without persistence.", dataDir, err)
		} else if err := eng.LoadSnapshot(); err != nil && err != os.ErrNotExist {
			log.Printf("Warning: Failed to load snapshot from %s: %v. Starting with an empty index.", dataDir, err)
		}
	}

	return eng, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() config.Config {
	return e.cfg
}

// AddDocument adds one document to the store. The inverted index and weights
// stay as they were until Rebuild runs; that explicit staleness is part of
// the contract.
func (e *Engine) AddDocument(docID, title, content, url string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexer.AddDocument(docID, title, content, url)
}

// AddPage indexes a crawled page under the given document ID.
func (e *Engine) AddPage(docID string, page model.Page) error {
	return e.AddDocument(docID, page.Title, page.Content, page.URL)
}

// DeleteDocument removes a document from the store. Its postings disappear
// from the index on the next Rebuild.
func (e *Engine) DeleteDocument(docID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexer.DeleteDocument(docID)
}

// Rebuild reconstructs the inverted index from the store and recomputes all
// TF-IDF weights as one atomic transaction.
func (e *Engine) Rebuild() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.indexer.BuildIndex()
	if err := e.indexer.CalculateTFIDF(); err != nil {
		return fmt.Errorf("tf-idf calculation failed: %w", err)
	}
	log.Printf("Index rebuilt: %d documents, %d terms", e.store.Len(), e.idx.Terms.NumTerms())
	return nil
}

// Search runs a ranked TF-IDF query against the last built index.
func (e *Engine) Search(query string, topK int) (services.SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.Search(query, topK)
}

// SearchPhrase runs an exact phrase query against the last built index.
func (e *Engine) SearchPhrase(phrase string, topK int) (services.SearchResult, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.SearchPhrase(phrase, topK)
}

// Suggest returns autocomplete suggestions for the given prefix.
func (e *Engine) Suggest(prefix string, max int) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.searcher.Suggest(prefix, max)
}

// Stats returns statistics about the current index.
func (e *Engine) Stats() model.IndexStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.indexer.Stats()
}

// Document returns the stored document with the given ID, if any.
func (e *Engine) Document(docID string) (*model.Document, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.store.Get(docID)
}
