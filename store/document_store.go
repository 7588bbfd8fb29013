package store

import (
	"sort"

	"tfidf-search-engine/internal/errors"
	"tfidf-search-engine/model"
)

// DocumentStore owns all Document records for an index. It is a plain
// in-memory map; synchronization is the engine's responsibility, which
// serializes writers and wraps readers behind a single RWMutex.
type DocumentStore struct {
	Docs map[string]*model.Document
}

// New creates an empty DocumentStore.
func New() *DocumentStore {
	return &DocumentStore{Docs: make(map[string]*model.Document)}
}

// Add stores a document. Adding a document whose ID is already present is
// rejected with ErrDuplicateDocument; the store is left untouched.
func (ds *DocumentStore) Add(doc *model.Document) error {
	if doc == nil || doc.DocID == "" {
		return errors.NewValidationError("doc_id", "cannot be empty")
	}
	if _, exists := ds.Docs[doc.DocID]; exists {
		return errors.NewDuplicateDocumentError(doc.DocID)
	}
	ds.Docs[doc.DocID] = doc
	return nil
}

// Get returns the document with the given ID, if present.
func (ds *DocumentStore) Get(docID string) (*model.Document, bool) {
	doc, ok := ds.Docs[docID]
	return doc, ok
}

// Delete removes a document by ID. The inverted index is not touched here;
// stale postings disappear on the next full rebuild.
func (ds *DocumentStore) Delete(docID string) error {
	if _, exists := ds.Docs[docID]; !exists {
		return errors.NewDocumentNotFoundError(docID)
	}
	delete(ds.Docs, docID)
	return nil
}

// Len returns the number of stored documents.
func (ds *DocumentStore) Len() int {
	return len(ds.Docs)
}

// Clear removes all documents.
func (ds *DocumentStore) Clear() {
	ds.Docs = make(map[string]*model.Document)
}

// DocIDs returns all document IDs in ascending order.
func (ds *DocumentStore) DocIDs() []string {
	ids := make([]string, 0, len(ds.Docs))
	for id := range ds.Docs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
