package engine

import (
	"fmt"
	"log"
	"path/filepath"

	"tfidf-search-engine/index"
	"tfidf-search-engine/internal/persistence"
	"tfidf-search-engine/model"
)

const snapshotFile = "search_index.json"

// snapshot is the on-disk JSON schema for the full index state. Every field
// of a Document, the inverted index, and the weights round-trips losslessly
// through a save/load cycle.
type snapshot struct {
	Documents     map[string]*model.Document `json:"documents"`
	InvertedIndex index.InvertedIndex        `json:"inverted_index"`
	Weights       index.Weights              `json:"tfidf_weights"`
}

// SnapshotPath returns the path of the snapshot file, or "" when the engine
// was created without a data directory.
func (e *Engine) SnapshotPath() string {
	if e.dataDir == "" {
		return ""
	}
	return filepath.Join(e.dataDir, snapshotFile)
}

// SaveSnapshot serializes the documents, inverted index, and TF-IDF weights
// to a single JSON file in the data directory.
func (e *Engine) SaveSnapshot() error {
	path := e.SnapshotPath()
	if path == "" {
		return fmt.Errorf("no data directory configured")
	}

	e.mu.RLock()
	snap := snapshot{
		Documents:     e.store.Docs,
		InvertedIndex: e.idx.Terms,
		Weights:       e.idx.Weights,
	}
	err := persistence.SaveJSON(path, snap)
	e.mu.RUnlock()

	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	log.Printf("Index snapshot saved to %s", path)
	return nil
}

// LoadSnapshot replaces the full in-memory state with the contents of the
// snapshot file. A missing file is reported as os.ErrNotExist so callers can
// treat a fresh start as the normal case.
func (e *Engine) LoadSnapshot() error {
	path := e.SnapshotPath()
	if path == "" {
		return fmt.Errorf("no data directory configured")
	}

	var snap snapshot
	if err := persistence.LoadJSON(path, &snap); err != nil {
		return err
	}

	if snap.Documents == nil {
		snap.Documents = make(map[string]*model.Document)
	}
	if snap.InvertedIndex == nil {
		snap.InvertedIndex = make(index.InvertedIndex)
	}
	if snap.Weights == nil {
		snap.Weights = make(index.Weights)
	}

	e.mu.Lock()
	e.store.Docs = snap.Documents
	e.idx.Terms = snap.InvertedIndex
	e.idx.Weights = snap.Weights
	e.mu.Unlock()

	log.Printf("Index snapshot loaded from %s (%d documents, %d terms)", path, len(snap.Documents), len(snap.InvertedIndex))
	return nil
}
