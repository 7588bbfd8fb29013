package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tfidf-search-engine/config"
	"tfidf-search-engine/index"
	"tfidf-search-engine/internal/errors"
	"tfidf-search-engine/internal/tokenizer"
	"tfidf-search-engine/model"
	"tfidf-search-engine/services"
	"tfidf-search-engine/store"
)

// Service implements query scoring against a built index. It fulfills the
// services.Searcher interface.
//
// The service only reads the index and never recomputes weights: after store
// mutations, results are stale until the indexer rebuilds. That staleness is
// part of the contract.
type Service struct {
	idx           *index.Index
	documentStore *store.DocumentStore
	tok           *tokenizer.Tokenizer
	cfg           *config.Config
}

// NewService creates a new search Service. The tokenizer must be the same
// instance used for indexing; mismatched normalization silently degrades
// recall.
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
	return &Service{
		idx:           idx,
		documentStore: documentStore,
		tok:           tok,
		cfg:           cfg,
	}, nil
}

// Search tokenizes the query, sums TF-IDF contributions per candidate
// document, and returns at most topK results ranked by score descending.
// A query term that also occurs in a document's title has its contribution
// multiplied by the configured title boost. Ties are broken by doc ID
// ascending so repeated searches return identical orderings.
//
// Terms absent from the index contribute nothing; an empty index yields an
// empty result set, not an error.
func (s *Service) Search(query string, topK int) (services.SearchResult, error) {
	startTime := time.Now()

	if topK < 1 {
		return services.SearchResult{}, errors.NewValidationError("top_k", "must be at least 1")
	}

	queryTerms := s.tok.Tokenize(query)

	scores := make(map[string]float64)
	matched := make(map[string]map[string]struct{})

	for _, term := range queryTerms {
		byDoc, ok := s.idx.Weights[term]
		if !ok {
			continue
		}
		for docID, weight := range byDoc {
			doc, exists := s.documentStore.Get(docID)
			if !exists {
				continue
			}
			contribution := weight
			if doc.HasTitleTerm(term) {
				contribution *= s.cfg.TitleBoost
			}
			scores[docID] += contribution

			terms, ok := matched[docID]
			if !ok {
				terms = make(map[string]struct{})
				matched[docID] = terms
			}
			terms[term] = struct{}{}
		}
	}

	results := s.rankAndTrim(scores, matched, topK)

	return services.SearchResult{
		Results: results,
		Total:   len(results),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// SearchPhrase finds documents containing the exact phrase as a substring of
// their title or content preview. Title occurrences are weighted by the title
// boost. This is a simple linear scan, not a positional index lookup.
func (s *Service) SearchPhrase(phrase string, topK int) (services.SearchResult, error) {
	startTime := time.Now()

	if topK < 1 {
		return services.SearchResult{}, errors.NewValidationError("top_k", "must be at least 1")
	}

	phraseLower := strings.ToLower(strings.TrimSpace(phrase))
	if phraseLower == "" {
		return services.SearchResult{QueryID: uuid.New().String()}, nil
	}

	scores := make(map[string]float64)
	matched := make(map[string]map[string]struct{})

	for docID, doc := range s.documentStore.Docs {
		titleHits := strings.Count(strings.ToLower(doc.Title), phraseLower)
		contentHits := strings.Count(strings.ToLower(doc.Content), phraseLower)
		if titleHits == 0 && contentHits == 0 {
			continue
		}
		scores[docID] = float64(contentHits) + float64(titleHits)*s.cfg.TitleBoost
		matched[docID] = map[string]struct{}{phraseLower: {}}
	}

	results := s.rankAndTrim(scores, matched, topK)

	return services.SearchResult{
		Results: results,
		Total:   len(results),
		Took:    time.Since(startTime).Milliseconds(),
		QueryID: uuid.New().String(),
	}, nil
}

// Suggest returns indexed terms starting with the given prefix for
// autocomplete, ranked by document frequency descending (most widespread
// terms first) with ties broken alphabetically. max caps the result; if it is
// not positive the configured default applies.
func (s *Service) Suggest(prefix string, max int) []string {
	if max <= 0 {
		max = s.cfg.MaxSuggestions
	}

	prefixLower := strings.ToLower(strings.TrimSpace(prefix))
	if prefixLower == "" {
		return []string{}
	}

	terms := s.idx.Terms.TermsWithPrefix(prefixLower)
	sort.Slice(terms, func(i, j int) bool {
		di := s.idx.Terms.DocumentFrequency(terms[i])
		dj := s.idx.Terms.DocumentFrequency(terms[j])
		if di != dj {
			return di > dj
		}
		return terms[i] < terms[j]
	})

	if len(terms) > max {
		terms = terms[:max]
	}
	return terms
}

// rankAndTrim turns per-document scores into sorted QueryResults, keeping at
// most topK.
func (s *Service) rankAndTrim(scores map[string]float64, matched map[string]map[string]struct{}, topK int) []model.QueryResult {
	ranked := make([]model.QueryResult, 0, len(scores))
	for docID, score := range scores {
		doc, ok := s.documentStore.Get(docID)
		if !ok {
			continue
		}

		matchedTerms := make([]string, 0, len(matched[docID]))
		for term := range matched[docID] {
			matchedTerms = append(matchedTerms, term)
		}
		sort.Strings(matchedTerms)

		ranked = append(ranked, model.QueryResult{
			DocID:        docID,
			Title:        doc.Title,
			URL:          doc.URL,
			Snippet:      doc.Content,
			Score:        score,
			MatchedTerms: matchedTerms,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DocID < ranked[j].DocID
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
