// Package config provides configuration structures for the search engine.
// It defines tokenization, scoring, and snippet options for an index.
package config

import "strings"

// DefaultStopWords is the stop-word set used when none is configured.
// Common English function words that carry no ranking signal.
var DefaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"could", "should", "may", "might", "can", "this", "that", "these",
	"those", "i", "you", "he", "she", "it", "we", "they", "them", "their",
}

// Config contains all tunable parameters of the indexing and scoring engine.
// Every knob is overridable at construction time so the engine can be tested
// with controlled vocabularies.
type Config struct {
	StopWords      []string `json:"stop_words"`      // Terms excluded from indexing and queries
	MinTermLength  int      `json:"min_term_length"` // Tokens shorter than this are discarded
	TitleBoost     float64  `json:"title_boost"`     // Multiplier applied to query terms that occur in a document title
	SnippetLength  int      `json:"snippet_length"`  // Maximum length (in runes) of the stored content preview
	MaxSuggestions int      `json:"max_suggestions"` // Default cap for autocomplete suggestions
}

// ApplyDefaults fills in zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.StopWords == nil {
		c.StopWords = append([]string(nil), DefaultStopWords...)
	}
	if c.MinTermLength == 0 {
		c.MinTermLength = 3
	}
	if c.TitleBoost == 0 {
		c.TitleBoost = 3.0
	}
	if c.SnippetLength == 0 {
		c.SnippetLength = 500
	}
	if c.MaxSuggestions == 0 {
		c.MaxSuggestions = 5
	}
}

// Validate checks the configuration for inconsistencies and returns a list of
// problems found. An empty list means the configuration is usable.
func (c *Config) Validate() []string {
	var problems []string

	if c.MinTermLength < 1 {
		problems = append(problems, "min_term_length must be at least 1")
	}
	if c.TitleBoost < 1 {
		problems = append(problems, "title_boost must be at least 1")
	}
	if c.SnippetLength < 0 {
		problems = append(problems, "snippet_length cannot be negative")
	}
	if c.MaxSuggestions < 0 {
		problems = append(problems, "max_suggestions cannot be negative")
	}

	seen := make(map[string]bool)
	for _, w := range c.StopWords {
		if strings.TrimSpace(w) == "" {
			problems = append(problems, "stop word cannot be empty or whitespace-only")
			continue
		}
		if seen[w] {
			problems = append(problems, "duplicate stop word '"+w+"'")
		}
		seen[w] = true
	}

	return problems
}
