package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const defaultTopK = 10

// parseLimit reads the "limit" query parameter, falling back to def.
func parseLimit(c *gin.Context, def int) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

// SearchHandler handles ranked search queries.
// Query params: q (required), limit (optional, default 10).
func (api *API) SearchHandler(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No query provided"})
		return
	}

	topK, ok := parseLimit(c, defaultTopK)
	if !ok {
		return
	}

	result, err := api.engine.Search(query, topK)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"count":    result.Total,
		"results":  result.Results,
		"took":     result.Took,
		"query_id": result.QueryID,
	})
}

// PhraseHandler handles exact phrase queries.
// Query params: q (required), limit (optional, default 10).
func (api *API) PhraseHandler(c *gin.Context) {
	phrase := strings.TrimSpace(c.Query("q"))
	if phrase == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No query provided"})
		return
	}

	topK, ok := parseLimit(c, defaultTopK)
	if !ok {
		return
	}

	result, err := api.engine.SearchPhrase(phrase, topK)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Phrase search failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":    phrase,
		"count":    result.Total,
		"results":  result.Results,
		"took":     result.Took,
		"query_id": result.QueryID,
	})
}

// SuggestHandler returns autocomplete suggestions for a prefix.
// Prefixes shorter than two characters yield an empty list rather than an
// error, so type-ahead clients can call it on every keystroke.
func (api *API) SuggestHandler(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("q"))
	if len(prefix) < 2 {
		c.JSON(http.StatusOK, gin.H{"suggestions": []string{}})
		return
	}

	limit, ok := parseLimit(c, 0) // 0 means the engine's configured default
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": api.engine.Suggest(prefix, limit)})
}
