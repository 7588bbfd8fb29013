package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tfidf-search-engine/config"
	"tfidf-search-engine/internal/engine"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *engine.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	eng, err := engine.NewEngine(t.TempDir(), config.Config{})
	require.NoError(t, err)

	router := gin.New()
	SetupRoutes(router, eng)
	return router, eng
}

func seedAndReindex(t *testing.T, eng *engine.Engine) {
	t.Helper()
	require.NoError(t, eng.AddDocument("doc1", "Python", "python programming language", "http://example.com/1"))
	require.NoError(t, eng.AddDocument("doc2", "Java", "java programming language", "http://example.com/2"))
	require.NoError(t, eng.AddDocument("doc3", "Snake", "python snake", "http://example.com/3"))
	require.NoError(t, eng.Rebuild())
}

func doRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)
	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSearchHandler(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodGet, "/api/search?q=python", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Query   string `json:"query"`
		Count   int    `json:"count"`
		QueryID string `json:"query_id"`
		Results []struct {
			DocID        string   `json:"doc_id"`
			Title        string   `json:"title"`
			Score        float64  `json:"score"`
			MatchedTerms []string `json:"matched_terms"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "python", resp.Query)
	assert.Equal(t, 2, resp.Count)
	assert.NotEmpty(t, resp.QueryID)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "doc1", resp.Results[0].DocID)
	assert.Equal(t, []string{"python"}, resp.Results[0].MatchedTerms)
}

func TestSearchHandlerValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"missing query", "/api/search", http.StatusBadRequest},
		{"blank query", "/api/search?q=%20", http.StatusBadRequest},
		{"bad limit", "/api/search?q=python&limit=zero", http.StatusBadRequest},
		{"negative limit", "/api/search?q=python&limit=-1", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodGet, tt.path, nil)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestSearchHandlerEmptyIndex(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/search?q=anything", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestPhraseHandler(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodGet, "/api/search/phrase?q=programming+language", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
}

func TestSuggestHandler(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodGet, "/api/suggest?q=py", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"python"}, resp.Suggestions)

	// Short prefixes return an empty list, not an error.
	w = doRequest(router, http.MethodGet, "/api/suggest?q=p", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Suggestions)
}

func TestAddDocumentsAndReindex(t *testing.T) {
	router, _ := setupTestRouter(t)

	docs := []DocumentInput{
		{DocID: "doc1", Title: "Go", Content: "golang concurrency", URL: "http://example.com/go"},
		{DocID: "doc2", Title: "Rust", Content: "rust ownership", URL: "http://example.com/rust"},
	}
	w := doRequest(router, http.MethodPut, "/api/documents", docs)
	require.Equal(t, http.StatusCreated, w.Code)

	// Not searchable until reindexed.
	w = doRequest(router, http.MethodGet, "/api/search?q=golang", nil)
	var searchResp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searchResp))
	assert.Equal(t, 0, searchResp.Count)

	w = doRequest(router, http.MethodPost, "/api/reindex", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/search?q=golang", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &searchResp))
	assert.Equal(t, 1, searchResp.Count)
}

func TestAddDocumentsRejectsDuplicates(t *testing.T) {
	router, eng := setupTestRouter(t)
	require.NoError(t, eng.AddDocument("doc1", "Existing", "already here", ""))

	w := doRequest(router, http.MethodPut, "/api/documents", []DocumentInput{
		{DocID: "doc1", Title: "Copy", Content: "same id"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAddDocumentsValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodPut, "/api/documents", []DocumentInput{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodPut, "/api/documents", "not a list")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAndDeleteDocument(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodGet, "/api/documents/doc1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/documents/doc1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/documents/doc1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/documents/doc1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatsHandler(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		NumDocuments int     `json:"num_documents"`
		NumTerms     int     `json:"num_terms"`
		AvgDocLength float64 `json:"avg_doc_length"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.NumDocuments)
	assert.Equal(t, 5, stats.NumTerms)
	assert.Greater(t, stats.AvgDocLength, 0.0)
}

func TestSnapshotHandler(t *testing.T) {
	router, eng := setupTestRouter(t)
	seedAndReindex(t, eng)

	w := doRequest(router, http.MethodPost, "/api/snapshot", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The snapshot must be loadable again.
	require.NoError(t, eng.LoadSnapshot())
}
