package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tfidf-search-engine/internal/engine"
)

// API holds dependencies for API handlers, primarily the search engine.
type API struct {
	engine *engine.Engine
}

// NewAPI creates a new API handler structure.
func NewAPI(eng *engine.Engine) *API {
	return &API{engine: eng}
}

// SetupRoutes defines all the API routes for the search engine.
func SetupRoutes(router *gin.Engine, eng *engine.Engine) {
	apiHandler := NewAPI(eng)

	router.Use(CORSMiddleware())

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/search", apiHandler.SearchHandler)             // Ranked TF-IDF search
		apiRoutes.GET("/search/phrase", apiHandler.PhraseHandler)      // Exact phrase search
		apiRoutes.GET("/suggest", apiHandler.SuggestHandler)           // Autocomplete suggestions
		apiRoutes.GET("/stats", apiHandler.StatsHandler)               // Index statistics
		apiRoutes.POST("/reindex", apiHandler.ReindexHandler)          // Rebuild index + TF-IDF weights
		apiRoutes.POST("/snapshot", apiHandler.SaveSnapshotHandler)    // Persist index state to disk
		apiRoutes.PUT("/documents", apiHandler.AddDocumentsHandler)    // Add documents
		apiRoutes.GET("/documents/:documentId", apiHandler.GetDocumentHandler)
		apiRoutes.DELETE("/documents/:documentId", apiHandler.DeleteDocumentHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler returns statistics about the current index.
func (api *API) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}

// ReindexHandler rebuilds the inverted index and recomputes TF-IDF weights.
// Required after document changes before searches reflect them.
func (api *API) ReindexHandler(c *gin.Context) {
	if err := api.engine.Rebuild(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rebuild index: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Index rebuilt",
		"stats":   api.engine.Stats(),
	})
}

// SaveSnapshotHandler persists the full index state to the data directory.
func (api *API) SaveSnapshotHandler(c *gin.Context) {
	if err := api.engine.SaveSnapshot(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save snapshot: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Snapshot saved", "path": api.engine.SnapshotPath()})
}
