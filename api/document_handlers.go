package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	engineErrors "tfidf-search-engine/internal/errors"
)

// DocumentInput is the request shape for adding a document.
type DocumentInput struct {
	DocID   string `json:"doc_id" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// AddDocumentsHandler adds a batch of documents to the store. Duplicate IDs
// are rejected with 409; documents added earlier in the batch stay added.
// The index is not rebuilt here; call /api/reindex afterwards.
func (api *API) AddDocumentsHandler(c *gin.Context) {
	var docs []DocumentInput
	if err := c.ShouldBindJSON(&docs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No documents provided"})
		return
	}

	added := 0
	for _, doc := range docs {
		if err := api.engine.AddDocument(doc.DocID, doc.Title, doc.Content, doc.URL); err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, engineErrors.ErrDuplicateDocument):
				status = http.StatusConflict
			case errors.Is(err, engineErrors.ErrInvalidInput):
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{
				"error": "Failed to add document '" + doc.DocID + "': " + err.Error(),
				"added": added,
			})
			return
		}
		added++
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Documents added; call /api/reindex to make them searchable",
		"added":   added,
	})
}

// GetDocumentHandler returns a stored document by ID.
func (api *API) GetDocumentHandler(c *gin.Context) {
	docID := c.Param("documentId")

	doc, ok := api.engine.Document(docID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document '" + docID + "' not found"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DeleteDocumentHandler removes a document from the store. Its postings
// disappear from search results after the next reindex.
func (api *API) DeleteDocumentHandler(c *gin.Context) {
	docID := c.Param("documentId")

	if err := api.engine.DeleteDocument(docID); err != nil {
		if errors.Is(err, engineErrors.ErrDocumentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Document '" + docID + "' not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document '" + docID + "' deleted; call /api/reindex to update the index"})
}
