package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDuplicateDocument is returned when adding a document whose ID is already indexed
	ErrDuplicateDocument = errors.New("duplicate document")

	// ErrDocumentNotFound is returned when a document is not found
	ErrDocumentNotFound = errors.New("document not found")

	// ErrCorruptIndex is returned when an index invariant violation is detected
	ErrCorruptIndex = errors.New("corrupt index")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// DuplicateDocumentError represents a duplicate document error with context
type DuplicateDocumentError struct {
	DocID string
}

func (e *DuplicateDocumentError) Error() string {
	return fmt.Sprintf("document with ID '%s' already exists", e.DocID)
}

func (e *DuplicateDocumentError) Is(target error) bool {
	return target == ErrDuplicateDocument
}

// NewDuplicateDocumentError creates a new DuplicateDocumentError
func NewDuplicateDocumentError(docID string) *DuplicateDocumentError {
	return &DuplicateDocumentError{DocID: docID}
}

// DocumentNotFoundError represents a document not found error with context
type DocumentNotFoundError struct {
	DocID string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document with ID '%s' not found", e.DocID)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError
func NewDocumentNotFoundError(docID string) *DocumentNotFoundError {
	return &DocumentNotFoundError{DocID: docID}
}

// CorruptIndexError represents an index invariant violation detected during
// TF-IDF calculation, with the offending term for context.
type CorruptIndexError struct {
	Term   string
	Reason string
}

func (e *CorruptIndexError) Error() string {
	return fmt.Sprintf("corrupt index at term '%s': %s", e.Term, e.Reason)
}

func (e *CorruptIndexError) Is(target error) bool {
	return target == ErrCorruptIndex
}

// NewCorruptIndexError creates a new CorruptIndexError
func NewCorruptIndexError(term, reason string) *CorruptIndexError {
	return &CorruptIndexError{Term: term, Reason: reason}
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
