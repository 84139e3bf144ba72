// Package sheets stores the live sheet documents of open sessions
package sheets

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetsmock github.com/KirkDiggler/hero-sheet/internal/repositories/sheets Repository

import (
	"context"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
)

// Repository defines the storage interface for open sheets
type Repository interface {
	// Create registers a new document
	Create(ctx context.Context, input *CreateInput) (*CreateOutput, error)

	// Get returns the live document of a session
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Delete drops a document when its session ends
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the request for registering a document
type CreateInput struct {
	Document *sheet.Document
}

// CreateOutput defines the response for registering a document
type CreateOutput struct {
	Document *sheet.Document
}

// GetInput defines the request for retrieving a document
type GetInput struct {
	SheetID string
}

// GetOutput defines the response for retrieving a document
type GetOutput struct {
	Document *sheet.Document
}

// DeleteInput defines the request for dropping a document
type DeleteInput struct {
	SheetID string
}

// DeleteOutput defines the response for dropping a document
type DeleteOutput struct{}
