package sheets

import (
	"context"
	"sync"

	"github.com/KirkDiggler/hero-sheet/internal/entities/sheet"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Documents are
// returned by pointer: callers edit the live document in place.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*sheet.Document
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*sheet.Document),
	}
}

// Create registers a document
func (r *InMemoryRepository) Create(_ context.Context, input *CreateInput) (*CreateOutput, error) {
	if input == nil || input.Document == nil {
		return nil, errors.InvalidArgument("document is required")
	}

	if input.Document.ID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Document.ID]; exists {
		return nil, errors.AlreadyExistsf("sheet %s already exists", input.Document.ID).
			WithMeta("sheet_id", input.Document.ID)
	}

	r.store[input.Document.ID] = input.Document

	return &CreateOutput{Document: input.Document}, nil
}

// Get retrieves a document by sheet ID
func (r *InMemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, exists := r.store[input.SheetID]
	if !exists {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.SheetID)
	}

	return &GetOutput{Document: doc}, nil
}

// Delete removes a document
func (r *InMemoryRepository) Delete(_ context.Context, input *DeleteInput) (*DeleteOutput, error) {
	if input == nil || input.SheetID == "" {
		return nil, errors.InvalidArgument("sheet ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SheetID]; !exists {
		return nil, errors.NotFound("sheet not found").WithMeta("sheet_id", input.SheetID)
	}

	delete(r.store, input.SheetID)

	return &DeleteOutput{}, nil
}
