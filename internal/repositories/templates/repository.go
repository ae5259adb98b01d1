// Package templates provides persistence for item templates
package templates

//go:generate mockgen -destination=mock/mock_repository.go -package=templatesmock github.com/KirkDiggler/itemforge/internal/repositories/templates Repository

import (
	"context"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

// Repository defines the interface for item template persistence
type Repository interface {
	// Create stores a new template
	// Returns errors.InvalidArgument for a nil template or empty ID
	// Returns errors.AlreadyExists if a template with the ID is stored
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a template by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if no template exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns stored templates ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Update replaces an existing template
	// Returns errors.NotFound if no template exists
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a template
	// Returns errors.NotFound if no template exists
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a template
type CreateInput struct {
	Template *itemdef.Template
}

// CreateOutput defines the output for creating a template
type CreateOutput struct {
	Template *itemdef.Template
}

// GetInput defines the input for getting a template
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a template
type GetOutput struct {
	Template *itemdef.Template
}

// ListInput defines the input for listing templates
type ListInput struct {
	// PageSize limits the number of templates returned; 0 returns all
	PageSize int32
	// PageToken is the ID to resume after, as returned in NextPageToken
	PageToken string
}

// ListOutput defines the output for listing templates
type ListOutput struct {
	Templates     []*itemdef.Template
	NextPageToken string
	TotalSize     int32
}

// UpdateInput defines the input for updating a template
type UpdateInput struct {
	Template *itemdef.Template
}

// UpdateOutput defines the output for updating a template
type UpdateOutput struct {
	Template *itemdef.Template
}

// DeleteInput defines the input for deleting a template
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a template
type DeleteOutput struct{}
