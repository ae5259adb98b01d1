package forge

import (
	"github.com/df-mc/dragonfly/server/item"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

// CreateTemplateInput defines the request for storing a new template
type CreateTemplateInput struct {
	// Template.ID may be empty, in which case one is generated
	Template *itemdef.Template
}

// CreateTemplateOutput defines the response for storing a new template
type CreateTemplateOutput struct {
	Template *itemdef.Template
}

// GetTemplateInput defines the request for getting a template
type GetTemplateInput struct {
	TemplateID string
}

// GetTemplateOutput defines the response for getting a template
type GetTemplateOutput struct {
	Template *itemdef.Template
}

// ListTemplatesInput defines the request for listing templates
type ListTemplatesInput struct {
	PageSize  int32
	PageToken string
}

// ListTemplatesOutput defines the response for listing templates
type ListTemplatesOutput struct {
	Templates     []*itemdef.Template
	NextPageToken string
	TotalSize     int32
}

// UpdateTemplateInput defines the request for replacing a template
type UpdateTemplateInput struct {
	Template *itemdef.Template
}

// UpdateTemplateOutput defines the response for replacing a template
type UpdateTemplateOutput struct {
	Template *itemdef.Template
}

// DeleteTemplateInput defines the request for deleting a template
type DeleteTemplateInput struct {
	TemplateID string
}

// DeleteTemplateOutput defines the response for deleting a template
type DeleteTemplateOutput struct{}

// BuildItemInput defines the request for building a stored template
type BuildItemInput struct {
	TemplateID string
	// Amount overrides the template's amount and roll when positive
	Amount int
}

// BuildItemOutput defines the response for building a stored template
type BuildItemOutput struct {
	Item *BuiltItem
}

// BuildTemplateInput defines the request for building a template that is
// not stored
type BuildTemplateInput struct {
	Template *itemdef.Template
}

// BuildTemplateOutput defines the response for building an inline template
type BuildTemplateOutput struct {
	Item *BuiltItem
}

// BuiltItem is a materialised stack together with a transport friendly
// summary of it
type BuiltItem struct {
	TemplateID string
	Stack      item.Stack
	Summary    *itemdef.Item
}
