// Package forge implements the orchestrator that stores item templates and
// turns them into host item stacks
package forge

//go:generate mockgen -destination=mock/mock_service.go -package=forgemock github.com/KirkDiggler/itemforge/internal/orchestrators/forge Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/materials"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	"github.com/KirkDiggler/itemforge/internal/pkg/clock"
	"github.com/KirkDiggler/itemforge/internal/pkg/idgen"
	"github.com/KirkDiggler/itemforge/internal/repositories/templates"
)

// Template write operations, used as metric labels
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Service defines the interface for forge operations
type Service interface {
	// Template management
	CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error)
	GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error)
	ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error)
	UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error)
	DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error)

	// Item building
	BuildItem(ctx context.Context, input *BuildItemInput) (*BuildItemOutput, error)
	BuildTemplate(ctx context.Context, input *BuildTemplateInput) (*BuildTemplateOutput, error)
}

// Config holds the dependencies for the forge orchestrator
type Config struct {
	TemplateRepo templates.Repository
	Catalog      *materials.Catalog
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	DiceRoller   dice.Roller
	// Metrics is optional
	Metrics *metrics.Metrics
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.TemplateRepo == nil {
		vb.RequiredField("TemplateRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}

	return vb.Build()
}

type orchestrator struct {
	templateRepo templates.Repository
	catalog      *materials.Catalog
	idGen        idgen.Generator
	clock        clock.Clock
	roller       dice.Roller
	metrics      *metrics.Metrics
	validate     *validator.Validate
}

// NewOrchestrator creates a new forge orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		templateRepo: cfg.TemplateRepo,
		catalog:      cfg.Catalog,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		roller:       cfg.DiceRoller,
		metrics:      cfg.Metrics,
		validate:     newValidator(),
	}, nil
}

// CreateTemplate validates and stores a new template
func (o *orchestrator) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*CreateTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	tmpl := input.Template.Clone()
	if tmpl.ID == "" {
		tmpl.ID = o.idGen.Generate()
	}
	now := o.clock.Now()
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	if err := o.validateTemplate(tmpl); err != nil {
		return nil, err
	}

	output, err := o.templateRepo.Create(ctx, templates.CreateInput{Template: tmpl})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create template %s", tmpl.ID)
	}

	o.metrics.TemplateWritten(OperationCreate)
	slog.InfoContext(ctx, "template created",
		"template_id", tmpl.ID,
		"material", tmpl.Material)

	return &CreateTemplateOutput{Template: output.Template}, nil
}

// GetTemplate loads a stored template
func (o *orchestrator) GetTemplate(ctx context.Context, input *GetTemplateInput) (*GetTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	output, err := o.templateRepo.Get(ctx, templates.GetInput{ID: input.TemplateID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get template %s", input.TemplateID)
	}

	return &GetTemplateOutput{Template: output.Template}, nil
}

// ListTemplates pages through stored templates ordered by ID
func (o *orchestrator) ListTemplates(ctx context.Context, input *ListTemplatesInput) (*ListTemplatesOutput, error) {
	if input == nil {
		input = &ListTemplatesInput{}
	}
	if input.PageSize < 0 {
		return nil, errors.InvalidArgument("page size cannot be negative")
	}

	output, err := o.templateRepo.List(ctx, templates.ListInput{
		PageSize:  input.PageSize,
		PageToken: input.PageToken,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	return &ListTemplatesOutput{
		Templates:     output.Templates,
		NextPageToken: output.NextPageToken,
		TotalSize:     output.TotalSize,
	}, nil
}

// UpdateTemplate replaces a stored template, keeping its creation time
func (o *orchestrator) UpdateTemplate(ctx context.Context, input *UpdateTemplateInput) (*UpdateTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}
	if input.Template.ID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	existing, err := o.templateRepo.Get(ctx, templates.GetInput{ID: input.Template.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get template %s", input.Template.ID)
	}

	tmpl := input.Template.Clone()
	tmpl.CreatedAt = existing.Template.CreatedAt
	tmpl.UpdatedAt = o.clock.Now()

	if err := o.validateTemplate(tmpl); err != nil {
		return nil, err
	}

	output, err := o.templateRepo.Update(ctx, templates.UpdateInput{Template: tmpl})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update template %s", tmpl.ID)
	}

	o.metrics.TemplateWritten(OperationUpdate)
	slog.InfoContext(ctx, "template updated", "template_id", tmpl.ID)

	return &UpdateTemplateOutput{Template: output.Template}, nil
}

// DeleteTemplate removes a stored template
func (o *orchestrator) DeleteTemplate(ctx context.Context, input *DeleteTemplateInput) (*DeleteTemplateOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}

	if _, err := o.templateRepo.Delete(ctx, templates.DeleteInput{ID: input.TemplateID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete template %s", input.TemplateID)
	}

	o.metrics.TemplateWritten(OperationDelete)
	slog.InfoContext(ctx, "template deleted", "template_id", input.TemplateID)

	return &DeleteTemplateOutput{}, nil
}
