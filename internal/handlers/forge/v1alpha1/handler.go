// Package v1alpha1 handles the itemforge.v1alpha1 ForgeService grpc interface
package v1alpha1

import (
	"context"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	"github.com/KirkDiggler/itemforge/internal/tooltip"
)

// HandlerConfig holds dependencies for the forge handler
type HandlerConfig struct {
	ForgeService forge.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.ForgeService == nil {
		return errors.InvalidArgument("forge service is required")
	}
	return nil
}

// Handler implements the ForgeService gRPC service
type Handler struct {
	forgev1alpha1.UnimplementedForgeServiceServer
	forgeService forge.Service
}

// NewHandler creates a new forge handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		forgeService: cfg.ForgeService,
	}, nil
}

// CreateTemplate stores a new template
func (h *Handler) CreateTemplate(
	ctx context.Context,
	req *forgev1alpha1.CreateTemplateRequest,
) (*forgev1alpha1.CreateTemplateResponse, error) {
	if req.Template == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template is required"))
	}

	output, err := h.forgeService.CreateTemplate(ctx, &forge.CreateTemplateInput{
		Template: TemplateFromProto(req.Template),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.CreateTemplateResponse{
		Template: TemplateToProto(output.Template),
	}, nil
}

// GetTemplate loads one template
func (h *Handler) GetTemplate(
	ctx context.Context,
	req *forgev1alpha1.GetTemplateRequest,
) (*forgev1alpha1.GetTemplateResponse, error) {
	if req.TemplateId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template_id is required"))
	}

	output, err := h.forgeService.GetTemplate(ctx, &forge.GetTemplateInput{
		TemplateID: req.TemplateId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.GetTemplateResponse{
		Template: TemplateToProto(output.Template),
	}, nil
}

// ListTemplates pages through stored templates
func (h *Handler) ListTemplates(
	ctx context.Context,
	req *forgev1alpha1.ListTemplatesRequest,
) (*forgev1alpha1.ListTemplatesResponse, error) {
	output, err := h.forgeService.ListTemplates(ctx, &forge.ListTemplatesInput{
		PageSize:  req.PageSize,
		PageToken: req.PageToken,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &forgev1alpha1.ListTemplatesResponse{
		Templates:     make([]*forgev1alpha1.Template, 0, len(output.Templates)),
		NextPageToken: output.NextPageToken,
		TotalSize:     output.TotalSize,
	}
	for _, tmpl := range output.Templates {
		resp.Templates = append(resp.Templates, TemplateToProto(tmpl))
	}

	return resp, nil
}

// UpdateTemplate replaces a stored template
func (h *Handler) UpdateTemplate(
	ctx context.Context,
	req *forgev1alpha1.UpdateTemplateRequest,
) (*forgev1alpha1.UpdateTemplateResponse, error) {
	if req.Template == nil || req.Template.Id == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template.id is required"))
	}

	output, err := h.forgeService.UpdateTemplate(ctx, &forge.UpdateTemplateInput{
		Template: TemplateFromProto(req.Template),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.UpdateTemplateResponse{
		Template: TemplateToProto(output.Template),
	}, nil
}

// DeleteTemplate removes a template
func (h *Handler) DeleteTemplate(
	ctx context.Context,
	req *forgev1alpha1.DeleteTemplateRequest,
) (*forgev1alpha1.DeleteTemplateResponse, error) {
	if req.TemplateId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template_id is required"))
	}

	_, err := h.forgeService.DeleteTemplate(ctx, &forge.DeleteTemplateInput{
		TemplateID: req.TemplateId,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.DeleteTemplateResponse{}, nil
}

// BuildItem builds a stored template
func (h *Handler) BuildItem(
	ctx context.Context,
	req *forgev1alpha1.BuildItemRequest,
) (*forgev1alpha1.BuildItemResponse, error) {
	if req.TemplateId == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template_id is required"))
	}

	output, err := h.forgeService.BuildItem(ctx, &forge.BuildItemInput{
		TemplateID: req.TemplateId,
		Amount:     int(req.Amount),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.BuildItemResponse{
		Item:    convertItemToProto(output.Item),
		Tooltip: tooltip.Text(output.Item.Stack, false),
	}, nil
}

// BuildTemplate builds a template without storing it
func (h *Handler) BuildTemplate(
	ctx context.Context,
	req *forgev1alpha1.BuildTemplateRequest,
) (*forgev1alpha1.BuildTemplateResponse, error) {
	if req.Template == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template is required"))
	}

	output, err := h.forgeService.BuildTemplate(ctx, &forge.BuildTemplateInput{
		Template: TemplateFromProto(req.Template),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &forgev1alpha1.BuildTemplateResponse{
		Item:    convertItemToProto(output.Item),
		Tooltip: tooltip.Text(output.Item.Stack, false),
	}, nil
}
