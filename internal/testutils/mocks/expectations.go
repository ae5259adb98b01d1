// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/repositories/templates"
	templatesmock "github.com/KirkDiggler/itemforge/internal/repositories/templates/mock"
)

// ExpectTemplateGet sets up the repository to return tmpl for its ID
func ExpectTemplateGet(ctx context.Context, repo *templatesmock.MockRepository, tmpl *itemdef.Template) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, templates.GetInput{ID: tmpl.ID}).
		Return(&templates.GetOutput{Template: tmpl.Clone()}, nil)
}

// ExpectTemplateNotFound sets up the repository to report id as missing
func ExpectTemplateNotFound(ctx context.Context, repo *templatesmock.MockRepository, id string) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, templates.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("template %s not found", id))
}
