package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/itemforge/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorIsSorted() {
	ve := errors.NewValidationError()
	ve.AddFieldError("material", "is required")
	ve.AddFieldError("enchantments.sharpness", "level must be positive")

	s.True(ve.HasErrors())
	s.Equal(
		"validation failed: enchantments.sharpness: level must be positive; material: is required",
		ve.Error(),
	)

	err := ve.ToError()
	s.Equal(errors.CodeInvalidArgument, err.Code)
	s.NotNil(err.Meta[errors.MetaValidationErrors])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("amount", "must be between %d and %d", 1, 64).
		RequiredField("material").
		InvalidField("flags[0]", "unknown flag")

	s.True(vb.HasErrors())
	err := vb.Build()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "flags[0]: is invalid: unknown flag")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.False(vb.HasErrors())
	s.NoError(vb.Build())
}

func (s *ValidationTestSuite) TestEmptyValidationError() {
	ve := errors.NewValidationError()
	s.Equal("validation failed", ve.Error())
	s.Nil(ve.ToError())
}
