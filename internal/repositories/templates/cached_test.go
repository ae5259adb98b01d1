package templates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/repositories/templates"
	templatesmock "github.com/KirkDiggler/itemforge/internal/repositories/templates/mock"
	"github.com/KirkDiggler/itemforge/internal/testutils"
	"github.com/KirkDiggler/itemforge/internal/testutils/mocks"
)

type CachedTemplatesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *templatesmock.MockRepository
	repo     templates.Repository
	ctx      context.Context
}

func TestCachedTemplatesSuite(t *testing.T) {
	suite.Run(t, new(CachedTemplatesTestSuite))
}

func (s *CachedTemplatesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = templatesmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	repo, err := templates.NewCached(&templates.CacheConfig{
		Repository: s.mockRepo,
		Size:       8,
		TTL:        time.Minute,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *CachedTemplatesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedTemplatesTestSuite) TestNewCachedValidation() {
	testCases := []struct {
		name   string
		config *templates.CacheConfig
	}{
		{name: "nil config", config: nil},
		{name: "nil repository", config: &templates.CacheConfig{}},
		{name: "negative size", config: &templates.CacheConfig{Repository: s.mockRepo, Size: -1}},
		{name: "negative ttl", config: &templates.CacheConfig{Repository: s.mockRepo, TTL: -time.Second}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			repo, err := templates.NewCached(tc.config)
			s.True(errors.IsInvalidArgument(err))
			s.Nil(repo)
		})
	}
}

func (s *CachedTemplatesTestSuite) TestGetHitsRepositoryOnce() {
	tmpl := testutils.CreateTestTemplate("sword")
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, tmpl).Times(1)

	first, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)
	second, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)

	s.Equal(tmpl, first.Template)
	s.Equal(tmpl, second.Template)

	// cached copies must not leak mutations between callers
	second.Template.Lore[0] = "changed"
	third, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)
	s.Equal(tmpl.Lore, third.Template.Lore)
}

func (s *CachedTemplatesTestSuite) TestGetDoesNotCacheErrors() {
	mocks.ExpectTemplateNotFound(s.ctx, s.mockRepo, "missing").Times(2)

	_, err := s.repo.Get(s.ctx, templates.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
	_, err = s.repo.Get(s.ctx, templates.GetInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *CachedTemplatesTestSuite) TestCreatePopulatesCache() {
	tmpl := testutils.CreateTestTemplate("sword")
	s.mockRepo.EXPECT().
		Create(s.ctx, templates.CreateInput{Template: tmpl}).
		Return(&templates.CreateOutput{Template: tmpl.Clone()}, nil)

	_, err := s.repo.Create(s.ctx, templates.CreateInput{Template: tmpl})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)
	s.Equal(tmpl, output.Template)
}

func (s *CachedTemplatesTestSuite) TestUpdateRefreshesCache() {
	tmpl := testutils.CreateTestTemplate("sword")
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, tmpl)
	_, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)

	changed := tmpl.Clone()
	changed.Name = "Renamed"
	s.mockRepo.EXPECT().
		Update(s.ctx, templates.UpdateInput{Template: changed}).
		Return(&templates.UpdateOutput{Template: changed.Clone()}, nil)

	_, err = s.repo.Update(s.ctx, templates.UpdateInput{Template: changed})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)
	s.Equal("Renamed", output.Template.Name)
}

func (s *CachedTemplatesTestSuite) TestFailedUpdateEvicts() {
	tmpl := testutils.CreateTestTemplate("sword")
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, tmpl).Times(2)
	_, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Update(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("boom"))

	_, err = s.repo.Update(s.ctx, templates.UpdateInput{Template: tmpl})
	s.Error(err)

	_, err = s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)
}

func (s *CachedTemplatesTestSuite) TestDeleteEvicts() {
	tmpl := testutils.CreateTestTemplate("sword")
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, tmpl)
	_, err := s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.Require().NoError(err)

	s.mockRepo.EXPECT().
		Delete(s.ctx, templates.DeleteInput{ID: "sword"}).
		Return(&templates.DeleteOutput{}, nil)
	_, err = s.repo.Delete(s.ctx, templates.DeleteInput{ID: "sword"})
	s.Require().NoError(err)

	mocks.ExpectTemplateNotFound(s.ctx, s.mockRepo, "sword")
	_, err = s.repo.Get(s.ctx, templates.GetInput{ID: "sword"})
	s.True(errors.IsNotFound(err))
}

func (s *CachedTemplatesTestSuite) TestListPassesThrough() {
	input := templates.ListInput{PageSize: 10}
	s.mockRepo.EXPECT().
		List(s.ctx, input).
		Return(&templates.ListOutput{TotalSize: 3}, nil)

	output, err := s.repo.List(s.ctx, input)
	s.Require().NoError(err)
	s.Equal(int32(3), output.TotalSize)
}
