package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/loader"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	forgemock "github.com/KirkDiggler/itemforge/internal/orchestrators/forge/mock"
)

const singleTemplate = `
id: frostbite
name: Frostbite
material: DIAMOND_SWORD
durability: 10
display_name: "&bFrostbite"
colorize: true
lore:
  - "&7Forged in ice"
flags: [hide_attributes]
enchantments:
  sharpness: 4
`

const listTemplate = `
templates:
  - id: gems
    name: Gems
    material: DIAMOND
    amount_roll: 1d4
  - id: pearls
    name: Pearls
    material: ENDER_PEARL
    amount: 16
---
id: torch
name: Torch
material: TORCH
`

type LoaderTestSuite struct {
	suite.Suite
	dir string
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}

func (s *LoaderTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *LoaderTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *LoaderTestSuite) TestParseSingle() {
	templates, err := loader.Parse([]byte(singleTemplate))
	s.Require().NoError(err)
	s.Require().Len(templates, 1)

	t := templates[0]
	s.Equal("frostbite", t.ID)
	s.Equal("DIAMOND_SWORD", t.Material)
	s.Equal(10, t.Durability)
	s.Equal("&bFrostbite", t.DisplayName)
	s.True(t.Colorize)
	s.Equal([]string{"&7Forged in ice"}, t.Lore)
	s.Equal([]string{"hide_attributes"}, t.Flags)
	s.Equal(map[string]int{"sharpness": 4}, t.Enchantments)
}

func (s *LoaderTestSuite) TestParseListAndDocuments() {
	templates, err := loader.Parse([]byte(listTemplate))
	s.Require().NoError(err)
	s.Require().Len(templates, 3)

	s.Equal("gems", templates[0].ID)
	s.Equal("1d4", templates[0].AmountRoll)
	s.Equal(16, templates[1].Amount)
	s.Equal("torch", templates[2].ID)
}

func (s *LoaderTestSuite) TestParseRejects() {
	testCases := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "id: x\nmaterial: STONE\ncolour: true\n"},
		{name: "bad type", yaml: "id: x\nmaterial: STONE\namount: lots\n"},
		{name: "mixed", yaml: "id: x\nmaterial: STONE\ntemplates:\n  - id: y\n    material: STONE\n"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := loader.Parse([]byte(tc.yaml))
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *LoaderTestSuite) TestParseEmpty() {
	templates, err := loader.Parse(nil)
	s.NoError(err)
	s.Empty(templates)
}

func (s *LoaderTestSuite) TestLoadFileMissing() {
	_, err := loader.LoadFile(filepath.Join(s.dir, "nope.yaml"))
	s.True(errors.IsNotFound(err))
}

func (s *LoaderTestSuite) TestLoadDir() {
	s.write("b.yml", listTemplate)
	s.write("a.yaml", singleTemplate)
	s.write("notes.txt", "not yaml: [")

	templates, err := loader.LoadDir(s.dir)
	s.Require().NoError(err)

	var ids []string
	for _, t := range templates {
		ids = append(ids, t.ID)
	}
	s.Equal([]string{"frostbite", "gems", "pearls", "torch"}, ids)
}

func (s *LoaderTestSuite) TestLoadDirDuplicateID() {
	s.write("a.yaml", singleTemplate)
	s.write("b.yaml", singleTemplate)

	_, err := loader.LoadDir(s.dir)
	s.True(errors.IsAlreadyExists(err))
}

func (s *LoaderTestSuite) TestLoadDirMissingID() {
	s.write("a.yaml", "name: Anon\nmaterial: STONE\n")

	_, err := loader.LoadDir(s.dir)
	s.True(errors.IsInvalidArgument(err))
}

func (s *LoaderTestSuite) TestLoadDirMissing() {
	_, err := loader.LoadDir(filepath.Join(s.dir, "absent"))
	s.True(errors.IsNotFound(err))
}

func (s *LoaderTestSuite) TestSync() {
	ctrl := gomock.NewController(s.T())
	svc := forgemock.NewMockService(ctrl)
	ctx := context.Background()

	fresh := &itemdef.Template{ID: "fresh", Name: "Fresh", Material: "STONE"}
	stale := &itemdef.Template{ID: "stale", Name: "Stale", Material: "STONE"}

	gomock.InOrder(
		svc.EXPECT().
			CreateTemplate(ctx, &forge.CreateTemplateInput{Template: fresh}).
			Return(&forge.CreateTemplateOutput{Template: fresh}, nil),
		svc.EXPECT().
			CreateTemplate(ctx, &forge.CreateTemplateInput{Template: stale}).
			Return(nil, errors.AlreadyExistsf("template %s already exists", "stale")),
		svc.EXPECT().
			UpdateTemplate(ctx, &forge.UpdateTemplateInput{Template: stale}).
			Return(&forge.UpdateTemplateOutput{Template: stale}, nil),
	)

	result, err := loader.Sync(ctx, svc, []*itemdef.Template{fresh, stale})
	s.Require().NoError(err)
	s.Equal(&loader.SyncResult{Created: 1, Updated: 1}, result)
}

func (s *LoaderTestSuite) TestSyncStopsOnError() {
	ctrl := gomock.NewController(s.T())
	svc := forgemock.NewMockService(ctrl)
	ctx := context.Background()

	svc.EXPECT().
		CreateTemplate(ctx, gomock.Any()).
		Return(nil, errors.NewValidationBuilder().Field("material", "unknown material").Build())

	result, err := loader.Sync(ctx, svc, []*itemdef.Template{
		{ID: "bad", Name: "Bad", Material: "NOPE"},
		{ID: "never", Name: "Never", Material: "STONE"},
	})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(0, result.Created)
}

func (s *LoaderTestSuite) TestSyncRequiresService() {
	_, err := loader.Sync(context.Background(), nil, nil)
	s.True(errors.IsInvalidArgument(err))
}
