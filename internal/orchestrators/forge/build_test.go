package forge_test

import (
	"math"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/enchantment"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/materials"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	"github.com/KirkDiggler/itemforge/internal/testutils"
	"github.com/KirkDiggler/itemforge/internal/testutils/builders"
	"github.com/KirkDiggler/itemforge/internal/testutils/mocks"
)

func (s *ForgeOrchestratorTestSuite) TestBuildItem() {
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, testutils.CreateTestTemplate("sword"))

	output, err := s.orch.BuildItem(s.ctx, &forge.BuildItemInput{TemplateID: "sword"})
	s.Require().NoError(err)

	built := output.Item
	s.Equal("sword", built.TemplateID)
	s.Equal(item.Sword{Tier: item.ToolTierDiamond}, built.Stack.Item())
	s.Equal("§bFrostbite", built.Stack.CustomName())
	s.Equal([]string{"§7Forged in ice"}, built.Stack.Lore())

	sharp, ok := built.Stack.Enchantment(enchantment.Sharpness)
	s.Require().True(ok)
	s.Equal(4, sharp.Level())

	s.Equal(&itemdef.Item{
		Material:     "DIAMOND_SWORD",
		Amount:       1,
		Durability:   10,
		DisplayName:  "§bFrostbite",
		Lore:         []string{"§7Forged in ice"},
		Flags:        []string{"hide_attributes"},
		Enchantments: map[string]int{"sharpness": 4, "unbreaking": 2},
	}, built.Summary)

	s.Equal(1.0, testutil.ToFloat64(s.metrics.ItemsBuilt.WithLabelValues("DIAMOND_SWORD", metrics.SourceTemplate)))
}

func (s *ForgeOrchestratorTestSuite) TestBuildItemAmount() {
	testCases := []struct {
		name     string
		template *itemdef.Template
		override int
		rolls    []int
		expected int
	}{
		{
			name:     "fixed amount",
			template: builders.NewTemplateBuilder().WithMaterial("DIAMOND").WithAmount(12).Build(),
			expected: 12,
		},
		{
			name:     "rolled amount",
			template: builders.NewTemplateBuilder().WithMaterial("DIAMOND").WithAmountRoll("2d6").Build(),
			rolls:    []int{4, 5},
			expected: 9,
		},
		{
			name:     "override beats roll",
			template: builders.NewTemplateBuilder().WithMaterial("DIAMOND").WithAmountRoll("2d6").Build(),
			override: 20,
			expected: 20,
		},
		{
			name:     "over max stack falls back to one",
			template: builders.NewTemplateBuilder().WithMaterial("ENDER_PEARL").WithAmount(40).Build(),
			expected: 1,
		},
		{
			name:     "zero amount becomes one",
			template: builders.NewTemplateBuilder().WithMaterial("DIAMOND").WithAmount(0).Build(),
			expected: 1,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.roller.values = tc.rolls
			mocks.ExpectTemplateGet(s.ctx, s.mockRepo, tc.template)

			output, err := s.orch.BuildItem(s.ctx, &forge.BuildItemInput{
				TemplateID: tc.template.ID,
				Amount:     tc.override,
			})
			s.Require().NoError(err)
			s.Equal(tc.expected, output.Item.Stack.Count())
			s.Equal(tc.expected, output.Item.Summary.Amount)
		})
	}
}

func (s *ForgeOrchestratorTestSuite) TestBuildItemErrors() {
	_, err := s.orch.BuildItem(s.ctx, &forge.BuildItemInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.BuildItem(s.ctx, &forge.BuildItemInput{TemplateID: "sword", Amount: -1})
	s.True(errors.IsInvalidArgument(err))

	mocks.ExpectTemplateNotFound(s.ctx, s.mockRepo, "missing")
	_, err = s.orch.BuildItem(s.ctx, &forge.BuildItemInput{TemplateID: "missing"})
	s.True(errors.IsNotFound(err))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.BuildFailures.WithLabelValues(errors.CodeNotFound.String())))
}

func (s *ForgeOrchestratorTestSuite) TestBuildItemRejectsStaleTemplate() {
	// stored before the material was dropped from the catalog
	stale := builders.NewTemplateBuilder().WithID("stale").WithMaterial("phlogiston").Build()
	mocks.ExpectTemplateGet(s.ctx, s.mockRepo, stale)

	_, err := s.orch.BuildItem(s.ctx, &forge.BuildItemInput{TemplateID: "stale"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *ForgeOrchestratorTestSuite) TestBuildTemplate() {
	tmpl := builders.NewTemplateBuilder().
		WithID("").
		WithName("").
		WithMaterial("minecraft:emerald").
		WithAmount(5).
		WithDisplayName("&aLucky", false).
		WithLore("&7kept literal").
		WithFlags(itemdef.FlagHideEnchants, itemdef.FlagHideEnchants).
		Build()

	output, err := s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{Template: tmpl})
	s.Require().NoError(err)

	summary := output.Item.Summary
	s.Equal("EMERALD", summary.Material)
	s.Equal(5, summary.Amount)
	s.Equal(0, summary.Durability)
	s.Equal("&aLucky", summary.DisplayName)
	s.Equal([]string{"&7kept literal"}, summary.Lore)
	s.Equal([]string{"hide_enchants"}, summary.Flags)
	s.Empty(summary.Enchantments)
	s.Empty(tmpl.Name, "caller's template must not be modified")

	s.Equal(1.0, testutil.ToFloat64(s.metrics.ItemsBuilt.WithLabelValues("EMERALD", metrics.SourceInline)))
}

func (s *ForgeOrchestratorTestSuite) TestBuildTemplateBukkitNames() {
	tmpl := builders.NewTemplateBuilder().
		WithMaterial("DIAMOND_SWORD").
		WithFlags(itemdef.Flag("HIDE_ATTRIBUTES")).
		WithEnchantment("DAMAGE_ALL", 2).
		WithEnchantment("fire aspect", 1).
		Build()

	output, err := s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{Template: tmpl})
	s.Require().NoError(err)
	s.Equal(map[string]int{"sharpness": 2, "fire_aspect": 1}, output.Item.Summary.Enchantments)
	s.Equal([]string{"hide_attributes"}, output.Item.Summary.Flags)
}

func (s *ForgeOrchestratorTestSuite) TestBuildTemplateInvalid() {
	_, err := s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{
		Template: builders.NewTemplateBuilder().WithMaterial("").Build(),
	})
	s.True(errors.IsInvalidArgument(err))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.BuildFailures.WithLabelValues(errors.CodeInvalidArgument.String())))
}

func (s *ForgeOrchestratorTestSuite) TestBuildTemplateDurabilityLimits() {
	limit := materials.MaxDurability(item.Sword{Tier: item.ToolTierDiamond})
	s.Require().Positive(limit)

	s.Run("one short of breaking builds", func() {
		tmpl := builders.NewTemplateBuilder().
			WithMaterial("DIAMOND_SWORD").
			WithDurability(limit - 1).
			Build()

		output, err := s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{Template: tmpl})
		s.Require().NoError(err)

		summary := output.Item.Summary
		s.Equal("DIAMOND_SWORD", summary.Material)
		s.Equal(1, summary.Amount)
		s.Equal(limit-1, summary.Durability)
	})

	testCases := []struct {
		name       string
		material   string
		field      string
		amount     int
		durability int
	}{
		{name: "at max durability", material: "DIAMOND_SWORD", field: "durability", durability: limit},
		{name: "past max durability", material: "DIAMOND_SWORD", field: "durability", durability: 2000},
		{name: "durability beyond int32", material: "EMERALD", field: "durability", durability: math.MaxInt32 + 1},
		{name: "amount beyond int32", material: "EMERALD", field: "amount", amount: math.MinInt32 - 1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tmpl := builders.NewTemplateBuilder().
				WithMaterial(tc.material).
				WithAmount(tc.amount).
				WithDurability(tc.durability).
				Build()

			_, err := s.orch.BuildTemplate(s.ctx, &forge.BuildTemplateInput{Template: tmpl})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))

			fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}

	s.Zero(testutil.ToFloat64(s.metrics.ItemsBuilt.WithLabelValues("AIR", metrics.SourceInline)))
}
