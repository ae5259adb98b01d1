package forge

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/df-mc/dragonfly/server/item"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/itembuilder"
	"github.com/KirkDiggler/itemforge/internal/materials"
	"github.com/KirkDiggler/itemforge/internal/metrics"
)

const (
	maxDiceCount = 64
	maxDieSize   = 1000
)

var (
	// Regex for parsing simple dice notation like "2d6", "1d20", "3d8"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)$`)
)

// parseDiceNotation parses simple dice notation like "2d6" and returns count and size
func parseDiceNotation(notation string) (count, size int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 3 {
		return 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || size <= 0 {
		return 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > maxDiceCount || size > maxDieSize {
		return 0, 0, errors.InvalidArgumentf("dice notation too large: %s", notation)
	}

	return count, size, nil
}

// rollAmount rolls dice notation and returns the sum of the dice
func (o *orchestrator) rollAmount(notation string) (int, error) {
	count, size, err := parseDiceNotation(notation)
	if err != nil {
		return 0, err
	}

	rolls, err := o.roller.RollN(count, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to roll %s", notation)
	}

	total := 0
	for _, r := range rolls {
		total += r
	}
	return total, nil
}

// BuildItem builds a stack from a stored template
func (o *orchestrator) BuildItem(ctx context.Context, input *BuildItemInput) (*BuildItemOutput, error) {
	if input == nil || input.TemplateID == "" {
		return nil, errors.InvalidArgument("template ID is required")
	}
	if input.Amount < 0 {
		return nil, errors.InvalidArgument("amount cannot be negative")
	}

	output, err := o.GetTemplate(ctx, &GetTemplateInput{TemplateID: input.TemplateID})
	if err != nil {
		o.metrics.BuildFailed(errors.GetCode(err).String())
		return nil, err
	}

	built, err := o.build(ctx, output.Template, input.Amount, metrics.SourceTemplate)
	if err != nil {
		return nil, err
	}
	built.TemplateID = input.TemplateID

	return &BuildItemOutput{Item: built}, nil
}

// BuildTemplate builds a stack from a template that is not stored
func (o *orchestrator) BuildTemplate(ctx context.Context, input *BuildTemplateInput) (*BuildTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	tmpl := input.Template.Clone()
	if tmpl.Name == "" {
		// inline templates are anonymous
		tmpl.Name = tmpl.Material
	}

	built, err := o.build(ctx, tmpl, 0, metrics.SourceInline)
	if err != nil {
		return nil, err
	}
	built.TemplateID = tmpl.ID

	return &BuildTemplateOutput{Item: built}, nil
}

func (o *orchestrator) build(ctx context.Context, tmpl *itemdef.Template, amount int, source string) (*BuiltItem, error) {
	if err := o.validateTemplate(tmpl); err != nil {
		o.metrics.BuildFailed(errors.GetCode(err).String())
		return nil, err
	}

	b, err := o.newBuilder(tmpl, amount)
	if err != nil {
		o.metrics.BuildFailed(errors.GetCode(err).String())
		return nil, err
	}

	stack := b.Build()
	summary := Summarize(stack)

	o.metrics.ItemBuilt(summary.Material, source)
	slog.DebugContext(ctx, "item built",
		"template_id", tmpl.ID,
		"material", summary.Material,
		"amount", summary.Amount,
		"source", source)

	return &BuiltItem{
		Stack:   stack,
		Summary: summary,
	}, nil
}

// newBuilder drives an item builder from an already validated template
func (o *orchestrator) newBuilder(tmpl *itemdef.Template, amount int) (*itembuilder.Builder, error) {
	material, ok := o.catalog.Material(tmpl.Material)
	if !ok {
		return nil, errors.InvalidArgumentf("unknown material %q", tmpl.Material)
	}

	if amount == 0 {
		amount = tmpl.Amount
		if tmpl.AmountRoll != "" {
			rolled, err := o.rollAmount(tmpl.AmountRoll)
			if err != nil {
				return nil, err
			}
			amount = rolled
		}
	}

	b := itembuilder.NewWithAmount(material, amount).
		SetDurability(tmpl.Durability)

	if tmpl.DisplayName != "" {
		if tmpl.Colorize {
			b.SetColoredDisplayName(tmpl.DisplayName)
		} else {
			b.SetDisplayName(tmpl.DisplayName)
		}
	}

	for _, line := range tmpl.Lore {
		if tmpl.Colorize {
			b.AddColoredLore(line)
		} else {
			b.AddLore(line)
		}
	}

	for _, name := range tmpl.Flags {
		if f, ok := itemdef.FlagFromString(name); ok {
			b.AddFlag(f)
		}
	}

	names := make([]string, 0, len(tmpl.Enchantments))
	for name := range tmpl.Enchantments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if t, ok := o.catalog.Enchantment(name); ok {
			b.AddEnchantment(t, tmpl.Enchantments[name])
		}
	}

	return b, nil
}

// Summarize describes a stack in catalog names
func Summarize(stack item.Stack) *itemdef.Item {
	meta := itembuilder.ReadMeta(stack)

	summary := &itemdef.Item{
		Material:    materials.Name(stack.Item()),
		Amount:      stack.Count(),
		DisplayName: meta.DisplayName,
		Lore:        meta.Lore,
	}

	if _, ok := stack.Item().(item.Durable); ok {
		summary.Durability = stack.MaxDurability() - stack.Durability()
	}

	for _, f := range meta.Flags {
		summary.Flags = append(summary.Flags, f.String())
	}

	if enchants := stack.Enchantments(); len(enchants) > 0 {
		summary.Enchantments = make(map[string]int, len(enchants))
		for _, e := range enchants {
			summary.Enchantments[materials.EnchantmentName(e.Type())] = e.Level()
		}
	}

	return summary
}
