// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

// TemplateBuilder provides a fluent interface for building test Template instances
type TemplateBuilder struct {
	tmpl *itemdef.Template
}

// NewTemplateBuilder creates a new builder with minimal defaults
func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		tmpl: &itemdef.Template{
			ID:       "tmpl-test-123",
			Name:     "Test Item",
			Material: "STONE",
			Amount:   1,
		},
	}
}

// WithID sets the template ID
func (b *TemplateBuilder) WithID(id string) *TemplateBuilder {
	b.tmpl.ID = id
	return b
}

// WithName sets the template name
func (b *TemplateBuilder) WithName(name string) *TemplateBuilder {
	b.tmpl.Name = name
	return b
}

// WithMaterial sets the material name
func (b *TemplateBuilder) WithMaterial(material string) *TemplateBuilder {
	b.tmpl.Material = material
	return b
}

// WithAmount sets a fixed amount
func (b *TemplateBuilder) WithAmount(amount int) *TemplateBuilder {
	b.tmpl.Amount = amount
	return b
}

// WithAmountRoll sets dice notation for the amount
func (b *TemplateBuilder) WithAmountRoll(roll string) *TemplateBuilder {
	b.tmpl.AmountRoll = roll
	return b
}

// WithDurability sets the damage taken
func (b *TemplateBuilder) WithDurability(durability int) *TemplateBuilder {
	b.tmpl.Durability = durability
	return b
}

// WithDisplayName sets the display name; colorize translates '&' codes
func (b *TemplateBuilder) WithDisplayName(name string, colorize bool) *TemplateBuilder {
	b.tmpl.DisplayName = name
	b.tmpl.Colorize = colorize
	return b
}

// WithLore appends lore lines
func (b *TemplateBuilder) WithLore(lines ...string) *TemplateBuilder {
	b.tmpl.Lore = append(b.tmpl.Lore, lines...)
	return b
}

// WithFlags appends flags
func (b *TemplateBuilder) WithFlags(flags ...itemdef.Flag) *TemplateBuilder {
	for _, f := range flags {
		b.tmpl.Flags = append(b.tmpl.Flags, string(f))
	}
	return b
}

// WithEnchantment sets an enchantment level
func (b *TemplateBuilder) WithEnchantment(name string, level int) *TemplateBuilder {
	if b.tmpl.Enchantments == nil {
		b.tmpl.Enchantments = make(map[string]int)
	}
	b.tmpl.Enchantments[name] = level
	return b
}

// Build returns the built template
func (b *TemplateBuilder) Build() *itemdef.Template {
	return b.tmpl.Clone()
}
