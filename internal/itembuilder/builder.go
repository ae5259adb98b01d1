// Package itembuilder provides a fluent builder that collects an item's
// material, amount, durability, display name, lore, flags and enchantments
// and materialises them into a host item stack.
//
// Setters never fail. Invalid input is normalised instead: a nil material
// becomes air, an out of range amount becomes 1, durability is kept below
// the point where the item would break, an empty display name
// becomes the material's name, and non-positive enchantment levels are
// ignored.
package itembuilder

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"

	"github.com/KirkDiggler/itemforge/internal/chatcolor"
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/materials"
)

// Builder accumulates pending item configuration. A Builder is not safe for
// concurrent use.
type Builder struct {
	material     world.Item
	amount       int
	durability   int
	displayName  string
	lore         []string
	flags        []itemdef.Flag
	enchantments map[item.EnchantmentType]int
}

// New creates a builder for one item of the given material
func New(material world.Item) *Builder {
	if material == nil {
		material = materials.Air
	}
	return &Builder{
		material:     material,
		amount:       1,
		enchantments: make(map[item.EnchantmentType]int),
	}
}

// NewWithAmount creates a builder for a stack of the given material
func NewWithAmount(material world.Item, amount int) *Builder {
	return New(material).SetAmount(amount)
}

// SetAmount sets the stack size. Amounts below 1 or above the material's
// max stack size become 1.
func (b *Builder) SetAmount(amount int) *Builder {
	if amount <= 0 || amount > materials.MaxStackSize(b.material) {
		amount = 1
	}
	b.amount = amount
	return b
}

// SetDurability sets the damage the item has already taken. 0 is a
// pristine item; negative values become 0. For kinds with durability the
// damage is capped one short of breaking the item.
func (b *Builder) SetDurability(durability int) *Builder {
	b.durability = clampDamage(b.material, durability)
	return b
}

func clampDamage(material world.Item, damage int) int {
	if damage < 0 {
		return 0
	}
	if limit := materials.MaxDurability(material); limit > 0 && damage >= limit {
		return limit - 1
	}
	return damage
}

// SetMaterial changes the item kind. The amount and durability are
// re-checked against the new kind.
func (b *Builder) SetMaterial(material world.Item) *Builder {
	if material == nil {
		material = materials.Air
	}
	b.material = material
	b.durability = clampDamage(material, b.durability)
	return b.SetAmount(b.amount)
}

// SetMeta replaces the pending display name, lore and flags with meta's.
// A nil meta is ignored.
func (b *Builder) SetMeta(meta *Meta) *Builder {
	if meta == nil {
		return b
	}
	b.displayName = meta.DisplayName
	b.lore = nil
	b.flags = nil
	b.SetLore(meta.Lore)
	for _, f := range meta.Flags {
		b.AddFlag(f)
	}
	return b
}

// SetDisplayName sets the display name verbatim. An empty name falls back
// to the material's name.
func (b *Builder) SetDisplayName(name string) *Builder {
	if name == "" {
		name = materials.Name(b.material)
	}
	b.displayName = name
	return b
}

// SetColoredDisplayName sets the display name, translating '&' colour codes
func (b *Builder) SetColoredDisplayName(name string) *Builder {
	if name == "" {
		name = materials.Name(b.material)
	}
	b.displayName = chatcolor.Colorize(name)
	return b
}

// SetLore replaces the lore. A nil slice is ignored.
func (b *Builder) SetLore(lore []string) *Builder {
	if lore != nil {
		b.lore = append(make([]string, 0, len(lore)), lore...)
	}
	return b
}

// AddLore appends one line to the lore verbatim
func (b *Builder) AddLore(line string) *Builder {
	b.lore = append(b.lore, line)
	return b
}

// AddColoredLore appends one line to the lore, translating '&' colour codes
func (b *Builder) AddColoredLore(line string) *Builder {
	b.lore = append(b.lore, chatcolor.Colorize(line))
	return b
}

// AddFlag adds a tooltip flag. Unknown flags and repeats are ignored.
func (b *Builder) AddFlag(flag itemdef.Flag) *Builder {
	if !flag.IsValid() {
		return b
	}
	for _, f := range b.flags {
		if f == flag {
			return b
		}
	}
	b.flags = append(b.flags, flag)
	return b
}

// AddEnchantment records an enchantment at the given level. Levels below 1
// are ignored; adding the same type again keeps the latest level.
func (b *Builder) AddEnchantment(t item.EnchantmentType, level int) *Builder {
	if t != nil && level > 0 {
		b.enchantments[t] = level
	}
	return b
}

// Material returns the pending item kind
func (b *Builder) Material() world.Item {
	return b.material
}

// Amount returns the pending stack size
func (b *Builder) Amount() int {
	return b.amount
}

// Durability returns the pending damage value
func (b *Builder) Durability() int {
	return b.durability
}

// DisplayName returns the pending display name, empty when unset
func (b *Builder) DisplayName() string {
	return b.displayName
}

// Lore returns a copy of the pending lore
func (b *Builder) Lore() []string {
	return append([]string(nil), b.lore...)
}

// Flags returns a copy of the pending flags in the order they were added
func (b *Builder) Flags() []itemdef.Flag {
	return append([]itemdef.Flag(nil), b.flags...)
}

// Enchantments returns a copy of the pending enchantment levels
func (b *Builder) Enchantments() map[item.EnchantmentType]int {
	out := make(map[item.EnchantmentType]int, len(b.enchantments))
	for t, lvl := range b.enchantments {
		out[t] = lvl
	}
	return out
}

// Meta returns the pending display name, lore and flags
func (b *Builder) Meta() Meta {
	return Meta{
		DisplayName: b.displayName,
		Lore:        b.Lore(),
		Flags:       b.Flags(),
	}
}

// Build materialises the configuration into a new stack. Fields are applied
// in a fixed order: kind, amount, durability, meta (flags, name, lore) and
// enchantments. The builder is left untouched, so repeated calls produce
// equivalent stacks.
func (b *Builder) Build() item.Stack {
	stack := item.NewStack(b.material, b.amount)

	// a stack damaged to its max durability breaks into air
	if damage := clampDamage(b.material, b.durability); damage > 0 {
		if _, ok := b.material.(item.Durable); ok {
			stack = stack.Damage(damage)
		}
	}

	if len(b.flags) > 0 {
		stack = stack.WithValue(flagsKey, flagNames(b.flags))
	}
	if b.displayName != "" {
		stack = stack.WithCustomName(b.displayName)
	}
	if len(b.lore) > 0 {
		stack = stack.WithLore(b.Lore()...)
	}

	if len(b.enchantments) > 0 {
		enchants := make([]item.Enchantment, 0, len(b.enchantments))
		for t, lvl := range b.enchantments {
			enchants = append(enchants, item.NewEnchantment(t, lvl))
		}
		stack = stack.WithEnchantments(enchants...)
	}

	return stack
}
