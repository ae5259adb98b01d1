// Package itemdef holds the storable description of an item: the template a
// builder is driven from and the flags it may carry.
package itemdef

import "time"

// Template describes an item well enough to rebuild it on demand. Material
// and enchantment names are resolved against the host catalog at build time.
type Template struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name" validate:"required,max=64"`

	Material string `json:"material" yaml:"material" validate:"required"`

	// Amount is used when AmountRoll is empty. Out of range amounts are
	// normalised by the builder rather than rejected.
	Amount int `json:"amount,omitempty" yaml:"amount,omitempty"`

	// AmountRoll is dice notation such as "1d4", rolled at each build
	AmountRoll string `json:"amount_roll,omitempty" yaml:"amount_roll,omitempty" validate:"omitempty,max=16"`

	// Durability is damage already taken; 0 is a pristine item
	Durability int `json:"durability,omitempty" yaml:"durability,omitempty"`

	DisplayName string `json:"display_name,omitempty" yaml:"display_name,omitempty" validate:"max=256"`

	// Colorize translates '&' codes in the display name and lore
	Colorize bool `json:"colorize,omitempty" yaml:"colorize,omitempty"`

	Lore []string `json:"lore,omitempty" yaml:"lore,omitempty" validate:"max=32,dive,max=256"`

	Flags        []string       `json:"flags,omitempty" yaml:"flags,omitempty"`
	Enchantments map[string]int `json:"enchantments,omitempty" yaml:"enchantments,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}

// Clone returns a deep copy so callers can hand templates across layers
// without sharing slices or maps
func (t *Template) Clone() *Template {
	if t == nil {
		return nil
	}

	c := *t
	if t.Lore != nil {
		c.Lore = append([]string(nil), t.Lore...)
	}
	if t.Flags != nil {
		c.Flags = append([]string(nil), t.Flags...)
	}
	if t.Enchantments != nil {
		c.Enchantments = make(map[string]int, len(t.Enchantments))
		for k, v := range t.Enchantments {
			c.Enchantments[k] = v
		}
	}
	return &c
}

// Item summarises a built stack in host-independent terms
type Item struct {
	Material     string         `json:"material" yaml:"material"`
	Amount       int            `json:"amount" yaml:"amount"`
	Durability   int            `json:"durability,omitempty" yaml:"durability,omitempty"`
	DisplayName  string         `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Lore         []string       `json:"lore,omitempty" yaml:"lore,omitempty"`
	Flags        []string       `json:"flags,omitempty" yaml:"flags,omitempty"`
	Enchantments map[string]int `json:"enchantments,omitempty" yaml:"enchantments,omitempty"`
}
