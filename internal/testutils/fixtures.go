package testutils

import (
	"time"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

// Fixed values shared by template fixtures
const (
	TestTemplateID   = "tmpl-test-001"
	TestTemplateName = "Frostbite"
)

// TestTime is the timestamp stamped on fixtures and returned by fixed clocks
var TestTime = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// CreateTestTemplate creates a template for an enchanted diamond sword
func CreateTestTemplate(id string) *itemdef.Template {
	return &itemdef.Template{
		ID:          id,
		Name:        TestTemplateName,
		Material:    "DIAMOND_SWORD",
		Amount:      1,
		Durability:  10,
		DisplayName: "&bFrostbite",
		Colorize:    true,
		Lore:        []string{"&7Forged in ice"},
		Flags:       []string{string(itemdef.FlagHideAttributes)},
		Enchantments: map[string]int{
			"sharpness":  4,
			"unbreaking": 2,
		},
		CreatedAt: TestTime,
		UpdatedAt: TestTime,
	}
}

// CreateTestStackTemplate creates a plain stackable template
func CreateTestStackTemplate(id string, amount int) *itemdef.Template {
	return &itemdef.Template{
		ID:        id,
		Name:      "Diamonds",
		Material:  "DIAMOND",
		Amount:    amount,
		CreatedAt: TestTime,
		UpdatedAt: TestTime,
	}
}
