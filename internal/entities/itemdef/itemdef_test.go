package itemdef_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

func TestFlagFromString(t *testing.T) {
	testCases := []struct {
		input    string
		expected itemdef.Flag
		ok       bool
	}{
		{"hide_enchants", itemdef.FlagHideEnchants, true},
		{"HIDE_ATTRIBUTES", itemdef.FlagHideAttributes, true},
		{" hide_dye ", itemdef.FlagHideDye, true},
		{"hide_everything", "", false},
		{"", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			flag, ok := itemdef.FlagFromString(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, flag)
		})
	}
}

func TestAllFlagsAreValid(t *testing.T) {
	for _, f := range itemdef.AllFlags() {
		assert.True(t, f.IsValid(), f.String())
	}
	assert.False(t, itemdef.Flag("").IsValid())
}

func TestTemplateCloneDoesNotAlias(t *testing.T) {
	orig := &itemdef.Template{
		Name:         "blade",
		Material:     "DIAMOND_SWORD",
		Lore:         []string{"sharp"},
		Flags:        []string{"hide_enchants"},
		Enchantments: map[string]int{"sharpness": 5},
	}

	c := orig.Clone()
	require.Equal(t, orig, c)

	c.Lore[0] = "dull"
	c.Flags[0] = "hide_dye"
	c.Enchantments["sharpness"] = 1

	assert.Equal(t, "sharp", orig.Lore[0])
	assert.Equal(t, "hide_enchants", orig.Flags[0])
	assert.Equal(t, 5, orig.Enchantments["sharpness"])

	var nilTemplate *itemdef.Template
	assert.Nil(t, nilTemplate.Clone())
}
