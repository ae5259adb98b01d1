package itemdef

import "strings"

// Flag hides part of an item's tooltip
type Flag string

// Define all available item flags
const (
	FlagHideEnchants          Flag = "hide_enchants"
	FlagHideAttributes        Flag = "hide_attributes"
	FlagHideUnbreakable       Flag = "hide_unbreakable"
	FlagHideDestroys          Flag = "hide_destroys"
	FlagHidePlacedOn          Flag = "hide_placed_on"
	FlagHideAdditionalTooltip Flag = "hide_additional_tooltip"
	FlagHideDye               Flag = "hide_dye"
	FlagHideArmorTrim         Flag = "hide_armor_trim"
)

// String returns the string representation of the flag
func (f Flag) String() string {
	return string(f)
}

// IsValid checks if the flag is one of the known flags
func (f Flag) IsValid() bool {
	switch f {
	case FlagHideEnchants, FlagHideAttributes, FlagHideUnbreakable, FlagHideDestroys,
		FlagHidePlacedOn, FlagHideAdditionalTooltip, FlagHideDye, FlagHideArmorTrim:
		return true
	default:
		return false
	}
}

// AllFlags returns every known flag in declaration order
func AllFlags() []Flag {
	return []Flag{
		FlagHideEnchants,
		FlagHideAttributes,
		FlagHideUnbreakable,
		FlagHideDestroys,
		FlagHidePlacedOn,
		FlagHideAdditionalTooltip,
		FlagHideDye,
		FlagHideArmorTrim,
	}
}

// FlagFromString parses a flag name case-insensitively, so both
// "hide_enchants" and "HIDE_ENCHANTS" are accepted
func FlagFromString(s string) (Flag, bool) {
	flag := Flag(strings.ToLower(strings.TrimSpace(s)))
	if flag.IsValid() {
		return flag, true
	}
	return "", false
}
