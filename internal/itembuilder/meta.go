package itembuilder

import (
	"github.com/df-mc/dragonfly/server/item"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
)

// flagsKey is the stack value that carries tooltip flags, which the host
// stack has no dedicated field for
const flagsKey = "itemforge:flags"

// Meta is the display metadata of an item
type Meta struct {
	DisplayName string
	Lore        []string
	Flags       []itemdef.Flag
}

// HasFlag reports whether flag is set
func (m Meta) HasFlag(flag itemdef.Flag) bool {
	for _, f := range m.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// ReadMeta reads the display metadata back from a built stack
func ReadMeta(stack item.Stack) Meta {
	meta := Meta{
		DisplayName: stack.CustomName(),
		Lore:        append([]string(nil), stack.Lore()...),
	}

	if v, ok := stack.Value(flagsKey); ok {
		if names, ok := v.([]string); ok {
			for _, name := range names {
				if f, ok := itemdef.FlagFromString(name); ok {
					meta.Flags = append(meta.Flags, f)
				}
			}
		}
	}

	return meta
}

func flagNames(flags []itemdef.Flag) []string {
	names := make([]string, len(flags))
	for i, f := range flags {
		names[i] = f.String()
	}
	return names
}
