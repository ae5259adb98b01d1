// Package tooltip renders the hover text a client shows for an item stack,
// either as plain or ANSI coloured text or onto a tcell screen.
package tooltip

import (
	"fmt"
	"sort"
	"strings"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/mattn/go-runewidth"
	"github.com/sandertv/gophertunnel/minecraft/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/itemforge/internal/chatcolor"
	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/itembuilder"
	"github.com/KirkDiggler/itemforge/internal/materials"
)

// Line is one row of a tooltip
type Line []chatcolor.Segment

// Plain returns the line's text without styling
func (l Line) Plain() string {
	var b strings.Builder
	for _, seg := range l {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Width returns the number of terminal cells the line occupies
func (l Line) Width() int {
	return runewidth.StringWidth(l.Plain())
}

var titleCaser = cases.Title(language.English)

// Lines lays out the tooltip of a stack: the name, the lore, the
// enchantments unless hidden and the remaining durability of tools unless
// attributes are hidden.
func Lines(stack item.Stack) []Line {
	meta := itembuilder.ReadMeta(stack)

	lines := []Line{header(stack, meta)}

	for _, lore := range meta.Lore {
		lines = append(lines, styled(lore, chatcolor.DarkPurple, chatcolor.Italic))
	}

	if !meta.HasFlag(itemdef.FlagHideEnchants) {
		lines = append(lines, enchantmentLines(stack)...)
	}

	if _, ok := stack.Item().(item.Durable); ok && !meta.HasFlag(itemdef.FlagHideAttributes) {
		lines = append(lines, Line{{
			Text:  fmt.Sprintf("Durability: %d / %d", stack.Durability(), stack.MaxDurability()),
			Color: chatcolor.White,
		}})
	}

	return lines
}

func header(stack item.Stack, meta itembuilder.Meta) Line {
	if meta.DisplayName != "" {
		return styled(meta.DisplayName, chatcolor.White, 0)
	}

	name := strings.ToLower(strings.ReplaceAll(materials.Name(stack.Item()), "_", " "))
	line := Line{{Text: titleCaser.String(name), Color: chatcolor.White}}
	if stack.Count() > 1 {
		line = append(line, chatcolor.Segment{Text: fmt.Sprintf(" x%d", stack.Count()), Color: chatcolor.Gray})
	}
	return line
}

func enchantmentLines(stack item.Stack) []Line {
	enchants := stack.Enchantments()
	sort.Slice(enchants, func(i, j int) bool {
		return enchants[i].Type().Name() < enchants[j].Type().Name()
	})

	lines := make([]Line, 0, len(enchants))
	for _, e := range enchants {
		t := e.Type()
		label := t.Name()
		if t.MaxLevel() > 1 || e.Level() > 1 {
			label += " " + roman(e.Level())
		}
		color := chatcolor.Gray
		if strings.HasPrefix(label, "Curse") {
			color = chatcolor.Red
		}
		lines = append(lines, Line{{Text: label, Color: color}})
	}
	return lines
}

// styled parses coded text, filling in the defaults for runs without a
// colour. Formats only apply to runs that are still uncoloured.
func styled(s string, color chatcolor.Color, format chatcolor.Format) Line {
	segments := chatcolor.Parse(s)
	if len(segments) == 0 {
		return Line{{Text: "", Color: color, Format: format}}
	}
	for i := range segments {
		if segments[i].Color == chatcolor.NoColor {
			segments[i].Color = color
			segments[i].Format |= format
		}
	}
	return segments
}

var romanNumerals = []string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

func roman(n int) string {
	if n > 0 && n < len(romanNumerals) {
		return romanNumerals[n]
	}
	return fmt.Sprint(n)
}

// Text renders the tooltip inside a box. With colour set the lines carry
// ANSI escape codes; the box is sized on the visible width either way.
func Text(stack item.Stack, colour bool) string {
	lines := Lines(stack)

	width := 0
	for _, l := range lines {
		width = max(width, l.Width())
	}

	var b strings.Builder
	b.WriteString("┌" + strings.Repeat("─", width+2) + "┐\n")
	for _, l := range lines {
		content := l.Plain()
		if colour {
			content = text.ANSI(chatcolor.Join(l))
		}
		b.WriteString("│ ")
		b.WriteString(content)
		b.WriteString(strings.Repeat(" ", width-l.Width()))
		b.WriteString(" │\n")
	}
	b.WriteString("└" + strings.Repeat("─", width+2) + "┘\n")

	return b.String()
}
