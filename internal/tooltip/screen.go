package tooltip

import (
	"github.com/df-mc/dragonfly/server/item"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/KirkDiggler/itemforge/internal/chatcolor"
)

// palette holds the client's foreground colours
var palette = map[chatcolor.Color]tcell.Color{
	chatcolor.Black:        tcell.NewRGBColor(0x00, 0x00, 0x00),
	chatcolor.DarkBlue:     tcell.NewRGBColor(0x00, 0x00, 0xaa),
	chatcolor.DarkGreen:    tcell.NewRGBColor(0x00, 0xaa, 0x00),
	chatcolor.DarkAqua:     tcell.NewRGBColor(0x00, 0xaa, 0xaa),
	chatcolor.DarkRed:      tcell.NewRGBColor(0xaa, 0x00, 0x00),
	chatcolor.DarkPurple:   tcell.NewRGBColor(0xaa, 0x00, 0xaa),
	chatcolor.Gold:         tcell.NewRGBColor(0xff, 0xaa, 0x00),
	chatcolor.Gray:         tcell.NewRGBColor(0xaa, 0xaa, 0xaa),
	chatcolor.DarkGray:     tcell.NewRGBColor(0x55, 0x55, 0x55),
	chatcolor.Blue:         tcell.NewRGBColor(0x55, 0x55, 0xff),
	chatcolor.Green:        tcell.NewRGBColor(0x55, 0xff, 0x55),
	chatcolor.Aqua:         tcell.NewRGBColor(0x55, 0xff, 0xff),
	chatcolor.Red:          tcell.NewRGBColor(0xff, 0x55, 0x55),
	chatcolor.LightPurple:  tcell.NewRGBColor(0xff, 0x55, 0xff),
	chatcolor.Yellow:       tcell.NewRGBColor(0xff, 0xff, 0x55),
	chatcolor.White:        tcell.NewRGBColor(0xff, 0xff, 0xff),
	chatcolor.MinecoinGold: tcell.NewRGBColor(0xdd, 0xd6, 0x05),
}

// background is the tooltip's dark purple fill
var background = tcell.NewRGBColor(0x10, 0x00, 0x10)

// Style converts a segment's colour and format to a tcell style
func Style(seg chatcolor.Segment) tcell.Style {
	st := tcell.StyleDefault.Background(background)
	if c, ok := palette[seg.Color]; ok {
		st = st.Foreground(c)
	}
	return st.
		Bold(seg.Format.Has(chatcolor.Bold)).
		Italic(seg.Format.Has(chatcolor.Italic)).
		Underline(seg.Format.Has(chatcolor.Underline)).
		StrikeThrough(seg.Format.Has(chatcolor.Strikethrough)).
		Blink(seg.Format.Has(chatcolor.Obfuscated))
}

// Size returns the number of cells Draw occupies for stack
func Size(stack item.Stack) (width, height int) {
	return boxSize(Lines(stack))
}

func boxSize(lines []Line) (width, height int) {
	inner := 0
	for _, l := range lines {
		inner = max(inner, l.Width())
	}
	return inner + 4, len(lines) + 2
}

// Draw paints the boxed tooltip with its top left corner at (x, y) and
// returns the size of the box. Cells past the screen edge are clipped.
func Draw(screen tcell.Screen, x, y int, stack item.Stack) (width, height int) {
	lines := Lines(stack)
	width, height = boxSize(lines)

	sw, sh := screen.Size()
	border := tcell.StyleDefault.Background(background).Foreground(palette[chatcolor.DarkPurple])
	put := func(cx, cy int, r rune, st tcell.Style) {
		if cx < 0 || cy < 0 || cx >= sw || cy >= sh {
			return
		}
		screen.SetContent(cx, cy, r, nil, st)
	}

	for cx := x; cx < x+width; cx++ {
		for cy := y; cy < y+height; cy++ {
			put(cx, cy, ' ', border)
		}
	}
	for cx := x + 1; cx < x+width-1; cx++ {
		put(cx, y, tcell.RuneHLine, border)
		put(cx, y+height-1, tcell.RuneHLine, border)
	}
	for cy := y + 1; cy < y+height-1; cy++ {
		put(x, cy, tcell.RuneVLine, border)
		put(x+width-1, cy, tcell.RuneVLine, border)
	}
	put(x, y, tcell.RuneULCorner, border)
	put(x+width-1, y, tcell.RuneURCorner, border)
	put(x, y+height-1, tcell.RuneLLCorner, border)
	put(x+width-1, y+height-1, tcell.RuneLRCorner, border)

	for row, l := range lines {
		cx := x + 2
		for _, seg := range l {
			st := Style(seg)
			for _, r := range seg.Text {
				put(cx, y+1+row, r, st)
				cx += runewidth.RuneWidth(r)
			}
		}
	}

	return width, height
}
