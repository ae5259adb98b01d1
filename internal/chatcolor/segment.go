package chatcolor

import "strings"

// Color is a colour code rune ('0'-'9', 'a'-'g'), or NoColor
type Color rune

// NoColor means the renderer's default colour applies
const NoColor Color = 0

// Colour codes
const (
	Black        Color = '0'
	DarkBlue     Color = '1'
	DarkGreen    Color = '2'
	DarkAqua     Color = '3'
	DarkRed      Color = '4'
	DarkPurple   Color = '5'
	Gold         Color = '6'
	Gray         Color = '7'
	DarkGray     Color = '8'
	Blue         Color = '9'
	Green        Color = 'a'
	Aqua         Color = 'b'
	Red          Color = 'c'
	LightPurple  Color = 'd'
	Yellow       Color = 'e'
	White        Color = 'f'
	MinecoinGold Color = 'g'
)

// Format is a set of text decorations
type Format uint8

// Formats
const (
	Obfuscated Format = 1 << iota
	Bold
	Strikethrough
	Underline
	Italic
)

// Has reports whether every bit of o is set
func (f Format) Has(o Format) bool {
	return f&o == o
}

// Segment is a run of text sharing one colour and format
type Segment struct {
	Text   string
	Color  Color
	Format Format
}

var formatCodes = map[rune]Format{
	'k': Obfuscated,
	'l': Bold,
	'm': Strikethrough,
	'n': Underline,
	'o': Italic,
}

// Parse splits a section-sign coded string into segments. A colour code
// clears active formats, 'r' clears both colour and formats, and a trailing
// or unknown code is kept as literal text. Empty runs are dropped.
func Parse(s string) []Segment {
	var (
		segments []Segment
		current  Segment
		buf      strings.Builder
	)

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		current.Text = buf.String()
		segments = append(segments, current)
		buf.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != SectionSign || i == len(runes)-1 || !IsCode(runes[i+1]) {
			buf.WriteRune(r)
			continue
		}

		code := toLower(runes[i+1])
		i++
		flush()

		switch {
		case code == 'r':
			current = Segment{}
		case formatCodes[code] != 0:
			current.Format |= formatCodes[code]
		default:
			current = Segment{Color: Color(code)}
		}
	}
	flush()

	return segments
}

// Join encodes segments back into a section-sign coded string. Segments after
// the first start with a reset so styles never leak between runs.
func Join(segments []Segment) string {
	var b strings.Builder
	for i, seg := range segments {
		if i > 0 {
			b.WriteRune(SectionSign)
			b.WriteRune('r')
		}
		if seg.Color != NoColor {
			b.WriteRune(SectionSign)
			b.WriteRune(rune(seg.Color))
		}
		for j, f := range formatOrder {
			if seg.Format.Has(f) {
				b.WriteRune(SectionSign)
				b.WriteRune(formatOrderCodes[j])
			}
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

var (
	formatOrder      = []Format{Obfuscated, Bold, Strikethrough, Underline, Italic}
	formatOrderCodes = []rune{'k', 'l', 'm', 'n', 'o'}
)
