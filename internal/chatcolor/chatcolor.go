// Package chatcolor translates alternate colour codes (such as "&c") into the
// section-sign codes the game client renders, and parses coloured text back
// into styled runs.
package chatcolor

import (
	"strings"

	"github.com/sandertv/gophertunnel/minecraft/text"
)

const (
	// SectionSign prefixes every colour and format code understood by the client
	SectionSign = '§'

	// AltChar is the prefix used in configuration and chat input
	AltChar = '&'

	// legalCodes holds colours 0-9 a-g, formats k-o and reset r
	legalCodes = "0123456789abcdefgklmnor"
)

// IsCode reports whether c (in any case) is a colour, format or reset code
func IsCode(c rune) bool {
	return strings.ContainsRune(legalCodes, toLower(c))
}

// Translate replaces every alt character that is followed by a legal code
// with the section sign and lower-cases the code. Alt characters not followed
// by a code are left alone.
func Translate(alt rune, s string) string {
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == alt && IsCode(runes[i+1]) {
			runes[i] = SectionSign
			runes[i+1] = toLower(runes[i+1])
		}
	}
	return string(runes)
}

// Colorize translates '&' codes
func Colorize(s string) string {
	return Translate(AltChar, s)
}

// Strip removes section-sign codes
func Strip(s string) string {
	return text.Clean(s)
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
