package game

import "strings"

// Font is the font that text in a game is shown in.
type Font int

const (
	// FontAsciiSmall is the default font. It is never written out.
	FontAsciiSmall Font = iota
	FontUnicodeEuropeanSmall
	FontUnicodeEuropeanLarge
	FontUnicodeAsian
	FontArabic

	// FontCustom is a font that is given by name and is defined in a FONT
	// block of the game data.
	FontCustom
)

var fontNames = map[Font]string{
	FontUnicodeEuropeanSmall: "unicode_european_small",
	FontUnicodeEuropeanLarge: "unicode_european_large",
	FontUnicodeAsian:         "unicode_asian",
	FontArabic:               "arabic",
}

// ParseFont parses the argument of a DEFAULT_FONT line. Any name that is not
// one of the built-in fonts is a custom font.
func ParseFont(s string) Font {
	for f, name := range fontNames {
		if name == s {
			return f
		}
	}
	return FontCustom
}

// String returns the name the font is written with. FontAsciiSmall and
// FontCustom have no fixed name and give the empty string.
func (f Font) String() string {
	return fontNames[f]
}

// TextDirection is the direction that text in dialogue is read in.
type TextDirection int

const (
	TextDirectionLeftToRight TextDirection = iota
	TextDirectionRightToLeft
)

// parseTextDirection parses a TEXT_DIRECTION segment. Only right-to-left is
// ever written; anything else is not a text direction at all.
func parseTextDirection(s string) (TextDirection, bool) {
	if strings.TrimSpace(s) == "TEXT_DIRECTION RTL" {
		return TextDirectionRightToLeft, true
	}
	return TextDirectionLeftToRight, false
}

func (td TextDirection) String() string {
	if td == TextDirectionRightToLeft {
		return "RTL"
	}
	return "LTR"
}
