package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
)

// Colour is a single RGB colour in a palette.
type Colour struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// ParseColour parses a colour from "r,g,b". Stray commas at either end are
// ignored. A component that is not a number from 0 to 255 is read as 0, but
// there must be exactly three of them.
func ParseColour(s string) (Colour, error) {
	parts := strings.Split(strings.Trim(s, ","), ",")
	if len(parts) != 3 {
		return Colour{}, bitsyerrors.Newf(bitsyerrors.KindColour, "%q does not have 3 components", s)
	}

	return Colour{
		Red:   parseComponent(parts[0]),
		Green: parseComponent(parts[1]),
		Blue:  parseComponent(parts[2]),
	}, nil
}

func parseComponent(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// ColourFromHex parses a colour from a six-digit hex code such as "#ff0080".
// The leading '#' is optional and case is ignored.
func ColourFromHex(hex string) (Colour, error) {
	hex = strings.TrimPrefix(strings.ToLower(hex), "#")
	if len(hex) != 6 {
		return Colour{}, bitsyerrors.Newf(bitsyerrors.KindColour, "%q is not a 6-digit hex code", hex)
	}

	var c [3]uint8
	for i := range c {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return Colour{}, bitsyerrors.Wrapf(err, bitsyerrors.KindColour, "%q is not a hex code", hex)
		}
		c[i] = uint8(v)
	}

	return Colour{Red: c[0], Green: c[1], Blue: c[2]}, nil
}

// Hex returns the colour as a lowercase hex code with a leading '#'.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

func (c Colour) String() string {
	return fmt.Sprintf("%d,%d,%d", c.Red, c.Green, c.Blue)
}

// parseColourIndex parses the value of a COL line into a palette index.
func parseColourIndex(line string) (uint64, error) {
	value := tagValue(line, "COL")
	idx, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, bitsyerrors.Newf(bitsyerrors.KindColour, "%q is not a palette index", value)
	}
	return idx, nil
}
