package game

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// Palette is a named set of colours that rooms are drawn with. By convention
// the first colour is the background, the second is tiles and the third is
// sprites, but a palette may have any number of them.
type Palette struct {
	ID      string
	Name    *string
	Colours []Colour
}

// Copy returns a deeply-copied Palette.
func (pal Palette) Copy() Palette {
	pCopy := Palette{
		ID:   pal.ID,
		Name: copyOptional(pal.Name),
	}
	if pal.Colours != nil {
		pCopy.Colours = make([]Colour, len(pal.Colours))
		copy(pCopy.Colours, pal.Colours)
	}
	return pCopy
}

// ParsePalette parses a PAL block. Lines that are not valid colours are
// skipped and noted in the returned warnings.
func ParsePalette(s string, warns []error) (Palette, []error, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "PAL ") {
		return Palette{}, warns, bitsyerrors.New(bitsyerrors.KindPalette, "missing PAL line")
	}

	pal := Palette{ID: tagValue(lines[0], "PAL")}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "NAME ") {
			pal.Name = strPtr(tagValue(line, "NAME"))
			continue
		}

		col, err := ParseColour(line)
		if err != nil {
			warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindPalette, "palette %q", pal.ID))
			continue
		}
		pal.Colours = append(pal.Colours, col)
	}

	return pal, warns, nil
}

func (pal Palette) String() string {
	var sb strings.Builder
	sb.WriteString("PAL " + pal.ID + "\n")
	if pal.Name != nil {
		sb.WriteString("NAME " + *pal.Name + "\n")
	}
	for i := range pal.Colours {
		if i > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(pal.Colours[i].String())
	}
	return sb.String()
}
