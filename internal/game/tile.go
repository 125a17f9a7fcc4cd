package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// BackgroundTileID is the ID that marks an empty cell in a room. No tile may
// be given it.
const BackgroundTileID = "0"

// Tile is a piece of scenery that rooms are built from.
type Tile struct {
	ID   string
	Name *string

	// Wall is whether the avatar is blocked by the tile. If not set, the tile
	// is not a wall unless a room says so.
	Wall *bool

	Animation Animation
	ColourID  *uint64
}

// Copy returns a deeply-copied Tile.
func (tile Tile) Copy() Tile {
	return Tile{
		ID:        tile.ID,
		Name:      copyOptional(tile.Name),
		Wall:      copyOptional(tile.Wall),
		Animation: tile.Animation.Copy(),
		ColourID:  copyOptional(tile.ColourID),
	}
}

// Equal returns whether the two tiles are identical, ID and name included.
func (tile Tile) Equal(o Tile) bool {
	if tile.ID != o.ID || !optionalEqual(tile.Name, o.Name) {
		return false
	}
	return tile.structuralKey() == o.structuralKey()
}

// structuralKey gives a string that is the same for two tiles if and only if
// they look and act the same, regardless of ID or name.
func (tile Tile) structuralKey() string {
	wall := "-"
	if tile.Wall != nil {
		wall = fmt.Sprintf("%t", *tile.Wall)
	}
	col := "-"
	if tile.ColourID != nil {
		col = fmt.Sprintf("%d", *tile.ColourID)
	}
	return wall + "|" + col + "|" + tile.Animation.String()
}

// Invert inverts every frame of the tile.
func (tile *Tile) Invert() {
	for i := range tile.Animation {
		tile.Animation[i].Invert()
	}
}

// Flip flips every frame of the tile vertically.
func (tile *Tile) Flip() {
	for i := range tile.Animation {
		tile.Animation[i].Flip()
	}
}

// Mirror mirrors every frame of the tile horizontally.
func (tile *Tile) Mirror() {
	for i := range tile.Animation {
		tile.Animation[i].Mirror()
	}
}

// Rotate rotates every frame of the tile 90 degrees clockwise.
func (tile *Tile) Rotate() {
	for i := range tile.Animation {
		tile.Animation[i].Rotate()
	}
}

// ParseTile parses a TIL block.
func ParseTile(s string, warns []error) (Tile, []error, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "TIL ") {
		return Tile{}, warns, bitsyerrors.New(bitsyerrors.KindTile, "missing TIL line")
	}

	tile := Tile{ID: tagValue(lines[0], "TIL")}
	if tile.ID == BackgroundTileID {
		return Tile{}, warns, bitsyerrors.Newf(bitsyerrors.KindTile, "tile %q is the background and cannot be defined", tile.ID)
	}
	var pixelLines []string
	for _, line := range lines[1:] {
		tag, _ := util.FirstWord(line)
		switch tag {
		case "NAME":
			tile.Name = strPtr(tagValue(line, tag))
		case "WAL":
			wall := strings.HasSuffix(line, "true")
			tile.Wall = &wall
		case "COL":
			col, err := parseColourIndex(line)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindTile, "tile %q", tile.ID))
				continue
			}
			tile.ColourID = &col
		default:
			pixelLines = append(pixelLines, line)
		}
	}

	var err error
	tile.Animation, warns, err = ParseAnimation(strings.Join(pixelLines, "\n"), warns)
	if err != nil {
		return Tile{}, warns, bitsyerrors.Wrapf(err, bitsyerrors.KindTile, "tile %q", tile.ID)
	}

	return tile, warns, nil
}

func (tile Tile) String() string {
	var sb strings.Builder
	sb.WriteString("TIL " + tile.ID + "\n")
	sb.WriteString(tile.Animation.String())
	sb.WriteString(optionalLine("NAME", tile.Name))
	if tile.Wall != nil {
		sb.WriteString(fmt.Sprintf("\nWAL %t", *tile.Wall))
	}
	if tile.ColourID != nil {
		sb.WriteString(fmt.Sprintf("\nCOL %d", *tile.ColourID))
	}
	return sb.String()
}

func optionalEqual[E comparable](a, b *E) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
