// Package game holds Bitsy game data and converts it to and from the text
// format that the Bitsy editor saves.
package game

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// Game is an entire Bitsy game. Entities are kept in the order they were read
// in so that writing a game out again gives back the same text.
type Game struct {
	// Name is the title of the game. It may be empty and may span several
	// lines.
	Name string

	// Version is the version of Bitsy the game was saved with, if it says.
	Version *Version

	// RoomFormat is how room tile grids are written, if the game says.
	RoomFormat *RoomFormat

	// RoomType is the tag rooms are written with.
	RoomType RoomType

	Font Font

	// CustomFont is the name of the font if Font is FontCustom.
	CustomFont *string

	TextDirection TextDirection

	Palettes  []Palette
	Rooms     []Room
	Tiles     []Tile
	Sprites   []Sprite
	Items     []Item
	Dialogues []Dialogue
	Endings   []Ending
	Variables []Variable

	// FontData is the FONT block of a game with a custom font, kept as-is.
	FontData *string

	// Warnings is every diagnostic produced when the game was parsed.
	Warnings []error
}

// Parse reads a game from its text. Parsing is lenient: anything that cannot
// be understood is left out and noted in the returned warnings, which are also
// kept in the Warnings field of the game. The only error is
// bitsyerrors.ErrEmpty, returned when data has nothing in it but whitespace.
func Parse(data string) (*Game, []error, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil, bitsyerrors.ErrEmpty
	}

	g := &Game{}
	for _, seg := range parseSegments(data) {
		g.addSegment(seg)
	}

	if _, err := g.GetAvatar(); err != nil {
		g.Warnings = append(g.Warnings, err)
	}

	return g, g.Warnings, nil
}

func (g *Game) addSegment(seg segment) {
	switch seg := seg.(type) {
	case nameSegment:
		g.Name = seg.name
	case versionSegment:
		v := seg.version
		g.Version = &v
	case roomFormatSegment:
		rf := seg.format
		g.RoomFormat = &rf
	case fontSegment:
		g.Font = seg.font
		if seg.custom != nil {
			g.CustomFont = seg.custom
		}
	case textDirectionSegment:
		g.TextDirection = seg.direction
	case paletteSegment:
		g.Palettes = append(g.Palettes, seg.palette)
	case roomSegment:
		if seg.roomType == RoomTypeSet {
			g.RoomType = RoomTypeSet
		}
		g.Rooms = append(g.Rooms, seg.room)
	case tileSegment:
		g.Tiles = append(g.Tiles, seg.tile)
	case spriteSegment:
		g.Sprites = append(g.Sprites, seg.sprite)
	case itemSegment:
		g.Items = append(g.Items, seg.item)
	case dialogueSegment:
		g.Dialogues = append(g.Dialogues, seg.dialogue)
	case endingSegment:
		g.Endings = append(g.Endings, seg.ending)
	case variableSegment:
		g.Variables = append(g.Variables, seg.variable)
	case fontDataSegment:
		data := seg.data
		g.FontData = &data
	case warningSegment:
		g.Warnings = append(g.Warnings, seg.err)
	}
}

// EffectiveVersion returns the version of the game, or DefaultVersion if it
// does not give one.
func (g *Game) EffectiveVersion() Version {
	if g.Version == nil {
		return DefaultVersion
	}
	return *g.Version
}

// EffectiveRoomFormat returns the room format of the game, or
// RoomFormatContiguous if it does not give one.
func (g *Game) EffectiveRoomFormat() RoomFormat {
	if g.RoomFormat == nil {
		return RoomFormatContiguous
	}
	return *g.RoomFormat
}

// String writes the game out in the text format.
func (g *Game) String() string {
	var sb strings.Builder

	sb.WriteString(g.Name)
	if g.Version != nil {
		sb.WriteString("\n\n" + versionPrefix + " " + g.Version.String())
	}
	if g.RoomFormat != nil {
		sb.WriteString("\n\n" + roomFormatPrefix + " " + g.RoomFormat.String())
	}
	switch g.Font {
	case FontAsciiSmall:
	case FontCustom:
		if g.CustomFont != nil {
			sb.WriteString("\n\nDEFAULT_FONT " + *g.CustomFont)
		}
	default:
		sb.WriteString("\n\nDEFAULT_FONT " + g.Font.String())
	}
	if g.TextDirection == TextDirectionRightToLeft {
		sb.WriteString("\n\nTEXT_DIRECTION RTL")
	}

	var segs []string
	for i := range g.Palettes {
		segs = append(segs, g.Palettes[i].String())
	}
	format := g.EffectiveRoomFormat()
	for i := range g.Rooms {
		segs = append(segs, g.Rooms[i].Format(format, g.RoomType))
	}
	for i := range g.Tiles {
		segs = append(segs, g.Tiles[i].String())
	}
	for i := range g.Sprites {
		segs = append(segs, g.Sprites[i].String())
	}
	for i := range g.Items {
		segs = append(segs, g.Items[i].String())
	}
	for i := range g.Dialogues {
		// undo the escaping added for names that follow a blank line
		segs = append(segs, strings.ReplaceAll(g.Dialogues[i].String(), escapeLine+"\n"+escapeLine, ""))
	}
	for i := range g.Endings {
		segs = append(segs, g.Endings[i].String())
	}
	for i := range g.Variables {
		segs = append(segs, g.Variables[i].String())
	}
	if g.FontData != nil {
		segs = append(segs, *g.FontData)
	}

	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(segs, "\n\n"))
	sb.WriteString("\n\n")

	return sb.String()
}

// Copy returns a deeply-copied Game.
func (g *Game) Copy() *Game {
	gCopy := &Game{
		Name:          g.Name,
		Version:       copyOptional(g.Version),
		RoomFormat:    copyOptional(g.RoomFormat),
		RoomType:      g.RoomType,
		Font:          g.Font,
		CustomFont:    copyOptional(g.CustomFont),
		TextDirection: g.TextDirection,
		FontData:      copyOptional(g.FontData),
	}

	for i := range g.Palettes {
		gCopy.Palettes = append(gCopy.Palettes, g.Palettes[i].Copy())
	}
	for i := range g.Rooms {
		gCopy.Rooms = append(gCopy.Rooms, g.Rooms[i].Copy())
	}
	for i := range g.Tiles {
		gCopy.Tiles = append(gCopy.Tiles, g.Tiles[i].Copy())
	}
	for i := range g.Sprites {
		gCopy.Sprites = append(gCopy.Sprites, g.Sprites[i].Copy())
	}
	for i := range g.Items {
		gCopy.Items = append(gCopy.Items, g.Items[i].Copy())
	}
	for i := range g.Dialogues {
		gCopy.Dialogues = append(gCopy.Dialogues, g.Dialogues[i].Copy())
	}
	gCopy.Endings = append(gCopy.Endings, g.Endings...)
	gCopy.Variables = append(gCopy.Variables, g.Variables...)
	gCopy.Warnings = append(gCopy.Warnings, g.Warnings...)

	return gCopy
}

// GetPalette returns the palette with the given ID.
func (g *Game) GetPalette(id string) (*Palette, error) {
	for i := range g.Palettes {
		if g.Palettes[i].ID == id {
			return &g.Palettes[i], nil
		}
	}
	return nil, bitsyerrors.Newf(bitsyerrors.KindPalette, "no palette with ID %q", id)
}

// GetRoom returns the room with the given ID.
func (g *Game) GetRoom(id string) (*Room, error) {
	for i := range g.Rooms {
		if g.Rooms[i].ID == id {
			return &g.Rooms[i], nil
		}
	}
	return nil, bitsyerrors.Missing(bitsyerrors.NotFoundRoom)
}

// GetTile returns the tile with the given ID.
func (g *Game) GetTile(id string) (*Tile, error) {
	for i := range g.Tiles {
		if g.Tiles[i].ID == id {
			return &g.Tiles[i], nil
		}
	}
	return nil, bitsyerrors.Missing(bitsyerrors.NotFoundTile)
}

// GetSprite returns the sprite with the given ID.
func (g *Game) GetSprite(id string) (*Sprite, error) {
	for i := range g.Sprites {
		if g.Sprites[i].ID == id {
			return &g.Sprites[i], nil
		}
	}
	return nil, bitsyerrors.Missing(bitsyerrors.NotFoundSprite)
}

// GetAvatar returns the sprite that the player controls.
func (g *Game) GetAvatar() (*Sprite, error) {
	spr, err := g.GetSprite(AvatarID)
	if err != nil {
		return nil, bitsyerrors.Missing(bitsyerrors.NotFoundAvatar)
	}
	return spr, nil
}

// GetItem returns the item with the given ID.
func (g *Game) GetItem(id string) (*Item, error) {
	for i := range g.Items {
		if g.Items[i].ID == id {
			return &g.Items[i], nil
		}
	}
	return nil, bitsyerrors.Newf(bitsyerrors.KindItem, "no item with ID %q", id)
}

// GetDialogue returns the dialogue with the given ID.
func (g *Game) GetDialogue(id string) (*Dialogue, error) {
	for i := range g.Dialogues {
		if g.Dialogues[i].ID == id {
			return &g.Dialogues[i], nil
		}
	}
	return nil, bitsyerrors.Newf(bitsyerrors.KindDialogue, "no dialog with ID %q", id)
}

// RoomTiles returns every tile drawn in the room with the given ID, in order
// of ID. Tile IDs in the room that match no tile are skipped.
func (g *Game) RoomTiles(roomID string) ([]Tile, error) {
	room, err := g.GetRoom(roomID)
	if err != nil {
		return nil, err
	}

	var tiles []Tile
	for _, id := range room.TileIDs() {
		if tile, err := g.GetTile(id); err == nil {
			tiles = append(tiles, *tile)
		}
	}
	return tiles, nil
}

// FindTileWithAnimation returns the first tile drawn with exactly the given
// animation.
func (g *Game) FindTileWithAnimation(anim Animation) (*Tile, error) {
	for i := range g.Tiles {
		if g.Tiles[i].Animation.Equal(anim) {
			return &g.Tiles[i], nil
		}
	}
	return nil, bitsyerrors.Missing(bitsyerrors.NotFoundTile)
}

// TileIDFor returns the ID of the first tile that looks and acts the same as
// the given one, regardless of its ID or name.
func (g *Game) TileIDFor(tile Tile) (string, bool) {
	key := tile.structuralKey()
	for i := range g.Tiles {
		if g.Tiles[i].structuralKey() == key {
			return g.Tiles[i].ID, true
		}
	}
	return "", false
}

// RoomsUsingTile returns the IDs of the rooms that draw the tile with the
// given ID, in the order the rooms appear.
func (g *Game) RoomsUsingTile(tileID string) []string {
	var ids []string
	for i := range g.Rooms {
		if util.StringSetOf(g.Rooms[i].Tiles).Has(tileID) {
			ids = append(ids, g.Rooms[i].ID)
		}
	}
	return ids
}
