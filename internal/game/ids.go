package game

// File ids.go allocates IDs for new entities so that they do not clash with
// ones that already exist.

import (
	"strconv"

	"github.com/dekarrin/bitsy/internal/util"
)

// NewUniqueID returns the smallest base-36 number, written in lowercase, that
// is not in ids.
func NewUniqueID(ids []string) string {
	return newUniqueIDIn(util.StringSetOf(ids))
}

// TryID returns id if it is not in ids, and NewUniqueID(ids) if it is.
func TryID(ids []string, id string) string {
	return tryIDIn(util.StringSetOf(ids), id)
}

func newUniqueIDIn(taken util.StringSet) string {
	for n := uint64(0); ; n++ {
		id := strconv.FormatUint(n, 36)
		if !taken.Has(id) {
			return id
		}
	}
}

func tryIDIn(taken util.StringSet, id string) string {
	if taken.Has(id) {
		return newUniqueIDIn(taken)
	}
	return id
}

// newTileIDIn gives the ID that a tile with the given ID gets when it is
// added alongside the tiles in taken. taken must already hold
// BackgroundTileID.
func newTileIDIn(taken util.StringSet, id string) string {
	if id == BackgroundTileID || taken.Has(id) {
		return newUniqueIDIn(taken)
	}
	return id
}

// PaletteIDs returns the IDs of all palettes in the order they appear.
func (g *Game) PaletteIDs() []string {
	ids := make([]string, len(g.Palettes))
	for i := range g.Palettes {
		ids[i] = g.Palettes[i].ID
	}
	return ids
}

// RoomIDs returns the IDs of all rooms in the order they appear.
func (g *Game) RoomIDs() []string {
	ids := make([]string, len(g.Rooms))
	for i := range g.Rooms {
		ids[i] = g.Rooms[i].ID
	}
	return ids
}

// TileIDs returns the IDs of all tiles in the order they appear.
func (g *Game) TileIDs() []string {
	ids := make([]string, len(g.Tiles))
	for i := range g.Tiles {
		ids[i] = g.Tiles[i].ID
	}
	return ids
}

// SpriteIDs returns the IDs of all sprites in the order they appear.
func (g *Game) SpriteIDs() []string {
	ids := make([]string, len(g.Sprites))
	for i := range g.Sprites {
		ids[i] = g.Sprites[i].ID
	}
	return ids
}

// ItemIDs returns the IDs of all items in the order they appear.
func (g *Game) ItemIDs() []string {
	ids := make([]string, len(g.Items))
	for i := range g.Items {
		ids[i] = g.Items[i].ID
	}
	return ids
}

// DialogueIDs returns the IDs of all dialogues in the order they appear.
func (g *Game) DialogueIDs() []string {
	ids := make([]string, len(g.Dialogues))
	for i := range g.Dialogues {
		ids[i] = g.Dialogues[i].ID
	}
	return ids
}

// EndingIDs returns the IDs of all endings in the order they appear.
func (g *Game) EndingIDs() []string {
	ids := make([]string, len(g.Endings))
	for i := range g.Endings {
		ids[i] = g.Endings[i].ID
	}
	return ids
}

// VariableIDs returns the IDs of all variables in the order they appear.
func (g *Game) VariableIDs() []string {
	ids := make([]string, len(g.Variables))
	for i := range g.Variables {
		ids[i] = g.Variables[i].ID
	}
	return ids
}

// NewPaletteID returns the first palette ID that is not in use.
func (g *Game) NewPaletteID() string {
	return NewUniqueID(g.PaletteIDs())
}

// NewRoomID returns the first room ID that is not in use.
func (g *Game) NewRoomID() string {
	return NewUniqueID(g.RoomIDs())
}

// NewTileID returns the first tile ID that is not in use. BackgroundTileID is
// never returned.
func (g *Game) NewTileID() string {
	taken := util.StringSetOf(g.TileIDs())
	taken.Add(BackgroundTileID)
	return newUniqueIDIn(taken)
}

// NewSpriteID returns the first sprite ID that is not in use.
func (g *Game) NewSpriteID() string {
	return NewUniqueID(g.SpriteIDs())
}

// NewItemID returns the first item ID that is not in use.
func (g *Game) NewItemID() string {
	return NewUniqueID(g.ItemIDs())
}

// NewDialogueID returns the first dialogue ID that is not in use.
func (g *Game) NewDialogueID() string {
	return NewUniqueID(g.DialogueIDs())
}

// NewEndingID returns the first ending ID that is not in use.
func (g *Game) NewEndingID() string {
	return NewUniqueID(g.EndingIDs())
}

// NewVariableID returns the first variable ID that is not in use.
func (g *Game) NewVariableID() string {
	return NewUniqueID(g.VariableIDs())
}

// AddPalette adds a palette to the game, giving it a new ID if its own is
// already taken. The ID it ends up with is returned.
func (g *Game) AddPalette(pal Palette) string {
	pal.ID = TryID(g.PaletteIDs(), pal.ID)
	g.Palettes = append(g.Palettes, pal)
	return pal.ID
}

// AddRoom adds a room to the game, giving it a new ID if its own is already
// taken. The ID it ends up with is returned. The palette, tiles, exits and
// endings the room refers to are not checked.
func (g *Game) AddRoom(room Room) string {
	room.ID = TryID(g.RoomIDs(), room.ID)
	g.Rooms = append(g.Rooms, room)
	return room.ID
}

// AddTile adds a tile to the game, giving it a new ID if its own is already
// taken or is BackgroundTileID. The ID it ends up with is returned.
func (g *Game) AddTile(tile Tile) string {
	taken := util.StringSetOf(g.TileIDs())
	taken.Add(BackgroundTileID)
	tile.ID = newTileIDIn(taken, tile.ID)
	g.Tiles = append(g.Tiles, tile)
	return tile.ID
}

// AddSprite adds a sprite to the game, giving it a new ID if its own is
// already taken. The ID it ends up with is returned.
func (g *Game) AddSprite(spr Sprite) string {
	spr.ID = TryID(g.SpriteIDs(), spr.ID)
	g.Sprites = append(g.Sprites, spr)
	return spr.ID
}

// AddItem adds an item to the game, giving it a new ID if its own is already
// taken. The ID it ends up with is returned.
func (g *Game) AddItem(item Item) string {
	item.ID = TryID(g.ItemIDs(), item.ID)
	g.Items = append(g.Items, item)
	return item.ID
}

// AddDialogue adds a dialogue to the game, giving it a new ID if its own is
// already taken. The ID it ends up with is returned.
func (g *Game) AddDialogue(dlg Dialogue) string {
	dlg.ID = TryID(g.DialogueIDs(), dlg.ID)
	g.Dialogues = append(g.Dialogues, dlg)
	return dlg.ID
}

// AddEnding adds an ending to the game, giving it a new ID if its own is
// already taken. The ID it ends up with is returned.
func (g *Game) AddEnding(end Ending) string {
	end.ID = TryID(g.EndingIDs(), end.ID)
	g.Endings = append(g.Endings, end)
	return end.ID
}

// AddVariable adds a variable to the game, giving it a new ID if its own is
// already taken. The ID it ends up with is returned.
func (g *Game) AddVariable(v Variable) string {
	v.ID = TryID(g.VariableIDs(), v.ID)
	g.Variables = append(g.Variables, v)
	return v.ID
}
