package game

import (
	"regexp"

	"github.com/dekarrin/bitsy/internal/util"
)

// avatarPlaceholderID is the ID an incoming avatar is given before it is
// added to a game that already has one.
const avatarPlaceholderID = "a"

var itemReference = regexp.MustCompile(`item "([^"]*)"`)

// IDMap maps the ID an entity had before a merge to the ID it was given. IDs
// that did not change are not in it.
type IDMap map[string]string

// record notes that oldID became newID. Only the first change of a given ID is
// kept.
func (m IDMap) record(oldID, newID string) {
	if oldID == newID {
		return
	}
	if _, ok := m[oldID]; !ok {
		m[oldID] = newID
	}
}

// Apply returns the ID that id was changed to, or id itself if it was not
// changed.
func (m IDMap) Apply(id string) string {
	if newID, ok := m[id]; ok {
		return newID
	}
	return id
}

func (m IDMap) applyOptional(id *string) *string {
	if id == nil {
		return nil
	}
	newID := m.Apply(*id)
	return &newID
}

func (m IDMap) applyAll(ids []string) []string {
	if ids == nil {
		return nil
	}
	newIDs := make([]string, len(ids))
	for i := range ids {
		newIDs[i] = m.Apply(ids[i])
	}
	return newIDs
}

// Remaps holds the ID changes made to each kind of entity by a merge.
// Variables are never renamed and so have no map.
type Remaps struct {
	Palettes  IDMap
	Tiles     IDMap
	Items     IDMap
	Dialogues IDMap
	Endings   IDMap
	Rooms     IDMap
	Sprites   IDMap
}

func newRemaps() Remaps {
	return Remaps{
		Palettes:  IDMap{},
		Tiles:     IDMap{},
		Items:     IDMap{},
		Dialogues: IDMap{},
		Endings:   IDMap{},
		Rooms:     IDMap{},
		Sprites:   IDMap{},
	}
}

// Merge adds every entity of source to g. Entities whose IDs clash with ones
// already in g are given new IDs, and every reference to them is updated to
// match. The source avatar becomes an ordinary sprite so that g keeps its own.
// source is not modified. The ID changes that were made are returned.
//
// References to entities that source does not have are carried over
// unchanged.
func (g *Game) Merge(source *Game) Remaps {
	rm := newRemaps()

	// palettes and tiles refer to nothing
	palIDs := util.StringSetOf(g.PaletteIDs())
	for _, pal := range source.Palettes {
		pal = pal.Copy()
		oldID := pal.ID
		pal.ID = tryIDIn(palIDs, oldID)
		palIDs.Add(pal.ID)
		g.Palettes = append(g.Palettes, pal)
		rm.Palettes.record(oldID, pal.ID)
	}

	tileIDs := util.StringSetOf(g.TileIDs())
	tileIDs.Add(BackgroundTileID)
	for _, tile := range source.Tiles {
		tile = tile.Copy()
		oldID := tile.ID
		tile.ID = newTileIDIn(tileIDs, oldID)
		tileIDs.Add(tile.ID)
		g.Tiles = append(g.Tiles, tile)

		// rooms always mean the background by "0", whatever source defines
		if oldID != BackgroundTileID {
			rm.Tiles.record(oldID, tile.ID)
		}
	}

	varIDs := util.StringSetOf(g.VariableIDs())
	for _, v := range source.Variables {
		if varIDs.Has(v.ID) {
			continue
		}
		varIDs.Add(v.ID)
		g.Variables = append(g.Variables, v.Copy())
	}

	// dialogues refer to items by ID, so item IDs are worked out before
	// dialogues are added but the items themselves go in after
	itemIDs := util.StringSetOf(g.ItemIDs())
	newItemIDs := make([]string, len(source.Items))
	for i, item := range source.Items {
		newItemIDs[i] = tryIDIn(itemIDs, item.ID)
		itemIDs.Add(newItemIDs[i])
		rm.Items.record(item.ID, newItemIDs[i])
	}

	dlgIDs := util.StringSetOf(g.DialogueIDs())
	for _, dlg := range source.Dialogues {
		dlg = dlg.Copy()
		dlg.Contents = rewriteItemReferences(dlg.Contents, rm.Items)
		oldID := dlg.ID
		dlg.ID = tryIDIn(dlgIDs, oldID)
		dlgIDs.Add(dlg.ID)
		g.Dialogues = append(g.Dialogues, dlg)
		rm.Dialogues.record(oldID, dlg.ID)
	}

	endIDs := util.StringSetOf(g.EndingIDs())
	for _, end := range source.Endings {
		oldID := end.ID
		end.ID = tryIDIn(endIDs, oldID)
		endIDs.Add(end.ID)
		g.Endings = append(g.Endings, end)
		rm.Endings.record(oldID, end.ID)
	}

	for i, item := range source.Items {
		item = item.Copy()
		item.ID = newItemIDs[i]
		item.DialogueID = rm.Dialogues.applyOptional(item.DialogueID)
		g.Items = append(g.Items, item)
	}

	// exits can lead to any room, including ones later in source
	roomIDs := util.StringSetOf(g.RoomIDs())
	newRoomIDs := make([]string, len(source.Rooms))
	for i, room := range source.Rooms {
		newRoomIDs[i] = tryIDIn(roomIDs, room.ID)
		roomIDs.Add(newRoomIDs[i])
		rm.Rooms.record(room.ID, newRoomIDs[i])
	}

	for i, room := range source.Rooms {
		room = room.Copy()
		room.ID = newRoomIDs[i]
		room.PaletteID = rm.Palettes.applyOptional(room.PaletteID)
		room.Tiles = rm.Tiles.applyAll(room.Tiles)
		room.Walls = rm.Tiles.applyAll(room.Walls)
		for j := range room.Items {
			room.Items[j].ID = rm.Items.Apply(room.Items[j].ID)
		}
		for j := range room.Exits {
			room.Exits[j].Exit.RoomID = rm.Rooms.Apply(room.Exits[j].Exit.RoomID)
			room.Exits[j].DialogueID = rm.Dialogues.applyOptional(room.Exits[j].DialogueID)
		}
		for j := range room.Endings {
			room.Endings[j].ID = rm.Endings.Apply(room.Endings[j].ID)
		}
		g.Rooms = append(g.Rooms, room)
	}

	sprIDs := util.StringSetOf(g.SpriteIDs())
	for _, spr := range source.Sprites {
		spr = spr.Copy()
		oldID := spr.ID
		if spr.IsAvatar() {
			spr.ID = avatarPlaceholderID
		}
		spr.ID = tryIDIn(sprIDs, spr.ID)
		sprIDs.Add(spr.ID)
		spr.DialogueID = rm.Dialogues.applyOptional(spr.DialogueID)
		spr.RoomID = rm.Rooms.applyOptional(spr.RoomID)
		spr.Items = rm.Items.applyAll(spr.Items)
		g.Sprites = append(g.Sprites, spr)
		rm.Sprites.record(oldID, spr.ID)
	}

	return rm
}

// rewriteItemReferences updates every `item "id"` in dialogue text to use the
// new IDs in items.
func rewriteItemReferences(text string, items IDMap) string {
	if len(items) < 1 {
		return text
	}
	return itemReference.ReplaceAllStringFunc(text, func(ref string) string {
		id := itemReference.FindStringSubmatch(ref)[1]
		return `item "` + items.Apply(id) + `"`
	})
}
