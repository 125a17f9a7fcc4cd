package game

import (
	"strings"
	"testing"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
	"github.com/stretchr/testify/assert"
)

// minimalGame gives a game with a single room with tile "a" in its top-left
// corner, that tile, and an avatar.
func minimalGame(t *testing.T) *Game {
	rows := "a" + strings.Repeat("0", 15) + "\n" + strings.Repeat(strings.Repeat("0", 16)+"\n", 15)
	input := "minimal\n\n" +
		"ROOM 0\n" + rows + "\n" +
		"TIL a\n" + chequers + "\n\n" +
		"SPR A\n" + chequers + "\nPOS 0 1,1\n\n"

	g, warns, err := Parse(input)
	if err != nil || len(warns) > 0 {
		t.Fatalf("bad minimal game: %v %v", err, warns)
	}
	return g
}

// assertReferencesResolve checks that every reference between entities in g
// is to an entity that exists.
func assertReferencesResolve(assert *assert.Assertions, g *Game) {
	pals := util.StringSetOf(g.PaletteIDs())
	tiles := util.StringSetOf(g.TileIDs())
	tiles.Add(BackgroundTileID)
	items := util.StringSetOf(g.ItemIDs())
	dlgs := util.StringSetOf(g.DialogueIDs())
	ends := util.StringSetOf(g.EndingIDs())
	rooms := util.StringSetOf(g.RoomIDs())

	for _, item := range g.Items {
		if item.DialogueID != nil {
			assert.True(dlgs.Has(*item.DialogueID), "item %q: dialog %q", item.ID, *item.DialogueID)
		}
	}
	for _, room := range g.Rooms {
		if room.PaletteID != nil {
			assert.True(pals.Has(*room.PaletteID), "room %q: palette %q", room.ID, *room.PaletteID)
		}
		for _, id := range room.Tiles {
			assert.True(tiles.Has(id), "room %q: tile %q", room.ID, id)
		}
		for _, inst := range room.Items {
			assert.True(items.Has(inst.ID), "room %q: item %q", room.ID, inst.ID)
		}
		for _, ext := range room.Exits {
			assert.True(rooms.Has(ext.Exit.RoomID), "room %q: exit to %q", room.ID, ext.Exit.RoomID)
			if ext.DialogueID != nil {
				assert.True(dlgs.Has(*ext.DialogueID), "room %q: exit dialog %q", room.ID, *ext.DialogueID)
			}
		}
		for _, inst := range room.Endings {
			assert.True(ends.Has(inst.ID), "room %q: ending %q", room.ID, inst.ID)
		}
	}
	for _, spr := range g.Sprites {
		if spr.RoomID != nil {
			assert.True(rooms.Has(*spr.RoomID), "sprite %q: room %q", spr.ID, *spr.RoomID)
		}
		if spr.DialogueID != nil {
			assert.True(dlgs.Has(*spr.DialogueID), "sprite %q: dialog %q", spr.ID, *spr.DialogueID)
		}
		for _, id := range spr.Items {
			assert.True(items.Has(id), "sprite %q: item %q", spr.ID, id)
		}
	}
}

func assertUniqueIDs(assert *assert.Assertions, ids []string) {
	assert.Len(util.StringSetOf(ids), len(ids), "duplicate IDs in %v", ids)
}

func Test_Game_Merge_minimalWithItself(t *testing.T) {
	assert := assert.New(t)

	g := minimalGame(t)
	source := minimalGame(t)

	rm := g.Merge(source)

	assert.Equal([]string{"0", "1"}, g.RoomIDs())
	assert.Equal([]string{"a", "1"}, g.TileIDs())
	assert.Equal([]string{"A", "a"}, g.SpriteIDs())

	assert.Equal("a", g.Rooms[0].Tiles[0])
	assert.Equal("1", g.Rooms[1].Tiles[0])
	assert.Equal("0", g.Rooms[1].Tiles[1])

	assert.Equal(IDMap{"0": "1"}, rm.Rooms)
	assert.Equal(IDMap{"a": "1"}, rm.Tiles)
	assert.Equal(IDMap{"A": "a"}, rm.Sprites)
	assert.Empty(rm.Palettes)

	assert.Equal(strPtr("1"), g.Sprites[1].RoomID)
	assertReferencesResolve(assert, g)
}

func Test_Game_Merge_defaultWithItself(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "default.bitsy")
	source := loadTestGame(t, "default.bitsy")
	sourceText := source.String()

	rm := g.Merge(source)

	assert.Equal(sourceText, source.String(), "source must not be modified")

	assert.Equal([]string{"0", "1"}, g.PaletteIDs())
	assert.Equal([]string{"0", "1"}, g.RoomIDs())
	assert.Equal([]string{"a", "1"}, g.TileIDs())
	assert.Equal([]string{"A", "a", "0", "1"}, g.SpriteIDs())
	assert.Equal([]string{"0", "1"}, g.ItemIDs())
	assert.Equal([]string{"0", "1", "2", "3"}, g.DialogueIDs())
	assert.Equal([]string{"0", "1"}, g.EndingIDs())
	assert.Equal([]string{"a"}, g.VariableIDs())

	assert.Equal(IDMap{"0": "2", "1": "3"}, rm.Dialogues)
	assert.Equal(IDMap{"A": "0", "a": "1"}, rm.Sprites)

	item, _ := g.GetItem("1")
	assert.Equal(strPtr("3"), item.DialogueID)

	room, _ := g.GetRoom("1")
	assert.Equal(strPtr("1"), room.PaletteID)
	assert.Equal([]Instance{{ID: "1", Position: Position{11, 5}}}, room.Items)

	cat, _ := g.GetSprite("1")
	assert.Equal(strPtr("2"), cat.DialogueID)
	assert.Equal(strPtr("1"), cat.RoomID)

	avatar, _ := g.GetAvatar()
	assert.Equal(strPtr("0"), avatar.RoomID, "target avatar must be left alone")

	assertReferencesResolve(assert, g)
	for _, ids := range [][]string{g.PaletteIDs(), g.RoomIDs(), g.TileIDs(), g.SpriteIDs(), g.ItemIDs(), g.DialogueIDs(), g.EndingIDs()} {
		assertUniqueIDs(assert, ids)
	}

	// the merged game must survive being written out and read back in
	reparsed, warns, err := Parse(g.String())
	if assert.NoError(err) {
		assert.Empty(warns)
		assert.Equal(g.String(), reparsed.String())
	}
}

func Test_Game_Merge_exitsToLaterRooms(t *testing.T) {
	assert := assert.New(t)

	g := minimalGame(t)

	source := minimalGame(t)
	second := source.Rooms[0].Copy()
	second.ID = "1"
	source.Rooms = append(source.Rooms, second)
	source.Rooms[0].Exits = []ExitInstance{{
		Position:   Position{2, 2},
		Exit:       Exit{RoomID: "1", Position: Position{3, 3}},
		DialogueID: strPtr("x"),
	}}
	source.Rooms[1].Exits = []ExitInstance{{
		Position: Position{2, 2},
		Exit:     Exit{RoomID: "0", Position: Position{3, 3}},
	}}

	rm := g.Merge(source)

	assert.Equal(IDMap{"0": "1", "1": "2"}, rm.Rooms)
	assert.Equal("2", g.Rooms[1].Exits[0].Exit.RoomID)
	assert.Equal("1", g.Rooms[2].Exits[0].Exit.RoomID)

	// a dialog that source does not have is passed through as-is
	assert.Equal(strPtr("x"), g.Rooms[1].Exits[0].DialogueID)
}

func Test_Game_Merge_itemReferencesInDialogue(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "default.bitsy")

	source := loadTestGame(t, "default.bitsy")
	source.Dialogues[0].Contents = `you have {item "0"} teas and {item "zz"} other things`
	source.Sprites[1].Items = []string{"0", "0"}

	g.Merge(source)

	dlg, err := g.GetDialogue("2")
	if assert.NoError(err) {
		assert.Equal(`you have {item "1"} teas and {item "zz"} other things`, dlg.Contents)
	}

	cat, _ := g.GetSprite("1")
	assert.Equal([]string{"1", "1"}, cat.Items)
}

func Test_Game_Merge_variablesAreNotRenamed(t *testing.T) {
	assert := assert.New(t)

	g := loadTestGame(t, "default.bitsy")

	source := loadTestGame(t, "default.bitsy")
	source.Variables = []Variable{{ID: "a", InitialValue: "0"}, {ID: "b", InitialValue: "1"}}

	g.Merge(source)

	assert.Equal([]Variable{{ID: "a", InitialValue: "42"}, {ID: "b", InitialValue: "1"}}, g.Variables)
}

func Test_Game_Merge_backgroundTileIsNeverTaken(t *testing.T) {
	assert := assert.New(t)

	g := minimalGame(t)

	source := minimalGame(t)
	source.Tiles[0].ID = "b"
	source.Tiles = append(source.Tiles, Tile{ID: BackgroundTileID, Animation: Animation{singlePixel(0, 0)}})

	rm := g.Merge(source)

	assert.Equal([]string{"a", "b", "1"}, g.TileIDs())
	assert.Empty(rm.Tiles)
	assert.Equal([]string{"a", "0", "0"}, g.Rooms[1].Tiles[:3], "background cells stay background")
}

func Test_Game_Merge_definedBackgroundTile(t *testing.T) {
	assert := assert.New(t)

	rows := "z" + strings.Repeat("0", 15) + "\n" + strings.Repeat(strings.Repeat("0", 16)+"\n", 15)
	input := "background\n\n" +
		"ROOM 0\n" + rows + "\n" +
		"TIL 0\n" + chequers + "\n\n" +
		"TIL z\n" + chequers + "\n\n" +
		"SPR A\n" + chequers + "\nPOS 0 1,1\n\n"

	g, warns, err := Parse(input)
	if !assert.NoError(err) {
		return
	}
	if assert.Len(warns, 1) {
		assert.True(bitsyerrors.IsKind(warns[0], bitsyerrors.KindTile))
	}
	assert.Equal([]string{"z"}, g.TileIDs())

	source, _, err := Parse(input)
	if !assert.NoError(err) {
		return
	}

	g.Merge(source)

	assert.Equal([]string{"z", "1"}, g.TileIDs())
	assert.Equal([]string{"1", "0", "0", "0"}, g.Rooms[1].Tiles[:4])
	assertReferencesResolve(assert, g)
}

func Test_rewriteItemReferences(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		items  IDMap
		expect string
	}{
		{
			name:   "no changes",
			input:  `{item "0"}`,
			items:  IDMap{},
			expect: `{item "0"}`,
		},
		{
			name:   "single pass",
			input:  `{item "0"} {item "1"}`,
			items:  IDMap{"0": "1", "1": "2"},
			expect: `{item "1"} {item "2"}`,
		},
		{
			name:   "unquoted is not a reference",
			input:  `item 0`,
			items:  IDMap{"0": "1"},
			expect: `item 0`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, rewriteItemReferences(tc.input, tc.items))
		})
	}
}

func Test_IDMap_record(t *testing.T) {
	assert := assert.New(t)

	m := IDMap{}
	m.record("a", "a")
	m.record("b", "c")
	m.record("b", "d")

	assert.Equal(IDMap{"b": "c"}, m)
	assert.Equal("c", m.Apply("b"))
	assert.Equal("a", m.Apply("a"))
}
