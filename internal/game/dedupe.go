package game

// backgroundTile is the tile definition that looks and acts exactly like an
// empty cell.
func backgroundTile() Tile {
	return Tile{
		ID:        BackgroundTileID,
		Animation: Animation{{Pixels: make([]uint8, DimensionSD*DimensionSD)}},
	}
}

// DedupeTiles removes tiles that look and act the same as another tile,
// regardless of ID or name, and updates rooms to use the one that is kept.
// The first of each set of duplicates is kept. Tiles that are the same as an
// empty cell are removed and replaced with BackgroundTileID. The ID changes
// that were made are returned.
func (g *Game) DedupeTiles() map[string]string {
	bgKey := backgroundTile().structuralKey()

	changes := map[string]string{}
	kept := map[string]string{}
	var tiles []Tile
	for _, tile := range g.Tiles {
		key := tile.structuralKey()
		if key == bgKey {
			changes[tile.ID] = BackgroundTileID
			continue
		}
		if id, ok := kept[key]; ok {
			changes[tile.ID] = id
			continue
		}
		kept[key] = tile.ID
		tiles = append(tiles, tile)
	}

	if len(changes) < 1 {
		return changes
	}

	g.Tiles = tiles
	rewrite := IDMap(changes)
	for i := range g.Rooms {
		g.Rooms[i].Tiles = rewrite.applyAll(g.Rooms[i].Tiles)
		g.Rooms[i].Walls = rewrite.applyAll(g.Rooms[i].Walls)
	}

	return changes
}
