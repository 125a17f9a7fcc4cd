package bitsy

import "github.com/dekarrin/bitsy/internal/game"

type (
	Game         = game.Game
	Palette      = game.Palette
	Room         = game.Room
	Tile         = game.Tile
	Sprite       = game.Sprite
	Item         = game.Item
	Dialogue     = game.Dialogue
	Ending       = game.Ending
	Variable     = game.Variable
	Image        = game.Image
	Animation    = game.Animation
	Colour       = game.Colour
	Position     = game.Position
	Instance     = game.Instance
	Exit         = game.Exit
	ExitInstance = game.ExitInstance
	IDMap        = game.IDMap
	Remaps       = game.Remaps
)

// Parse reads a game from the text of a Bitsy game data file. The returned
// slice holds every recoverable problem that was found; the error is only
// non-nil if there was nothing in data to read.
func Parse(data string) (*Game, []error, error) {
	return game.Parse(data)
}

// Serialize gives the text of g as a Bitsy game data file.
func Serialize(g *Game) string {
	return g.String()
}

// LoadFile reads a game from the Bitsy game data file at path.
func LoadFile(path string) (*Game, []error, error) {
	return game.LoadFile(path)
}

// SaveFile writes g to path as a Bitsy game data file.
func SaveFile(path string, g *Game) error {
	return game.SaveFile(path, g)
}

// Merge adds everything in source to g, renaming whatever in source would
// clash with an ID already in g. source is not modified.
func Merge(g, source *Game) Remaps {
	return g.Merge(source)
}

// Dedupe removes tiles from g that are the same as an earlier tile and points
// rooms at the one that was kept. The returned map gives the replacement for
// every removed tile.
func Dedupe(g *Game) map[string]string {
	return g.DedupeTiles()
}
