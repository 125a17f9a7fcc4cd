package game

import (
	"fmt"
	"os"
)

// LoadFile loads a game from the file at path. Diagnostics from parsing it are
// returned along with the game; the error is only non-nil if the file could
// not be read or has nothing in it.
func LoadFile(path string) (*Game, []error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading game file: %w", err)
	}

	g, warns, err := Parse(string(data))
	if err != nil {
		return nil, nil, fmt.Errorf("loading game file: %w", err)
	}

	return g, warns, nil
}

// SaveFile writes g to the file at path, replacing it if it already exists.
func SaveFile(path string, g *Game) error {
	if err := os.WriteFile(path, []byte(g.String()), 0644); err != nil {
		return fmt.Errorf("writing game file: %w", err)
	}
	return nil
}
