package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/rosed"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This file contains functions for producing human-readable reports on a
// Game.

// Summary returns a description of the game followed by a text table giving
// how many of each kind of entity it has.
func (g *Game) Summary(width int) string {
	title := strings.TrimSpace(strings.ReplaceAll(g.Name, escapeLine, ""))
	if title == "" {
		title = "(untitled)"
	}

	font := g.Font.String()
	switch g.Font {
	case FontAsciiSmall:
		font = "ascii_small"
	case FontCustom:
		font = "(custom)"
		if g.CustomFont != nil {
			font = *g.CustomFont + " (custom)"
		}
	}

	version := g.EffectiveVersion().String()
	if g.Version == nil {
		version += " (assumed)"
	}

	avatar := "(none)"
	if spr, err := g.GetAvatar(); err == nil && spr.RoomID != nil {
		avatar = "in room " + *spr.RoomID
	} else if err == nil {
		avatar = "not placed"
	}

	info := [][2]string{
		{"Title", title},
		{"Version", version},
		{"Room Format", roomFormatName(g.EffectiveRoomFormat())},
		{"Font", font},
		{"Text Direction", g.TextDirection.String()},
		{"Avatar", avatar},
	}

	header := definitionsBlock("Game Info", info, width)

	data := [][]string{
		{"Kind", "Count"},
		{"Palettes", fmt.Sprintf("%d", len(g.Palettes))},
		{"Rooms", fmt.Sprintf("%d", len(g.Rooms))},
		{"Tiles", fmt.Sprintf("%d", len(g.Tiles))},
		{"Sprites", fmt.Sprintf("%d", len(g.Sprites))},
		{"Items", fmt.Sprintf("%d", len(g.Items))},
		{"Dialogs", fmt.Sprintf("%d", len(g.Dialogues))},
		{"Endings", fmt.Sprintf("%d", len(g.Endings))},
		{"Variables", fmt.Sprintf("%d", len(g.Variables))},
	}

	counts := rosed.Edit("").
		InsertTableOpts(0, data, width, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()

	return header + "\n\n" + counts
}

// ListRooms returns a text table of the rooms in the game and what has been
// placed in each.
func (g *Game) ListRooms(width int) string {
	data := [][]string{{"Room", "Name", "Palette", "Tiles", "Items", "Exits", "Endings"}}

	for _, room := range g.Rooms {
		name := ""
		if room.Name != nil {
			name = *room.Name
		}
		pal := "(default)"
		if room.PaletteID != nil {
			pal = *room.PaletteID
		}

		infoRow := []string{
			room.ID,
			name,
			pal,
			fmt.Sprintf("%d", len(room.TileIDs())),
			fmt.Sprintf("%d", len(room.Items)),
			fmt.Sprintf("%d", len(room.Exits)),
			fmt.Sprintf("%d", len(room.Endings)),
		}
		data = append(data, infoRow)
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, width, tableOpts).
		String()
}

// DiagnosticsTable returns a listing of diagnostics produced while parsing a
// game, in the order they were produced, each labeled with its number and the
// kind of problem it is.
func DiagnosticsTable(diags []error, width int) string {
	title := cases.Title(language.English)

	defs := make([][2]string, len(diags))
	for i, d := range diags {
		label := fmt.Sprintf("%d.", i+1)
		if k, ok := bitsyerrors.KindOf(d); ok {
			label += " " + title.String(strings.TrimSuffix(k.String(), " error"))
		}
		defs[i] = [2]string{label, d.Error()}
	}

	return definitionsBlock("Problems", defs, width)
}

// definitionsBlock gives a heading followed by a definitions table of defs
// that fits in width.
func definitionsBlock(heading string, defs [][2]string, width int) string {
	// build at width + 2 then eliminate the left margin that
	// InsertDefinitionsTable always adds to remove the 2 extra
	// chars
	tableOpts := rosed.Options{ParagraphSeparator: "\n", NoTrailingLineSeparators: true}
	return rosed.Edit(heading+"\n"+
		"\n",
	).
		InsertDefinitionsTableOpts(math.MaxInt, defs, width+2, tableOpts).
		LinesFrom(2).
		Apply(func(idx int, line string) []string {
			line = strings.Replace(line[2:], "  -", "  :", 1)
			return []string{line}
		}).
		String()
}

func roomFormatName(rf RoomFormat) string {
	if rf == RoomFormatCommaSeparated {
		return "comma-separated"
	}
	return "contiguous"
}
