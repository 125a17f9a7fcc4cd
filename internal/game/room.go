package game

// File room.go includes symbols for holding data on the rooms and exits between
// them.

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// RoomSize is the number of tiles across (and down) a room.
const RoomSize = 16

// Room is a single screen of the game: a grid of tiles plus the items, exits
// and endings that have been placed in it.
type Room struct {
	// ID is how the room is referred to by exits and sprites. It must be
	// unique from all other Rooms.
	ID string

	// PaletteID is the palette the room is drawn with. If not set, the first
	// palette of the game is used.
	PaletteID *string

	Name *string

	// Tiles is the tile ID at each cell of the room, in row-major order. "0"
	// is the empty background.
	Tiles []string

	// Walls is the IDs of tiles that act as walls in this room regardless of
	// their own setting. Nil means the room has no WAL line at all, which is
	// not the same as an empty one.
	Walls []string

	Items   []Instance
	Exits   []ExitInstance
	Endings []Instance
}

// Copy returns a deeply-copied Room.
func (room Room) Copy() Room {
	rCopy := Room{
		ID:        room.ID,
		PaletteID: copyOptional(room.PaletteID),
		Name:      copyOptional(room.Name),
		Tiles:     copyStrings(room.Tiles),
		Walls:     copyStrings(room.Walls),
	}

	if room.Items != nil {
		rCopy.Items = make([]Instance, len(room.Items))
		copy(rCopy.Items, room.Items)
	}
	if room.Exits != nil {
		rCopy.Exits = make([]ExitInstance, len(room.Exits))
		for i := range room.Exits {
			rCopy.Exits[i] = room.Exits[i].Copy()
		}
	}
	if room.Endings != nil {
		rCopy.Endings = make([]Instance, len(room.Endings))
		copy(rCopy.Endings, room.Endings)
	}

	return rCopy
}

// TileIDs returns the distinct tile IDs used in the room, not including the
// empty background, in alphabetical order.
func (room Room) TileIDs() []string {
	ids := util.NewStringSet()
	for _, id := range room.Tiles {
		if id != BackgroundTileID {
			ids.Add(id)
		}
	}
	return ids.Elements()
}

// ParseRoom parses a ROOM or SET block. The tag the room was written with is
// returned along with it. Item, exit and ending lines that cannot be read are
// skipped and noted in the returned warnings.
func ParseRoom(s string, warns []error) (Room, RoomType, []error, error) {
	lines := util.Lines(s)
	if len(lines) < 1 {
		return Room{}, RoomTypeRoom, warns, bitsyerrors.New(bitsyerrors.KindRoom, "missing ROOM line")
	}

	var room Room
	roomType := RoomTypeRoom
	switch util.LeadingToken(lines[0]) {
	case "ROOM":
		room.ID = tagValue(lines[0], "ROOM")
	case "SET":
		room.ID = tagValue(lines[0], "SET")
		roomType = RoomTypeSet
	default:
		return Room{}, RoomTypeRoom, warns, bitsyerrors.New(bitsyerrors.KindRoom, "missing ROOM line")
	}
	lines = lines[1:]

	gridLines := lines
	if len(gridLines) > RoomSize {
		gridLines = gridLines[:RoomSize]
	}
	for _, line := range gridLines {
		room.Tiles = append(room.Tiles, parseGridRow(line)...)
	}

	for _, line := range lines[len(gridLines):] {
		tag, ok := util.FirstWord(line)
		if !ok {
			continue
		}
		value := tagValue(line, tag)

		switch tag {
		case "WAL":
			room.Walls = strings.Split(value, ",")
		case "NAME":
			room.Name = strPtr(value)
		case "PAL":
			room.PaletteID = strPtr(value)
		case "ITM":
			inst, err := parseInstance(value)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindRoom, "room %q: item", room.ID))
				continue
			}
			room.Items = append(room.Items, inst)
		case "EXT":
			ext, err := parseExitInstance(value)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindRoom, "room %q", room.ID))
				continue
			}
			room.Exits = append(room.Exits, ext)
		case "END":
			inst, err := parseInstance(value)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindRoom, "room %q: ending", room.ID))
				continue
			}
			room.Endings = append(room.Endings, inst)
		}
	}

	return room, roomType, warns, nil
}

// parseGridRow reads one row of the tile grid. Rows with commas in them are
// comma-separated and all others are one character per tile. Either way, tiles
// past the edge of the room are dropped.
func parseGridRow(line string) []string {
	var row []string
	if strings.Contains(line, ",") {
		row = strings.Split(line, ",")
	} else {
		for _, ch := range line {
			row = append(row, string(ch))
		}
	}

	if len(row) > RoomSize {
		row = row[:RoomSize]
	}
	return row
}

// Format returns the room as it is written in game data. The format decides
// how the tile grid is written and roomType decides which tag it is written
// with.
func (room Room) Format(format RoomFormat, roomType RoomType) string {
	var sb strings.Builder

	sb.WriteString(roomType.String() + " " + room.ID + "\n")

	sep := ""
	if format == RoomFormatCommaSeparated {
		sep = ","
	}
	var rows []string
	for start := 0; start < len(room.Tiles); start += RoomSize {
		end := start + RoomSize
		if end > len(room.Tiles) {
			end = len(room.Tiles)
		}
		rows = append(rows, strings.Join(room.Tiles[start:end], sep))
	}
	sb.WriteString(strings.Join(rows, "\n"))

	sb.WriteString(optionalLine("NAME", room.Name))
	if room.Walls != nil {
		sb.WriteString("\nWAL " + strings.Join(room.Walls, ","))
	}
	for _, inst := range room.Items {
		sb.WriteString("\nITM " + inst.String())
	}
	for _, ext := range room.Exits {
		sb.WriteString("\nEXT " + ext.String())
	}
	for _, inst := range room.Endings {
		sb.WriteString("\nEND " + inst.String())
	}
	sb.WriteString(optionalLine("PAL", room.PaletteID))

	return sb.String()
}

// String returns the room as it is written in game data with default
// settings.
func (room Room) String() string {
	return room.Format(RoomFormatCommaSeparated, RoomTypeRoom)
}
