package game

// File parser.go splits game data into segments and works out what each one
// is.

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/util"
)

const (
	escapeLine = `"""`

	versionPrefix    = "# BITSY VERSION"
	roomFormatPrefix = "! ROOM_FORMAT"
)

// segment is one recognized blank-line-delimited block of game data.
type segment interface {
	isSegment()
}

type (
	nameSegment          struct{ name string }
	versionSegment       struct{ version Version }
	roomFormatSegment    struct{ format RoomFormat }
	textDirectionSegment struct{ direction TextDirection }
	paletteSegment       struct{ palette Palette }
	tileSegment          struct{ tile Tile }
	spriteSegment        struct{ sprite Sprite }
	itemSegment          struct{ item Item }
	dialogueSegment      struct{ dialogue Dialogue }
	endingSegment        struct{ ending Ending }
	variableSegment      struct{ variable Variable }
	fontDataSegment      struct{ data string }
	warningSegment       struct{ err error }
)

type fontSegment struct {
	font Font

	// custom is the name of the font if it is not a built-in one.
	custom *string
}

type roomSegment struct {
	room     Room
	roomType RoomType
}

func (nameSegment) isSegment()          {}
func (versionSegment) isSegment()       {}
func (roomFormatSegment) isSegment()    {}
func (fontSegment) isSegment()          {}
func (textDirectionSegment) isSegment() {}
func (paletteSegment) isSegment()       {}
func (roomSegment) isSegment()          {}
func (tileSegment) isSegment()          {}
func (spriteSegment) isSegment()        {}
func (itemSegment) isSegment()          {}
func (dialogueSegment) isSegment()      {}
func (endingSegment) isSegment()        {}
func (variableSegment) isSegment()      {}
func (fontDataSegment) isSegment()      {}
func (warningSegment) isSegment()       {}

// headerPrefixes are the beginnings of segments that may come first in a game
// with no title.
var headerPrefixes = []string{
	versionPrefix + " ",
	roomFormatPrefix + " ",
	"PAL ",
	"DEFAULT_FONT ",
	"TEXT_DIRECTION ",
}

// parseSegments turns game data into the segments it is made of, in the order
// they appear. Blocks that are not recognized are left out.
func parseSegments(data string) []segment {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.TrimLeft(data, "\n")

	blocks := splitSegments(data)
	if len(blocks) < 1 {
		return nil
	}

	var segs []segment
	if isTitle(blocks[0]) {
		segs = append(segs, nameSegment{name: blocks[0]})
		blocks = blocks[1:]
	}

	for _, b := range blocks {
		segs = append(segs, parseSegment(b)...)
	}
	return segs
}

// isTitle returns whether the first block of a game is its title. Titles may
// be empty, in which case the first block is already game data.
func isTitle(block string) bool {
	if strings.HasPrefix(block, escapeLine) {
		return true
	}
	for _, prefix := range headerPrefixes {
		if strings.HasPrefix(block, prefix) {
			return false
		}
	}
	return true
}

// splitSegments splits data on blank lines, except those between a pair of
// triple-quote lines.
func splitSegments(data string) []string {
	// a dialogue name may follow a blank line, which the editor only writes
	// when the dialogue ends with an empty escaped block.
	data = strings.ReplaceAll(data, "\n\nNAME", "\n"+escapeLine+"\n"+escapeLine+"\nNAME")

	var blocks []string
	var cur []string
	var escaped bool
	for _, line := range util.Lines(data) {
		if line == escapeLine {
			escaped = !escaped
		}

		if line == "" && !escaped {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = nil
		} else {
			cur = append(cur, line)
		}
	}
	blocks = append(blocks, strings.Join(cur, "\n"))

	return blocks
}

// parseSegment recognizes a single block. Any diagnostics produced while
// reading it come before the block itself. A block that is not recognized at
// all gives no segments.
func parseSegment(block string) []segment {
	if strings.HasPrefix(block, versionPrefix) {
		v, err := ParseVersion(strings.TrimPrefix(block, versionPrefix+" "))
		if err != nil {
			return []segment{warningSegment{err: err}}
		}
		return []segment{versionSegment{version: v}}
	}

	if strings.HasPrefix(block, roomFormatPrefix) {
		rf, err := ParseRoomFormat(strings.TrimPrefix(block, roomFormatPrefix+" "))
		if err != nil {
			return nil
		}
		return []segment{roomFormatSegment{format: rf}}
	}

	tag, ok := util.FirstWord(block)
	if !ok {
		return nil
	}

	var warns []error
	var seg segment
	var err error
	switch tag {
	case "DEFAULT_FONT":
		name := tagValue(block, tag)
		fs := fontSegment{font: ParseFont(name)}
		if fs.font == FontCustom {
			fs.custom = &name
		}
		seg = fs
	case "TEXT_DIRECTION":
		td, ok := parseTextDirection(block)
		if !ok {
			return nil
		}
		seg = textDirectionSegment{direction: td}
	case "PAL":
		var pal Palette
		pal, warns, err = ParsePalette(block, warns)
		seg = paletteSegment{palette: pal}
	case "ROOM", "SET":
		var rs roomSegment
		rs.room, rs.roomType, warns, err = ParseRoom(block, warns)
		seg = rs
	case "TIL":
		var tile Tile
		tile, warns, err = ParseTile(block, warns)
		seg = tileSegment{tile: tile}
	case "SPR":
		var spr Sprite
		spr, warns, err = ParseSprite(block, warns)
		seg = spriteSegment{sprite: spr}
	case "ITM":
		var item Item
		item, warns, err = ParseItem(block, warns)
		seg = itemSegment{item: item}
	case "DLG":
		var dlg Dialogue
		dlg, err = ParseDialogue(block)
		seg = dialogueSegment{dialogue: dlg}
	case "END":
		var end Ending
		end, err = ParseEnding(block)
		seg = endingSegment{ending: end}
	case "VAR":
		var v Variable
		v, err = ParseVariable(block)
		seg = variableSegment{variable: v}
	case "FONT":
		seg = fontDataSegment{data: block}
	default:
		return nil
	}

	segs := make([]segment, 0, len(warns)+1)
	for _, w := range warns {
		segs = append(segs, warningSegment{err: w})
	}
	if err != nil {
		return append(segs, warningSegment{err: err})
	}
	return append(segs, seg)
}
