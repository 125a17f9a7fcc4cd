package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// AvatarID is the ID of the sprite that the player controls.
const AvatarID = "A"

// Sprite is a character in the game. The sprite with ID AvatarID is the
// player; all others can be talked to.
type Sprite struct {
	ID        string
	Name      *string
	Animation Animation

	// DialogueID is the dialogue shown when the avatar bumps into the sprite.
	DialogueID *string

	// RoomID and Position give where the sprite starts. Sprites that are not
	// in any room have neither.
	RoomID   *string
	Position *Position

	ColourID *uint64

	// Items is the IDs of the items the sprite starts with, one entry per
	// item carried.
	Items []string
}

// Copy returns a deeply-copied Sprite.
func (spr Sprite) Copy() Sprite {
	return Sprite{
		ID:         spr.ID,
		Name:       copyOptional(spr.Name),
		Animation:  spr.Animation.Copy(),
		DialogueID: copyOptional(spr.DialogueID),
		RoomID:     copyOptional(spr.RoomID),
		Position:   copyOptional(spr.Position),
		ColourID:   copyOptional(spr.ColourID),
		Items:      copyStrings(spr.Items),
	}
}

// IsAvatar returns whether the sprite is the player.
func (spr Sprite) IsAvatar() bool {
	return spr.ID == AvatarID
}

// ParseSprite parses a SPR block. A POS line that does not give both a room
// and a position makes the whole sprite unreadable.
func ParseSprite(s string, warns []error) (Sprite, []error, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "SPR ") {
		return Sprite{}, warns, bitsyerrors.New(bitsyerrors.KindSprite, "missing SPR line")
	}

	spr := Sprite{ID: tagValue(lines[0], "SPR")}
	var pixelLines []string
	for _, line := range lines[1:] {
		tag, _ := util.FirstWord(line)
		switch tag {
		case "NAME":
			spr.Name = strPtr(tagValue(line, tag))
		case "DLG":
			spr.DialogueID = strPtr(tagValue(line, tag))
		case "POS":
			parts := strings.Split(tagValue(line, tag), " ")
			if len(parts) < 2 {
				return Sprite{}, warns, bitsyerrors.Newf(bitsyerrors.KindSprite, "sprite %q: POS has no position", spr.ID)
			}
			room := parts[0]
			p, err := ParsePosition(parts[1])
			if err != nil {
				return Sprite{}, warns, bitsyerrors.Wrapf(err, bitsyerrors.KindSprite, "sprite %q", spr.ID)
			}
			spr.RoomID = &room
			spr.Position = &p
		case "COL":
			col, err := parseColourIndex(line)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindSprite, "sprite %q", spr.ID))
				continue
			}
			spr.ColourID = &col
		case "ITM":
			spr.Items = append(spr.Items, tagValue(line, tag))
		default:
			pixelLines = append(pixelLines, line)
		}
	}

	var err error
	spr.Animation, warns, err = ParseAnimation(strings.Join(pixelLines, "\n"), warns)
	if err != nil {
		return Sprite{}, warns, bitsyerrors.Wrapf(err, bitsyerrors.KindSprite, "sprite %q", spr.ID)
	}

	return spr, warns, nil
}

func (spr Sprite) String() string {
	var sb strings.Builder
	sb.WriteString("SPR " + spr.ID + "\n")
	sb.WriteString(spr.Animation.String())
	sb.WriteString(optionalLine("NAME", spr.Name))
	sb.WriteString(optionalLine("DLG", spr.DialogueID))
	if spr.RoomID != nil && spr.Position != nil {
		sb.WriteString(fmt.Sprintf("\nPOS %s %s", *spr.RoomID, *spr.Position))
	}
	if spr.ColourID != nil {
		sb.WriteString(fmt.Sprintf("\nCOL %d", *spr.ColourID))
	}
	for _, id := range spr.Items {
		sb.WriteString("\nITM " + id)
	}
	return sb.String()
}
