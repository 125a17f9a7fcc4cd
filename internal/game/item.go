package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// Item is something that can be picked up by the avatar.
type Item struct {
	ID        string
	Animation Animation
	Name      *string

	// DialogueID is the dialogue shown when the item is picked up.
	DialogueID *string

	ColourID *uint64
}

// Copy returns a deeply-copied Item.
func (item Item) Copy() Item {
	return Item{
		ID:         item.ID,
		Animation:  item.Animation.Copy(),
		Name:       copyOptional(item.Name),
		DialogueID: copyOptional(item.DialogueID),
		ColourID:   copyOptional(item.ColourID),
	}
}

// ParseItem parses an ITM block.
func ParseItem(s string, warns []error) (Item, []error, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "ITM ") {
		return Item{}, warns, bitsyerrors.New(bitsyerrors.KindItem, "missing ITM line")
	}

	item := Item{ID: tagValue(lines[0], "ITM")}
	var pixelLines []string
	for _, line := range lines[1:] {
		tag, _ := util.FirstWord(line)
		switch tag {
		case "NAME":
			item.Name = strPtr(tagValue(line, tag))
		case "DLG":
			item.DialogueID = strPtr(tagValue(line, tag))
		case "COL":
			col, err := parseColourIndex(line)
			if err != nil {
				warns = append(warns, bitsyerrors.Wrapf(err, bitsyerrors.KindItem, "item %q", item.ID))
				continue
			}
			item.ColourID = &col
		default:
			pixelLines = append(pixelLines, line)
		}
	}

	var err error
	item.Animation, warns, err = ParseAnimation(strings.Join(pixelLines, "\n"), warns)
	if err != nil {
		return Item{}, warns, bitsyerrors.Wrapf(err, bitsyerrors.KindItem, "item %q", item.ID)
	}

	return item, warns, nil
}

func (item Item) String() string {
	var sb strings.Builder
	sb.WriteString("ITM " + item.ID + "\n")
	sb.WriteString(item.Animation.String())
	sb.WriteString(optionalLine("NAME", item.Name))
	sb.WriteString(optionalLine("DLG", item.DialogueID))
	if item.ColourID != nil {
		sb.WriteString(fmt.Sprintf("\nCOL %d", *item.ColourID))
	}
	return sb.String()
}
