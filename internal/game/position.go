package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
)

// Position is a cell within a room. The origin is the top-left corner.
type Position struct {
	X uint8
	Y uint8
}

// ParsePosition parses a position from "x,y". Anything after a second comma
// is ignored.
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return Position{}, bitsyerrors.Newf(bitsyerrors.KindPosition, "%q is not x,y", s)
	}

	x, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Position{}, bitsyerrors.Newf(bitsyerrors.KindPosition, "%q is not x,y", s)
	}
	y, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Position{}, bitsyerrors.Newf(bitsyerrors.KindPosition, "%q is not x,y", s)
	}

	return Position{X: uint8(x), Y: uint8(y)}, nil
}

func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Instance is a placement of an item or an ending at a position in a room.
type Instance struct {
	Position Position
	ID       string
}

// parseInstance parses "id x,y" as found after the tag of an ITM or END line
// in a room.
func parseInstance(s string) (Instance, error) {
	id, pos, ok := strings.Cut(s, " ")
	if !ok {
		return Instance{}, bitsyerrors.Newf(bitsyerrors.KindPosition, "%q has no position", s)
	}
	p, err := ParsePosition(pos)
	if err != nil {
		return Instance{}, err
	}
	return Instance{ID: id, Position: p}, nil
}

func (inst Instance) String() string {
	return inst.ID + " " + inst.Position.String()
}
