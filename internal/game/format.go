package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
)

// Version is the version of Bitsy that a game was last saved with.
type Version struct {
	Major uint8
	Minor uint8
}

// DefaultVersion is the version assumed for games that do not declare one.
var DefaultVersion = Version{Major: 1, Minor: 0}

// ParseVersion parses a version from "major.minor".
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return Version{}, bitsyerrors.Newf(bitsyerrors.KindVersion, "%q is missing parts", s)
	}
	if len(parts) > 2 {
		return Version{}, bitsyerrors.Newf(bitsyerrors.KindVersion, "%q has extraneous parts", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil {
		return Version{}, bitsyerrors.Newf(bitsyerrors.KindVersion, "%q is not a valid major version", parts[0])
	}
	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil {
		return Version{}, bitsyerrors.Newf(bitsyerrors.KindVersion, "%q is not a valid minor version", parts[1])
	}

	return Version{Major: uint8(major), Minor: uint8(minor)}, nil
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// RoomFormat is how the tile grid of a room is written.
type RoomFormat int

const (
	// RoomFormatContiguous writes one character per tile with nothing between
	// them, so only single-character tile IDs can be used.
	RoomFormatContiguous RoomFormat = iota

	// RoomFormatCommaSeparated writes tiles separated by commas.
	RoomFormatCommaSeparated
)

// ParseRoomFormat parses the argument of a ROOM_FORMAT line.
func ParseRoomFormat(s string) (RoomFormat, error) {
	switch s {
	case "0":
		return RoomFormatContiguous, nil
	case "1":
		return RoomFormatCommaSeparated, nil
	default:
		return RoomFormatContiguous, bitsyerrors.Newf(bitsyerrors.KindRoom, "unknown room format %q", s)
	}
}

func (rf RoomFormat) String() string {
	if rf == RoomFormatCommaSeparated {
		return "1"
	}
	return "0"
}

// RoomType is the tag that rooms are written with. Very old games used SET.
type RoomType int

const (
	RoomTypeRoom RoomType = iota
	RoomTypeSet
)

func (rt RoomType) String() string {
	if rt == RoomTypeSet {
		return "SET"
	}
	return "ROOM"
}
