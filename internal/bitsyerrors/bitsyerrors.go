// Package bitsyerrors contains the error types produced while reading Bitsy
// game data. Almost all of them are non-fatal: they describe a single entity
// that could not be understood and are collected as diagnostics alongside the
// rest of the parsed game.
package bitsyerrors

import (
	"errors"
	"fmt"
)

// Kind is the kind of game data that an error was raised for.
type Kind int

const (
	KindColour Kind = iota
	KindDialogue
	KindEnding
	KindExit
	KindFont
	KindGame
	KindImage
	KindItem
	KindPalette
	KindPosition
	KindRoom
	KindSprite
	KindText
	KindTile
	KindTransition
	KindVariable
	KindVersion
)

func (k Kind) String() string {
	switch k {
	case KindColour:
		return "color error"
	case KindDialogue:
		return "dialog error"
	case KindEnding:
		return "ending error"
	case KindExit:
		return "exit error"
	case KindFont:
		return "font error"
	case KindGame:
		return "game error"
	case KindImage:
		return "image error"
	case KindItem:
		return "item error"
	case KindPalette:
		return "palette error"
	case KindPosition:
		return "position error"
	case KindRoom:
		return "room error"
	case KindSprite:
		return "sprite error"
	case KindText:
		return "text error"
	case KindTile:
		return "tile error"
	case KindTransition:
		return "transition error"
	case KindVariable:
		return "variable error"
	case KindVersion:
		return "version error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// NotFound is the thing that was expected to be present in game data but was
// not.
type NotFound int

const (
	NotFoundNone NotFound = iota
	NotFoundAnything
	NotFoundAvatar
	NotFoundRoom
	NotFoundSprite
	NotFoundTile
)

func (nf NotFound) String() string {
	switch nf {
	case NotFoundNone:
		return "nothing missing"
	case NotFoundAnything:
		return "file is empty"
	case NotFoundAvatar:
		return "avatar not found"
	case NotFoundRoom:
		return "room not found"
	case NotFoundSprite:
		return "sprite not found"
	case NotFoundTile:
		return "tile not found"
	default:
		return fmt.Sprintf("NotFound(%d)", int(nf))
	}
}

// ErrEmpty is returned when there is nothing at all to parse. It is the only
// error that stops a parse.
var ErrEmpty = Missing(NotFoundAnything)

// dataError is an error caused by game data that could not be understood. It
// records which kind of entity was being read so callers can decide whether
// it should be displayed as a warning or treated as fatal.
type dataError struct {
	kind    Kind
	missing NotFound
	detail  string
	wrap    error
}

func (e *dataError) Error() string {
	msg := e.kind.String()
	if e.kind == KindGame {
		msg = e.missing.String()
	}
	if e.detail != "" {
		msg += ": " + e.detail
	}
	if e.wrap != nil {
		msg += ": " + e.wrap.Error()
	}
	return msg
}

// Unwrap gives the error that the dataError wraps, if it wraps one.
func (e *dataError) Unwrap() error {
	return e.wrap
}

// New returns a new error of the given kind with an optional detail message.
func New(kind Kind, detail string) error {
	return &dataError{kind: kind, detail: detail}
}

// Newf returns a new error of the given kind whose detail message is built
// from the format string and its arguments.
func Newf(kind Kind, format string, a ...interface{}) error {
	return New(kind, fmt.Sprintf(format, a...))
}

// Wrap returns a new error of the given kind that wraps e.
func Wrap(e error, kind Kind, detail string) error {
	return &dataError{kind: kind, detail: detail, wrap: e}
}

// Wrapf returns a new error of the given kind that wraps e and has a detail
// message built from the format string and its arguments.
func Wrapf(e error, kind Kind, format string, a ...interface{}) error {
	return Wrap(e, kind, fmt.Sprintf(format, a...))
}

// Missing returns a game error reporting that the given thing could not be
// found.
func Missing(nf NotFound) error {
	return &dataError{kind: KindGame, missing: nf}
}

// KindOf returns the kind of the outermost data error in err's chain. If
// there is none, ok is false.
func KindOf(err error) (kind Kind, ok bool) {
	var de *dataError
	if errors.As(err, &de) {
		return de.kind, true
	}
	return 0, false
}

// MissingOf returns what the outermost game error in err's chain reports as
// missing. If err does not report a missing thing, NotFoundNone is returned.
func MissingOf(err error) NotFound {
	var de *dataError
	if errors.As(err, &de) && de.kind == KindGame {
		return de.missing
	}
	return NotFoundNone
}

// IsKind returns whether any error in err's chain is a data error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if de, ok := err.(*dataError); ok && de.kind == kind {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
