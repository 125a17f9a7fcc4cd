package game

import (
	"fmt"
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
)

// Transition is the effect shown when the avatar passes through an exit.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionFadeToWhite
	TransitionFadeToBlack
	TransitionWave
	TransitionTunnel
	TransitionSlideUp
	TransitionSlideDown
	TransitionSlideLeft
	TransitionSlideRight
)

var transitionTokens = map[Transition]string{
	TransitionFadeToWhite: "fade_w",
	TransitionFadeToBlack: "fade_b",
	TransitionWave:        "wave",
	TransitionTunnel:      "tunnel",
	TransitionSlideUp:     "slide_u",
	TransitionSlideDown:   "slide_d",
	TransitionSlideLeft:   "slide_l",
	TransitionSlideRight:  "slide_r",
}

// ParseTransition parses the argument of an FX clause.
func ParseTransition(s string) (Transition, error) {
	for t, tok := range transitionTokens {
		if tok == s {
			return t, nil
		}
	}
	return TransitionNone, bitsyerrors.Newf(bitsyerrors.KindTransition, "unknown transition %q", s)
}

// String returns the token the transition is written as. TransitionNone is
// never written and gives the empty string.
func (t Transition) String() string {
	return transitionTokens[t]
}

// Exit is the destination of an exit.
type Exit struct {
	RoomID   string
	Position Position
}

// ExitInstance is an exit placed in a room.
type ExitInstance struct {
	Position   Position
	Exit       Exit
	Transition Transition

	// DialogueID is the dialogue shown when the exit is used, if any.
	DialogueID *string
}

// Copy returns a deeply-copied ExitInstance.
func (ext ExitInstance) Copy() ExitInstance {
	eCopy := ext
	eCopy.DialogueID = copyOptional(ext.DialogueID)
	return eCopy
}

// parseExitInstance parses the part of an EXT line after the tag, which is
// "x,y room x,y" optionally followed by "FX transition" and "DLG id" pairs.
func parseExitInstance(s string) (ExitInstance, error) {
	parts := strings.Split(s, " ")
	if len(parts) < 3 {
		return ExitInstance{}, bitsyerrors.Newf(bitsyerrors.KindExit, "%q does not have a position, room and destination", s)
	}

	var ext ExitInstance
	var err error

	ext.Position, err = ParsePosition(parts[0])
	if err != nil {
		return ExitInstance{}, bitsyerrors.Wrap(err, bitsyerrors.KindExit, "position")
	}
	ext.Exit.RoomID = parts[1]
	ext.Exit.Position, err = ParsePosition(parts[2])
	if err != nil {
		return ExitInstance{}, bitsyerrors.Wrap(err, bitsyerrors.KindExit, "destination")
	}

	// a trailing key with no value is ignored
	for i := 3; i+1 < len(parts); i += 2 {
		switch parts[i] {
		case "FX":
			ext.Transition, err = ParseTransition(parts[i+1])
			if err != nil {
				return ExitInstance{}, err
			}
		case "DLG":
			dlg := parts[i+1]
			ext.DialogueID = &dlg
		}
	}

	return ext, nil
}

func (ext ExitInstance) String() string {
	s := fmt.Sprintf("%s %s %s", ext.Position, ext.Exit.RoomID, ext.Exit.Position)
	if ext.Transition != TransitionNone {
		s += " FX " + ext.Transition.String()
	}
	if ext.DialogueID != nil {
		s += " DLG " + *ext.DialogueID
	}
	return s
}
