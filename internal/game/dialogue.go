package game

import (
	"strings"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/util"
)

// Dialogue is a block of text shown to the player. Contents is kept verbatim,
// including any script markup and the triple quotes around multi-line text.
type Dialogue struct {
	ID       string
	Contents string
	Name     *string
}

// Copy returns a deeply-copied Dialogue.
func (dlg Dialogue) Copy() Dialogue {
	return Dialogue{
		ID:       dlg.ID,
		Contents: dlg.Contents,
		Name:     copyOptional(dlg.Name),
	}
}

// ParseDialogue parses a DLG block. Only a NAME line at the very end names
// the dialogue; one anywhere else is part of the text.
func ParseDialogue(s string) (Dialogue, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "DLG ") {
		return Dialogue{}, bitsyerrors.New(bitsyerrors.KindDialogue, "missing DLG line")
	}

	dlg := Dialogue{ID: tagValue(lines[0], "DLG")}

	last := lines[len(lines)-1]
	if len(lines) > 1 && strings.HasPrefix(last, "NAME ") {
		dlg.Name = strPtr(tagValue(last, "NAME"))
		lines = lines[:len(lines)-1]
	}
	dlg.Contents = strings.Join(lines[1:], "\n")

	return dlg, nil
}

func (dlg Dialogue) String() string {
	return "DLG " + dlg.ID + "\n" + dlg.Contents + optionalLine("NAME", dlg.Name)
}

// Ending is the text shown when the game ends.
type Ending struct {
	ID       string
	Dialogue string
}

// Copy returns a copy of the Ending.
func (end Ending) Copy() Ending {
	return end
}

// ParseEnding parses an END block.
func ParseEnding(s string) (Ending, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "END ") {
		return Ending{}, bitsyerrors.New(bitsyerrors.KindEnding, "missing END line")
	}

	return Ending{
		ID:       tagValue(lines[0], "END"),
		Dialogue: strings.Join(lines[1:], "\n"),
	}, nil
}

func (end Ending) String() string {
	return "END " + end.ID + "\n" + end.Dialogue
}

// Variable is a value that dialogue scripts can read and change.
type Variable struct {
	ID           string
	InitialValue string
}

// Copy returns a copy of the Variable.
func (v Variable) Copy() Variable {
	return v
}

// ParseVariable parses a VAR block. Every line after the first is part of the
// initial value; they are joined with nothing between them.
func ParseVariable(s string) (Variable, error) {
	lines := util.Lines(s)
	if len(lines) < 1 || !strings.HasPrefix(lines[0], "VAR ") {
		return Variable{}, bitsyerrors.New(bitsyerrors.KindVariable, "missing VAR line")
	}

	return Variable{
		ID:           tagValue(lines[0], "VAR"),
		InitialValue: strings.Join(lines[1:], ""),
	}, nil
}

func (v Variable) String() string {
	return "VAR " + v.ID + "\n" + v.InitialValue
}
