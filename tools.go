// Package bitsy reads, writes, merges and cleans up Bitsy game data files.
//
// The game model itself lives in an internal package; the types needed to work
// with it are aliased here. Tools wraps the model with the logging, reporting
// and strictness handling shared by the bitsy command-line programs.
package bitsy

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/bitsy/internal/config"
	"github.com/dekarrin/bitsy/internal/game"
	"github.com/dekarrin/bitsy/internal/logging"
	"github.com/dekarrin/bitsy/internal/util"
	"github.com/sirupsen/logrus"
)

// ErrStrict is returned by Tools operations in strict mode when a game has
// any diagnostics.
var ErrStrict = errors.New("game has problems and strict mode is on")

// Tools runs bitsy operations on game files, logging what it does and writing
// reports to an output stream.
type Tools struct {
	cfg config.Config
	log *logrus.Logger
	out io.Writer
}

// New creates a new Tools that writes reports to outputStream and logs to
// logStream. If nil is given for outputStream, stdout is used; if nil is given
// for logStream, stderr is used. cfg is validated before use.
func New(cfg config.Config, outputStream, logStream io.Writer) (*Tools, error) {
	if outputStream == nil {
		outputStream = os.Stdout
	}
	if logStream == nil {
		logStream = os.Stderr
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log, err := logging.New(cfg.Log, logStream)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	return &Tools{cfg: cfg, log: log, out: outputStream}, nil
}

// Logger returns the logger that t writes to.
func (t *Tools) Logger() *logrus.Logger {
	return t.log
}

// Strict returns whether t treats problems in a game as failures.
func (t *Tools) Strict() bool {
	return t.cfg.Output.Strict
}

// Load reads the game at path and logs any diagnostics found while parsing it.
// In strict mode, a game with diagnostics is an error that wraps ErrStrict.
func (t *Tools) Load(path string) (*Game, []error, error) {
	t.log.WithField("file", path).Debug("loading game")

	g, diags, err := game.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	logging.Diagnostics(t.log, path, diags)

	if t.cfg.Output.Strict && len(diags) > 0 {
		return g, diags, fmt.Errorf("%s: %w (%d found)", path, ErrStrict, len(diags))
	}

	t.log.WithFields(logrus.Fields{
		"file":        path,
		"rooms":       len(g.Rooms),
		"tiles":       len(g.Tiles),
		"diagnostics": len(diags),
	}).Info("loaded game")

	return g, diags, nil
}

func (t *Tools) save(path string, g *Game) error {
	if err := game.SaveFile(path, g); err != nil {
		return err
	}
	t.log.WithField("file", path).Info("wrote game")
	return nil
}

// Parse reads the game at inPath and writes it back out in its canonical form
// to outPath.
func (t *Tools) Parse(inPath, outPath string) error {
	g, _, err := t.Load(inPath)
	if err != nil {
		return err
	}

	return t.save(outPath, g)
}

// Merge reads the game at mainPath and merges every game in additionalPaths
// into it, in order, then writes the result to outPath.
func (t *Tools) Merge(mainPath string, additionalPaths []string, outPath string) error {
	if len(additionalPaths) < 1 {
		return fmt.Errorf("no additional games given")
	}

	g, _, err := t.Load(mainPath)
	if err != nil {
		return err
	}

	for _, p := range additionalPaths {
		source, _, err := t.Load(p)
		if err != nil {
			return err
		}

		rm := g.Merge(source)
		t.log.WithFields(logrus.Fields{
			"file":      p,
			"rooms":     len(rm.Rooms),
			"tiles":     len(rm.Tiles),
			"sprites":   len(rm.Sprites),
			"items":     len(rm.Items),
			"dialogues": len(rm.Dialogues),
		}).Info("merged game; counts are of renamed IDs")
	}

	return t.save(outPath, g)
}

// Dedupe reads the game at inPath, removes duplicate tiles from it, and writes
// the result to outPath.
func (t *Tools) Dedupe(inPath, outPath string) error {
	g, _, err := t.Load(inPath)
	if err != nil {
		return err
	}

	changes := g.DedupeTiles()
	for _, oldID := range util.OrderedKeys(changes) {
		t.log.WithFields(logrus.Fields{
			"tile":        oldID,
			"replacement": changes[oldID],
		}).Debug("removed duplicate tile")
	}
	t.log.WithField("removed", len(changes)).Info("deduplicated tiles")

	return t.save(outPath, g)
}

// Validate reads the game at path and writes a report on it to the output
// stream. The returned bool is whether the game is free of problems. Problems
// in the game do not cause a non-nil error, even in strict mode; only failing
// to read it at all does.
func (t *Tools) Validate(path string) (bool, error) {
	g, diags, err := game.LoadFile(path)
	if err != nil {
		return false, err
	}
	logging.Diagnostics(t.log, path, diags)

	width := t.cfg.Output.Width

	var sb strings.Builder
	sb.WriteString(g.Summary(width))
	sb.WriteString("\n\n")

	if len(g.Rooms) > 0 {
		sb.WriteString(g.ListRooms(width))
		sb.WriteString("\n\n")
	}

	ok := len(diags) == 0
	if ok {
		sb.WriteString("OK!\n")
	} else {
		sb.WriteString(game.DiagnosticsTable(diags, width))
		sb.WriteRune('\n')
	}

	if _, err := io.WriteString(t.out, sb.String()); err != nil {
		return ok, fmt.Errorf("could not write output: %w", err)
	}

	return ok, nil
}
