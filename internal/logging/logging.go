// Package logging builds the loggers used by the bitsy command-line tools.
package logging

import (
	"io"

	"github.com/dekarrin/bitsy/internal/bitsyerrors"
	"github.com/dekarrin/bitsy/internal/config"
	"github.com/sirupsen/logrus"
)

// New creates a logger that writes to out at the level and in the format given
// in cfg. cfg must already be valid.
func New(cfg config.Log, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	format, err := config.ParseLogFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	if format == config.LogFormatJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	log.SetOutput(out)

	return log, nil
}

// Diagnostics logs each of diags at warn level, tagged with the file it came
// from and the kind of problem it is.
func Diagnostics(log logrus.FieldLogger, file string, diags []error) {
	for _, d := range diags {
		fields := logrus.Fields{"file": file}
		if kind, ok := bitsyerrors.KindOf(d); ok {
			fields["kind"] = kind.String()
		}
		log.WithFields(fields).Warn(d.Error())
	}
}
