package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options select level, format and destination
// Empty Level and Format fall back to LOG_LEVEL and LOG_FORMAT, then to info/text
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// New builds a configured logrus logger
func New(opts Options) *logrus.Logger {
	log := logrus.New()

	// 1. Level: explicit option, then environment, then info
	logLevel := opts.Level
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// 2. Formatter: "json" for machine collection, text otherwise
	logFormat := opts.Format
	if logFormat == "" {
		logFormat = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(logFormat) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	// 3. Output: the terminal belongs to the game, so the default is to discard
	out := opts.Output
	if out == nil {
		out = io.Discard
	}
	log.SetOutput(out)

	return log
}

// Component returns an entry tagged with the component name
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
