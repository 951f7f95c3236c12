// Package logging builds the logrus logger shared by the command-line tools.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// TimestampFormat is the layout of the time field in every log line.
const TimestampFormat = "2006-01-02 15:04:05"

// New returns a text logger writing to w at the named level.
// Unknown level names fall back to info; the empty string means info.
func New(level string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})
	log.SetLevel(ParseLevel(level))
	return log
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to their
// logrus levels.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
