// Package log wraps logrus with the settings exposed on the command line.
package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Fields is an alias so callers do not need to import logrus.
type Fields = logrus.Fields

// Setup configures output, format and level. An unknown level falls back to info.
func Setup(level string, json bool, out io.Writer) {
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)

	if json {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

func WithFields(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func Debugf(format string, args ...interface{}) {
	logrus.Debugf(format, args...)
}
func Infof(format string, args ...interface{}) {
	logrus.Infof(format, args...)
}
func Warnf(format string, args ...interface{}) {
	logrus.Warnf(format, args...)
}
func Errorf(format string, args ...interface{}) {
	logrus.Errorf(format, args...)
}
func Fatal(args ...interface{}) {
	logrus.Fatal(args...)
}
