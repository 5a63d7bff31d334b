// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide logrus logger.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/convert-hub/pkg/types"
)

// DefaultLevel is used when the configured level is empty or invalid.
const DefaultLevel = logrus.WarnLevel

// Init applies cfg to the standard logrus logger. The returned function
// closes the log file, if one was opened.
func Init(cfg types.LogConfig) func() {
	logrus.SetLevel(ParseLevel(cfg.Level))

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	out, closeFn := openOutput(cfg.Output)
	logrus.SetOutput(out)
	return closeFn
}

// ParseLevel converts a level name, falling back to DefaultLevel.
func ParseLevel(name string) logrus.Level {
	if strings.TrimSpace(name) == "" {
		return DefaultLevel
	}
	level, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		logrus.Warnf("Invalid log level '%s', using '%s' instead", name, DefaultLevel)
		return DefaultLevel
	}
	return level
}

func openOutput(dest string) (io.Writer, func()) {
	switch strings.ToLower(dest) {
	case "", "stderr":
		return os.Stderr, func() {}
	case "stdout":
		return os.Stdout, func() {}
	}
	file, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Warnf("Failed to open log file '%s', using stderr instead. Error: %v", dest, err)
		return os.Stderr, func() {}
	}
	return file, func() { file.Close() }
}
