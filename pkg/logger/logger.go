// Package logger configures the process-wide logrus logger. Log output goes
// to stderr so that stdout stays reserved for command reports.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls log output.
type Config struct {
	Level      string // debug, info, warn, error, trace
	OutputFile string // optional log file; empty means stderr only
	MaxSize    int    // max size of a log file in MB
	MaxBackups int    // number of rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool   // compress rotated files
}

// LevelForVerbosity maps the -v occurrence count to a log level name.
func LevelForVerbosity(verbosity int) string {
	switch verbosity {
	case 0:
		return "warn"
	case 1:
		return "info"
	case 2:
		return "debug"
	default:
		return "trace"
	}
}

// Init initializes the global logrus logger.
func Init(config Config) error {
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	var writers []io.Writer
	writers = append(writers, os.Stderr)

	if config.OutputFile != "" {
		logDir := filepath.Dir(config.OutputFile)
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		})
	}

	logrus.SetOutput(io.MultiWriter(writers...))
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})
	return nil
}
