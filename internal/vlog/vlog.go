// Package vlog is a small leveled logger: four fixed levels, print-style
// formatting, one process-wide threshold set once at startup.
//
// Grounded on github.com/azaryc2s-bch_hmmmtsp's log.go (package-level
// *log.Logger per level, an int threshold, and a Log(level, format, args)
// entry point), generalized from that package's hardcoded four levels to
// named constants and given its own package instead of living inside the
// domain package.
package vlog

import (
	"log"
	"os"
)

// Level is a logging verbosity threshold; higher values are more verbose.
type Level int

// Levels, ordered least to most verbose (spec §A.1).
const (
	LevelError Level = iota + 1
	LevelInfo
	LevelDebug
	LevelSpam
)

var (
	loggers = map[Level]*log.Logger{
		LevelError: log.New(os.Stderr, "ERROR ", log.Ldate|log.Ltime),
		LevelInfo:  log.New(os.Stderr, "INFO  ", log.Ldate|log.Ltime),
		LevelDebug: log.New(os.Stderr, "DEBUG ", log.Ldate|log.Ltime),
		LevelSpam:  log.New(os.Stderr, "SPAM  ", log.Ldate|log.Ltime),
	}
	threshold = LevelInfo
)

// Init sets the process-wide verbosity threshold. Messages logged at a
// level above threshold are dropped.
func Init(level Level) {
	threshold = level
}

// Log writes a formatted message at msgLevel if msgLevel <= the configured
// threshold.
func Log(msgLevel Level, format string, args ...interface{}) {
	if msgLevel > threshold {
		return
	}
	logger, ok := loggers[msgLevel]
	if !ok {
		return
	}
	logger.Printf(format, args...)
}
