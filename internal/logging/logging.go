// Package logging provides leveled loggers that write to stderr.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var levelNames = map[Level]string{
	LevelDebug:   "debug",
	LevelInfo:    "info",
	LevelWarning: "warning",
	LevelError:   "error",
	LevelNone:    "none",
}

func (l Level) String() string {
	name, ok := levelNames[l]
	if !ok {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return name
}

// ParseLevel returns the level for one of the names
// "debug", "info", "warning", "error" or "none".
func ParseLevel(name string) (Level, error) {
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return LevelNone, fmt.Errorf("unknown log level %q", name)
}

var (
	debugLog   *log.Logger
	infoLog    *log.Logger
	warningLog *log.Logger
	errorLog   *log.Logger

	level Level
	out   io.Writer = os.Stderr
)

func init() {
	flags := log.Ldate | log.Ltime | log.LUTC
	debugLog = log.New(io.Discard, "D ", flags)
	infoLog = log.New(io.Discard, "I ", flags)
	warningLog = log.New(io.Discard, "W ", flags)
	errorLog = log.New(io.Discard, "E ", flags)

	SetLevel(LevelWarning)
}

// SetLevel enables all loggers at or above the given level.
func SetLevel(l Level) {
	level = l
	loggers := []*log.Logger{debugLog, infoLog, warningLog, errorLog}
	for i, logger := range loggers {
		if Level(i) >= l {
			logger.SetOutput(out)
		} else {
			logger.SetOutput(io.Discard)
		}
	}
}

// SetOutput redirects the enabled loggers to w (default is stderr).
func SetOutput(w io.Writer) {
	out = w
	SetLevel(level)
}

// Enabled tells whether messages at the given level are written.
func Enabled(l Level) bool {
	return l >= level && l != LevelNone
}

func Debug(msg string, v ...interface{}) {
	debugLog.Printf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	infoLog.Printf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	warningLog.Printf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	errorLog.Printf(msg, v...)
}
