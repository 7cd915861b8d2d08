package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Minimal leveled logger shared by the service binaries.
// Level comes from LOG_LEVEL (debug|info|warn|error|fatal); output defaults to stdout.

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"debug", "info", "warn", "error", "fatal"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelFatal {
		return "info"
	}
	return levelNames[l]
}

var (
	mu     sync.RWMutex
	logger = log.New(os.Stdout, "", 0)
	level  = LevelInfo
	exit   = os.Exit
)

// ParseLevel maps a case-insensitive name to a Level. Unknown names map to Info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	}
	return LevelInfo
}

// Init sets the global log level. Call early during startup.
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	level = ParseLevel(l)
}

// SetOutput redirects log output and returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := logger
	logger = log.New(w, "", 0)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		logger = prev
	}
}

func emit(l Level, format string, v ...interface{}) {
	mu.RLock()
	out, threshold := logger, level
	mu.RUnlock()
	if l < threshold {
		return
	}
	header := fmt.Sprintf("%s [%s] ", time.Now().Format(time.RFC3339), strings.ToUpper(l.String()))
	out.Printf(header+format, v...)
}

func Debugf(format string, v ...interface{}) { emit(LevelDebug, format, v...) }
func Infof(format string, v ...interface{})  { emit(LevelInfo, format, v...) }
func Warnf(format string, v ...interface{})  { emit(LevelWarn, format, v...) }
func Errorf(format string, v ...interface{}) { emit(LevelError, format, v...) }

// Fatalf always logs, then exits with status 1.
func Fatalf(format string, v ...interface{}) {
	emit(LevelFatal, format, v...)
	exit(1)
}

func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	mu.RLock()
	defer mu.RUnlock()
	return level.String()
}
