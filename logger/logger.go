// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init must run before any other package logs.
var Log = logrus.New()

// Init configures the shared logger with a JSON formatter on stdout.
// The level is read from LOG_LEVEL and defaults to info.
func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	SetLevel(os.Getenv("LOG_LEVEL"))
}

// SetLevel changes the level of the shared logger. Unknown levels fall back to info.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
}
