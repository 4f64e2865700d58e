// file: logger/logger.go

package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared application logger. It must be initialized with Init()
// before use; every package logs through this instance so output stays uniform.
var Log *logrus.Logger

// Init configures the global logger with a JSON formatter for structured output.
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)
	Log.SetFormatter(&logrus.JSONFormatter{})
	Log.SetLevel(logrus.InfoLevel)
}
