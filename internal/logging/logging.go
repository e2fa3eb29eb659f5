// /internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the global zerolog logger: console output always, plus a
// rotating file when logFile is set.
func Setup(level, logFile string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	zerolog.TimeFieldFormat = time.RFC3339

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	var w io.Writer = console
	if logFile != "" {
		w = zerolog.MultiLevelWriter(console, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     14, // days
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}
