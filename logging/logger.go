package logging

import (
	"github.com/phuslu/log"
)

// CreateDebugLogger returns a console logger at debug level.
func CreateDebugLogger() *log.Logger {
	return &log.Logger{
		Level:  log.DebugLevel,
		Caller: 0,
		Writer: &log.ConsoleWriter{
			ColorOutput:    false,
			EndWithMessage: true,
		},
	}
}

// CreateInfoLogger returns a console logger at info level.
func CreateInfoLogger() *log.Logger {
	return &log.Logger{
		Level:  log.InfoLevel,
		Caller: 0,
		Writer: &log.ConsoleWriter{
			ColorOutput:    false,
			EndWithMessage: true,
		},
	}
}
