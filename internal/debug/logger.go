package debug

import (
	"fmt"
	"io"

	"gopkg.in/natefinch/lumberjack.v2"
)

var writer io.Writer = io.Discard

// SetOutput sets the debug output destination
func SetOutput(w io.Writer) {
	writer = w
}

// SetFile directs debug output to a rotating log file.
func SetFile(path string) {
	writer = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    16, // MB
		MaxBackups: 2,
		Compress:   true,
	}
}

// Log writes a debug message
func Log(format string, args ...interface{}) {
	fmt.Fprintf(writer, format+"\n", args...)
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return writer != io.Discard
}
