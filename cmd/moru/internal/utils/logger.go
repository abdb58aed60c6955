// Package utils provides utility functions for the Moru CLI.
//
// This file implements a debug logger that writes log messages to
// ~/.moru/debug.log for troubleshooting CLI operations and API retries.
package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var debugLogger *log.Logger

// InitLogger initializes the debug logger under ~/.moru
func InitLogger() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	return InitLoggerIn(filepath.Join(home, ".moru"))
}

// InitLoggerIn initializes the debug logger writing to logDir/debug.log
func InitLoggerIn(logDir string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logFile := filepath.Join(logDir, "debug.log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	SetOutput(file)
	debugLogger.Printf("=== Moru CLI Started ===")
	return nil
}

// SetOutput points the debug logger at w
func SetOutput(w io.Writer) {
	debugLogger = log.New(w, "", log.LstdFlags|log.Lshortfile)
}

// Logger returns the debug logger, or nil when it was never initialized
func Logger() *log.Logger {
	return debugLogger
}

// LogDebug logs a debug message
func LogDebug(format string, args ...interface{}) {
	if debugLogger != nil {
		debugLogger.Output(2, fmt.Sprintf(format, args...))
	}
}
