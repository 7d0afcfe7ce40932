package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const prefix = "[itemdeck] "

var (
	Logger  = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at <logDir>/debug.log. Until it is called
// everything is discarded, since the TUI owns stdout.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		Logger.Printf("Failed to open log file at %s: %v", logPath, err)
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, log.LstdFlags|log.Lshortfile)
	Logger.Printf("Logger initialized at: %s", logPath)
	return nil
}

// Close closes the log file and goes back to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
