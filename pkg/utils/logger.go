package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger for debug messages
var (
	logger    = newDiscardLogger()
	sessionID = uuid.New().String()
	logFile   *os.File
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Log prints debug messages to the log file if verbose mode is enabled
func Log(text string, args ...interface{}) {
	logger.WithField("session", sessionID).Debugf(text, args...)
}

// Logger returns a structured entry tagged with the current session id
func Logger() *logrus.Entry {
	return logger.WithField("session", sessionID)
}

// DefaultLogPath returns the dated log file location used when none is configured
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("supercli_%s.log", time.Now().Format("2006-01-02")))
}

// InitLogger initializes the logging system. Nothing is written unless verbose is set;
// the terminal belongs to the prompts, so entries only ever go to the log file.
func InitLogger(verbose bool, path string) error {
	CloseLogger()
	logger = newDiscardLogger()

	if !verbose {
		return nil
	}

	if path == "" {
		path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	logFile = f

	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})

	Logger().WithField("file", path).Info("Verbose logging enabled")
	return nil
}

// LogFile returns the path of the open log file, or "" when logging is disabled
func LogFile() string {
	if logFile != nil {
		return logFile.Name()
	}
	return ""
}

// CloseLogger closes the log file if it's open
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
