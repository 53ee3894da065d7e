package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Logger type is interface for available logging methods.
type Logger interface {
	Trace(...interface{})
	Debug(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Error(...interface{})
	Panic(...interface{})
	Fatal(...interface{})
}

// LoggerImpl is a struct that extends sirupsen/logrus.
type LoggerImpl struct {
	Logger         *log.Entry
	Service        string
	LogLevelStr    string
	PrintStackDump bool
	base           *log.Logger
	logFile        *os.File
}

// NewLogger will create a new logger implementation writing to stderr.
// An unknown level falls back to info.
func NewLogger(serviceName string, level string, stackDumpOnPanic bool) *LoggerImpl {
	base := log.New()
	logLevel, err := log.ParseLevel(level)
	if err != nil {
		logLevel = log.InfoLevel
	}
	base.SetLevel(logLevel)
	l := &LoggerImpl{
		Logger:         base.WithFields(log.Fields{"service": serviceName}),
		Service:        serviceName,
		LogLevelStr:    logLevel.String(),
		PrintStackDump: stackDumpOnPanic,
		base:           base,
	}
	l.SetOutput(os.Stderr)
	if err != nil {
		l.Warn("unknown log level ", level, ", using ", logLevel.String())
	}
	return l
}

// WithFields returns a copy of the logger that adds fields to every entry.
// The copy shares the output of its parent.
func (l *LoggerImpl) WithFields(fields map[string]interface{}) *LoggerImpl {
	c := *l
	c.Logger = l.Logger.WithFields(log.Fields(fields))
	return &c
}

// AddFileOutput duplicates all log output to the given file, creating its directory if needed.
// The file is appended to.
func (l *LoggerImpl) AddFileOutput(fileName string) error {
	if fileName == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(fileName), 0755); err != nil {
		return errors.Wrapf(err, "error creating log directory for %v", fileName)
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrapf(err, "error opening log file %v", fileName)
	}
	l.logFile = f
	l.setOutput(io.MultiWriter(os.Stderr, f), isTerminal(os.Stderr.Fd())) // format follows stderr
	return nil
}

// Close releases the log file if one was added.
func (l *LoggerImpl) Close() error {
	if l.logFile == nil {
		return nil
	}
	err := l.logFile.Close()
	l.logFile = nil
	l.SetOutput(os.Stderr)
	return err
}

// Trace log.
func (l *LoggerImpl) Trace(message ...interface{}) {
	l.Logger.Trace(message...)
}

// Debug log.
func (l *LoggerImpl) Debug(message ...interface{}) {
	l.Logger.Debug(message...)
}

// Info log.
func (l *LoggerImpl) Info(message ...interface{}) {
	l.Logger.Info(message...)
}

// Warn log.
func (l *LoggerImpl) Warn(message ...interface{}) {
	l.Logger.Warn(message...)
}

// Error (with stack trace in trace mode or if PrintStackDump is set).
func (l *LoggerImpl) Error(message ...interface{}) {
	if l.LogLevelStr == "trace" || l.PrintStackDump {
		l.Logger.WithField("stackTrace", fmt.Sprintf("%s", debug.Stack())).Error(message...)
	} else {
		l.Logger.Error(message...)
	}
}

// Panic (with stack trace in debug mode, or if user explicitly sets PrintStackDump).
func (l *LoggerImpl) Panic(message ...interface{}) {
	if l.LogLevelStr == "debug" || l.LogLevelStr == "trace" || l.PrintStackDump {
		l.Logger.WithField("stackTrace", fmt.Sprintf("%s", debug.Stack())).Panic(message...)
	} else {
		l.Logger.Panic(message...)
	}
}

// Fatal causes exit(1) after logging.
func (l *LoggerImpl) Fatal(message ...interface{}) {
	if l.LogLevelStr == "debug" || l.LogLevelStr == "trace" {
		l.Logger.WithField("stackTrace", fmt.Sprintf("%s", debug.Stack())).Fatal(message...)
	} else {
		l.Logger.Fatal(message...)
	}
}

// isTerminal is replaced by tests.
var isTerminal = isatty.IsTerminal

// SetOutput will set the log output to the Writer supplied.
// Interactive terminals get text output, anything else gets JSON.
func (l *LoggerImpl) SetOutput(writer io.Writer) {
	f, ok := writer.(*os.File)
	l.setOutput(writer, ok && isTerminal(f.Fd()))
}

func (l *LoggerImpl) setOutput(writer io.Writer, text bool) {
	l.base.SetOutput(writer)
	if text {
		l.base.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		l.base.SetFormatter(&log.JSONFormatter{})
	}
}
