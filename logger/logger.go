/*
Copyright 2026 The EventGate Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package logger

import (
	"io"
	"strings"
	"sync"
)

const (
	// LogTypeLog is normal log type.
	LogTypeLog = "log"

	// Field names that defines log type, scope and instance.
	logFieldTimeStamp = "time"
	logFieldLevel     = "level"
	logFieldType      = "type"
	logFieldScope     = "scope"
	logFieldMessage   = "msg"
	logFieldInstance  = "instance"
	logFieldError     = "error"
)

// LogLevel is the log severity. There are six levels, from most to least severe.
type LogLevel string

const (
	// CriticalLevel is for failures that leave a component unable to continue.
	// Unlike a fatal log, a critical log never terminates the process.
	CriticalLevel LogLevel = "critical"

	// ErrorLevel is for errors that should definitely be noted.
	ErrorLevel LogLevel = "error"

	// WarnLevel is for non-critical entries that deserve eyes.
	WarnLevel LogLevel = "warn"

	// InfoLevel is for general operational entries about what's going on inside the application.
	InfoLevel LogLevel = "info"

	// DebugLevel is for state transitions useful when debugging.
	DebugLevel LogLevel = "debug"

	// VerboseLevel is for very chatty entries, such as every wake of a worker.
	VerboseLevel LogLevel = "verbose"

	// UndefinedLevel is for undefined log level.
	UndefinedLevel LogLevel = "undefined"
)

// globalLoggers is the collection of loggers that is shared globally.
var (
	globalLoggers     = map[string]Logger{}
	globalLoggersLock = sync.RWMutex{}
)

// Logger includes the logging api sets.
// Every method must be safe to call from any goroutine and must never panic.
type Logger interface {
	// EnableJSONOutput enables JSON formatted output log.
	EnableJSONOutput(enabled bool)

	// SetOutputLevel sets the log output level.
	SetOutputLevel(outputLevel LogLevel)

	// SetOutput sets the destination for the logs.
	SetOutput(dst io.Writer)

	// IsOutputLevelEnabled returns true if the logger will output this LogLevel.
	IsOutputLevelEnabled(level LogLevel) bool

	// WithFields returns a logger with the added structured fields.
	WithFields(fields map[string]any) Logger

	// WithError returns a logger that attaches err as the associated fault of every entry.
	WithError(err error) Logger

	// Critical logs a message at level Critical.
	Critical(args ...any)
	// Criticalf logs a message at level Critical.
	Criticalf(format string, args ...any)
	// Error logs a message at level Error.
	Error(args ...any)
	// Errorf logs a message at level Error.
	Errorf(format string, args ...any)
	// Warn logs a message at level Warn.
	Warn(args ...any)
	// Warnf logs a message at level Warn.
	Warnf(format string, args ...any)
	// Info logs a message at level Info.
	Info(args ...any)
	// Infof logs a message at level Info.
	Infof(format string, args ...any)
	// Debug logs a message at level Debug.
	Debug(args ...any)
	// Debugf logs a message at level Debug.
	Debugf(format string, args ...any)
	// Verbose logs a message at level Verbose.
	Verbose(args ...any)
	// Verbosef logs a message at level Verbose.
	Verbosef(format string, args ...any)
}

// toLogLevel converts to LogLevel.
func toLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "critical":
		return CriticalLevel
	case "error":
		return ErrorLevel
	case "warn", "warning":
		return WarnLevel
	case "info":
		return InfoLevel
	case "debug":
		return DebugLevel
	case "verbose", "trace":
		return VerboseLevel
	}

	return UndefinedLevel
}

// ParseLevel returns the LogLevel named by level, or UndefinedLevel.
func ParseLevel(level string) LogLevel {
	return toLogLevel(level)
}

// NewLogger creates new Logger instance.
func NewLogger(name string) Logger {
	globalLoggersLock.Lock()
	defer globalLoggersLock.Unlock()

	logger, ok := globalLoggers[name]
	if !ok {
		logger = newGateLogger(name)
		globalLoggers[name] = logger
	}

	return logger
}

func getLoggers() map[string]Logger {
	globalLoggersLock.RLock()
	defer globalLoggersLock.RUnlock()

	l := map[string]Logger{}
	for k, v := range globalLoggers {
		l[k] = v
	}

	return l
}
