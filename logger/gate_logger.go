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
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// gateLogger is the implementation for logrus.
type gateLogger struct {
	// name is the name of logger that is published to log as a scope
	name string
	// logger is the instance of logrus logger
	logger *logrus.Entry
}

func newGateLogger(name string) *gateLogger {
	newLogger := logrus.New()
	newLogger.SetOutput(os.Stdout)

	gl := &gateLogger{
		name: name,
		logger: newLogger.WithFields(logrus.Fields{
			logFieldScope: name,
			logFieldType:  LogTypeLog,
		}),
	}

	gl.EnableJSONOutput(defaultJSONOutput)
	gl.SetOutputLevel(toLogLevel(defaultOutputLevel))

	return gl
}

// EnableJSONOutput enables JSON formatted output log.
func (l *gateLogger) EnableJSONOutput(enabled bool) {
	var formatter logrus.Formatter

	fieldMap := logrus.FieldMap{
		logrus.FieldKeyTime:  logFieldTimeStamp,
		logrus.FieldKeyLevel: logFieldLevel,
		logrus.FieldKeyMsg:   logFieldMessage,
	}

	hostname, _ := os.Hostname()
	l.logger.Data[logFieldInstance] = hostname

	if enabled {
		formatter = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap:        fieldMap,
		}
	} else {
		formatter = &logrus.TextFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap:        fieldMap,
		}
	}

	l.logger.Logger.SetFormatter(formatter)
}

// toLogrusLevel maps the six levels onto logrus.
// Critical is logged at logrus' fatal level through Log, which never exits.
func toLogrusLevel(lvl LogLevel) logrus.Level {
	switch lvl {
	case CriticalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case DebugLevel:
		return logrus.DebugLevel
	case VerboseLevel:
		return logrus.TraceLevel
	default:
		return logrus.InfoLevel
	}
}

// SetOutputLevel sets log output level.
func (l *gateLogger) SetOutputLevel(outputLevel LogLevel) {
	l.logger.Logger.SetLevel(toLogrusLevel(outputLevel))
}

// SetOutput sets the destination for the logs.
func (l *gateLogger) SetOutput(dst io.Writer) {
	l.logger.Logger.SetOutput(dst)
}

// IsOutputLevelEnabled returns true if the logger will output this LogLevel.
func (l *gateLogger) IsOutputLevelEnabled(level LogLevel) bool {
	return l.logger.Logger.IsLevelEnabled(toLogrusLevel(level))
}

// WithFields returns a logger with the added structured fields.
func (l *gateLogger) WithFields(fields map[string]any) Logger {
	return &gateLogger{
		name:   l.name,
		logger: l.logger.WithFields(fields),
	}
}

// WithError returns a logger with err attached under the "error" field.
func (l *gateLogger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return &gateLogger{
		name:   l.name,
		logger: l.logger.WithField(logFieldError, err.Error()),
	}
}

// Critical logs a message at level Critical.
func (l *gateLogger) Critical(args ...any) {
	l.logger.Log(logrus.FatalLevel, args...)
}

// Criticalf logs a message at level Critical.
func (l *gateLogger) Criticalf(format string, args ...any) {
	l.logger.Logf(logrus.FatalLevel, format, args...)
}

// Error logs a message at level Error.
func (l *gateLogger) Error(args ...any) {
	l.logger.Log(logrus.ErrorLevel, args...)
}

// Errorf logs a message at level Error.
func (l *gateLogger) Errorf(format string, args ...any) {
	l.logger.Logf(logrus.ErrorLevel, format, args...)
}

// Warn logs a message at level Warn.
func (l *gateLogger) Warn(args ...any) {
	l.logger.Log(logrus.WarnLevel, args...)
}

// Warnf logs a message at level Warn.
func (l *gateLogger) Warnf(format string, args ...any) {
	l.logger.Logf(logrus.WarnLevel, format, args...)
}

// Info logs a message at level Info.
func (l *gateLogger) Info(args ...any) {
	l.logger.Log(logrus.InfoLevel, args...)
}

// Infof logs a message at level Info.
func (l *gateLogger) Infof(format string, args ...any) {
	l.logger.Logf(logrus.InfoLevel, format, args...)
}

// Debug logs a message at level Debug.
func (l *gateLogger) Debug(args ...any) {
	l.logger.Log(logrus.DebugLevel, args...)
}

// Debugf logs a message at level Debug.
func (l *gateLogger) Debugf(format string, args ...any) {
	l.logger.Logf(logrus.DebugLevel, format, args...)
}

// Verbose logs a message at level Verbose.
func (l *gateLogger) Verbose(args ...any) {
	l.logger.Log(logrus.TraceLevel, args...)
}

// Verbosef logs a message at level Verbose.
func (l *gateLogger) Verbosef(format string, args ...any) {
	l.logger.Logf(logrus.TraceLevel, format, args...)
}
