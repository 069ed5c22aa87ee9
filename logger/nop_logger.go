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
)

// NewNopLogger returns a Logger that discards everything.
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (n *nopLogger) EnableJSONOutput(enabled bool) {}

func (n *nopLogger) SetOutputLevel(outputLevel LogLevel) {}

func (n *nopLogger) SetOutput(dst io.Writer) {}

func (n *nopLogger) IsOutputLevelEnabled(level LogLevel) bool { return false }

func (n *nopLogger) WithFields(fields map[string]any) Logger { return n }

func (n *nopLogger) WithError(err error) Logger { return n }

func (n *nopLogger) Critical(args ...any) {}

func (n *nopLogger) Criticalf(format string, args ...any) {}

func (n *nopLogger) Error(args ...any) {}

func (n *nopLogger) Errorf(format string, args ...any) {}

func (n *nopLogger) Warn(args ...any) {}

func (n *nopLogger) Warnf(format string, args ...any) {}

func (n *nopLogger) Info(args ...any) {}

func (n *nopLogger) Infof(format string, args ...any) {}

func (n *nopLogger) Debug(args ...any) {}

func (n *nopLogger) Debugf(format string, args ...any) {}

func (n *nopLogger) Verbose(args ...any) {}

func (n *nopLogger) Verbosef(format string, args ...any) {}
