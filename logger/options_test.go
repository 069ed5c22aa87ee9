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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	t.Run("default options", func(t *testing.T) {
		o := DefaultOptions()
		assert.False(t, o.JSONFormatEnabled)
		assert.Equal(t, "info", o.OutputLevel)
	})

	t.Run("set valid and invalid output level", func(t *testing.T) {
		o := DefaultOptions()
		require.NoError(t, o.SetOutputLevel("verbose"))
		assert.Equal(t, "verbose", o.OutputLevel)

		require.Error(t, o.SetOutputLevel("loud"))
		assert.Equal(t, "verbose", o.OutputLevel)
	})

	t.Run("attaching log related cmd flags", func(t *testing.T) {
		o := DefaultOptions()

		logLevelAsserted := false
		testStringVarFn := func(p *string, name string, value string, usage string) {
			if name == "log-level" && value == defaultOutputLevel {
				logLevelAsserted = true
			}
		}

		logAsJSONAsserted := false
		testBoolVarFn := func(p *bool, name string, value bool, usage string) {
			if name == "log-as-json" && !value {
				logAsJSONAsserted = true
			}
		}

		o.AttachCmdFlags(testStringVarFn, testBoolVarFn)

		assert.True(t, logLevelAsserted)
		assert.True(t, logAsJSONAsserted)
	})
}

func TestApplyOptionsToLoggers(t *testing.T) {
	clearLoggers()
	l := NewLogger("eventgate.options")

	o := Options{JSONFormatEnabled: true, OutputLevel: "debug"}
	require.NoError(t, ApplyOptionsToLoggers(&o))
	assert.True(t, l.IsOutputLevelEnabled(DebugLevel))
	assert.False(t, l.IsOutputLevelEnabled(VerboseLevel))

	o.OutputLevel = "nope"
	require.Error(t, ApplyOptionsToLoggers(&o))
}
