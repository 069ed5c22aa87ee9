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

package gatedqueue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kclock "k8s.io/utils/clock"

	"github.com/eventgate/kit/logger"
	"github.com/eventgate/kit/retry"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{
		DefaultPriority: Priority(42),
		DefaultLifespan: -time.Second,
	}
	opts.setDefaults()

	assert.NotNil(t, opts.Logger)
	assert.IsType(t, kclock.RealClock{}, opts.Clock)
	assert.Equal(t, PriorityNormal, opts.DefaultPriority)
	assert.Equal(t, time.Duration(0), opts.DefaultLifespan)
}

func TestOptionsFromProperties(t *testing.T) {
	t.Run("empty properties", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		opts, err := OptionsFromProperties(map[string]string{})
		require.NoError(t, err)
		assert.Nil(t, opts.Logger)
		assert.Equal(t, Priority(0), opts.DefaultPriority)
		assert.Equal(t, time.Duration(0), opts.DefaultLifespan)
		assert.Equal(t, retry.DefaultConfig(), opts.Retry)
	})

	t.Run("retry properties", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		opts, err := OptionsFromProperties(map[string]string{
			"defaultPriority":         "low",
			"backOffPolicy":           "exponential",
			"backOffInitialInterval":  "250",
			"backOffMaxInterval":      "10s",
			"backOffMaxRetries":       "5",
			"backOffDuration":         "2s",
			"unrelatedBackOffSetting": "ignored",
		})
		require.NoError(t, err)
		assert.Equal(t, PriorityLow, opts.DefaultPriority)

		want := retry.DefaultConfig()
		want.Policy = retry.PolicyExponential
		want.InitialInterval = 250 * time.Millisecond
		want.MaxInterval = 10 * time.Second
		want.MaxRetries = 5
		want.Duration = 2 * time.Second
		assert.Equal(t, want, opts.Retry)
	})

	t.Run("all properties", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		opts, err := OptionsFromProperties(map[string]string{
			"defaultPriority": "High",
			"defaultLifespan": "1m30s",
		})
		require.NoError(t, err)
		assert.Equal(t, PriorityHigh, opts.DefaultPriority)
		assert.Equal(t, 90*time.Second, opts.DefaultLifespan)
	})

	t.Run("case-insensitive keys", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		opts, err := OptionsFromProperties(map[string]string{
			"DEFAULTPRIORITY": "critical",
			"defaultlifespan": "250",
		})
		require.NoError(t, err)
		assert.Equal(t, PriorityCritical, opts.DefaultPriority)
		assert.Equal(t, 250*time.Millisecond, opts.DefaultLifespan)
	})

	t.Run("lifespan from env", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "5s")

		opts, err := OptionsFromProperties(map[string]string{})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, opts.DefaultLifespan)
	})

	t.Run("properties take precedence over env", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "5s")

		opts, err := OptionsFromProperties(map[string]string{
			"defaultLifespan": "0",
		})
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), opts.DefaultLifespan)
	})

	t.Run("invalid env lifespan", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "48h")

		_, err := OptionsFromProperties(map[string]string{})
		require.ErrorContains(t, err, EnvDefaultLifespan)
	})

	t.Run("invalid values", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		tests := map[string]map[string]string{
			"priority":          {"defaultPriority": "urgent"},
			"lifespan":          {"defaultLifespan": "soon"},
			"negative lifespan": {"defaultLifespan": "-1s"},
			"lifespan too long": {"defaultLifespan": "25h"},
			"log level":         {"logLevel": "loud"},
			"retry policy":      {"backOffPolicy": "sometimes"},
			"retry max retries": {"backOffMaxRetries": "many"},
		}
		for name, props := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := OptionsFromProperties(props)
				require.Error(t, err)
			})
		}
	})

	t.Run("log level", func(t *testing.T) {
		t.Setenv(EnvDefaultLifespan, "")

		opts, err := OptionsFromProperties(map[string]string{
			"logLevel":  "debug",
			"logAsJSON": "true",
		})
		require.NoError(t, err)
		require.NotNil(t, opts.Logger)
		assert.Same(t, logger.NewLogger(LoggerName), opts.Logger)
		assert.True(t, opts.Logger.IsOutputLevelEnabled(logger.DebugLevel))
		assert.False(t, opts.Logger.IsOutputLevelEnabled(logger.VerboseLevel))
	})
}
