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
	"fmt"
	"time"

	kclock "k8s.io/utils/clock"

	"github.com/eventgate/kit/config"
	"github.com/eventgate/kit/env"
	"github.com/eventgate/kit/logger"
	"github.com/eventgate/kit/retry"
)

const (
	// LoggerName is the name of the logger returned by OptionsFromProperties.
	LoggerName = "gatedqueue"

	// EnvDefaultLifespan is the environment variable read when the properties don't set a default lifespan.
	EnvDefaultLifespan = "GATEDQUEUE_DEFAULT_LIFESPAN"

	// RetryPrefix is the prefix of the properties decoded into Options.Retry.
	RetryPrefix = "backOff"

	maxDefaultLifespan = 24 * time.Hour
)

// Options for New.
type Options struct {
	// Logger receives the queue's state transitions.
	// This is optional, and defaults to a logger that discards everything.
	Logger logger.Logger

	// Clock used to timestamp records and check their expiration.
	// This is optional, and defaults to the real clock.
	Clock kclock.PassiveClock

	// Priority of records that don't set one.
	// This is optional, and defaults to PriorityNormal.
	DefaultPriority Priority

	// Lifespan of records that don't set one. Zero means records never expire.
	DefaultLifespan time.Duration

	// Retry is the backoff used by NewRetryingProcessorFromOptions.
	// The queue itself doesn't retry.
	Retry retry.Config
}

func (o *Options) setDefaults() {
	if o.Logger == nil {
		o.Logger = logger.NewNopLogger()
	}
	if o.Clock == nil {
		o.Clock = kclock.RealClock{}
	}
	if !o.DefaultPriority.Valid() {
		o.DefaultPriority = PriorityNormal
	}
	o.DefaultLifespan = max(o.DefaultLifespan, 0)
}

// properties are the keys accepted by OptionsFromProperties.
type properties struct {
	DefaultPriority Priority       `mapstructure:"defaultPriority"`
	DefaultLifespan *time.Duration `mapstructure:"defaultLifespan"`
	LogLevel        string         `mapstructure:"logLevel"`
	LogAsJSON       bool           `mapstructure:"logAsJSON"`
}

// OptionsFromProperties returns Options configured from a properties map.
// Keys are case-insensitive:
//
//   - defaultPriority: one of low, normal, high, critical
//   - defaultLifespan: a Go duration ("1m30s") or a number of milliseconds
//   - logLevel: enables the "gatedqueue" logger at the given level
//   - logAsJSON: truthy value to log as JSON
//   - backOff*: retry settings, such as backOffPolicy or backOffMaxRetries (see retry.Config)
//
// When defaultLifespan is absent, it is read from the GATEDQUEUE_DEFAULT_LIFESPAN environment variable.
func OptionsFromProperties(props map[string]string) (Options, error) {
	var (
		opts Options
		p    properties
	)

	err := config.Decode(props, &p)
	if err != nil {
		return opts, fmt.Errorf("failed to decode queue properties: %w", err)
	}

	opts.DefaultPriority = p.DefaultPriority

	if p.DefaultLifespan != nil {
		if *p.DefaultLifespan < 0 || *p.DefaultLifespan > maxDefaultLifespan {
			return opts, fmt.Errorf("invalid defaultLifespan: value should be between 0 and %s, got %s", maxDefaultLifespan, *p.DefaultLifespan)
		}
		opts.DefaultLifespan = *p.DefaultLifespan
	} else {
		opts.DefaultLifespan, err = env.GetDurationWithRange(EnvDefaultLifespan, 0, 0, maxDefaultLifespan)
		if err != nil {
			return opts, err
		}
	}

	err = retry.DecodeConfigWithPrefix(&opts.Retry, props, RetryPrefix)
	if err != nil {
		return opts, fmt.Errorf("failed to decode retry properties: %w", err)
	}

	if p.LogLevel != "" {
		level := logger.ParseLevel(p.LogLevel)
		if level == logger.UndefinedLevel {
			return opts, fmt.Errorf("invalid logLevel: %s", p.LogLevel)
		}
		l := logger.NewLogger(LoggerName)
		l.SetOutputLevel(level)
		l.EnableJSONOutput(p.LogAsJSON)
		opts.Logger = l
	}

	return opts, nil
}
