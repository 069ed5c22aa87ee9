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
	"context"
	"errors"
	"time"

	"github.com/eventgate/kit/logger"
	"github.com/eventgate/kit/retry"
)

// Processor receives the records accepted for delivery.
// Process is invoked on the queue's worker goroutine and never concurrently with itself.
// It must not block indefinitely.
type Processor[E comparable, D any] interface {
	Process(event E, data D)
}

// ProcessorFunc is a function that implements Processor.
type ProcessorFunc[E comparable, D any] func(event E, data D)

// Process implements Processor.
func (fn ProcessorFunc[E, D]) Process(event E, data D) {
	fn(event, data)
}

type retryingProcessor[E comparable, D any] struct {
	fn     func(event E, data D) error
	config retry.Config
	log    logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

// NewRetryingProcessor returns a Processor that retries fn with the backoff described by config.
// Retries run on the worker goroutine, so no other record is delivered until fn succeeds or the
// retries are exhausted. A record that still fails is logged and dropped.
// Closing the processor, which the queue does in Close, stops any retry in progress.
func NewRetryingProcessor[E comparable, D any](fn func(event E, data D) error, config retry.Config, log logger.Logger) Processor[E, D] {
	if log == nil {
		log = logger.NewNopLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &retryingProcessor[E, D]{
		fn:     fn,
		config: config,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

// NewRetryingProcessorFromOptions returns a retrying Processor configured with opts.Retry and opts.Logger.
func NewRetryingProcessorFromOptions[E comparable, D any](fn func(event E, data D) error, opts Options) Processor[E, D] {
	return NewRetryingProcessor(fn, opts.Retry, opts.Logger)
}

func (p *retryingProcessor[E, D]) Process(event E, data D) {
	err := retry.NotifyRecover(
		func() error {
			return p.fn(event, data)
		},
		p.config.NewBackOffWithContext(p.ctx),
		func(err error, d time.Duration) {
			p.log.WithError(err).Warnf("Delivery of event %v failed, retrying in %s", event, d)
		},
		func() {
			p.log.Infof("Delivery of event %v recovered", event)
		},
	)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		p.log.Infof("Delivery of event %v abandoned: processor closed", event)
	default:
		p.log.WithError(err).Errorf("Delivery of event %v failed, giving up", event)
	}
}

// Close stops retries in progress. Records processed after Close are attempted once.
func (p *retryingProcessor[E, D]) Close() error {
	p.cancel()
	return nil
}
