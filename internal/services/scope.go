package services

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// taskScope owns the background work a holder starts on its own, such as the
// initial fetch. Close cancels it and waits for the work to return.
type taskScope struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newTaskScope() *taskScope {
	ctx, cancel := context.WithCancel(context.Background())
	return &taskScope{ctx: ctx, cancel: cancel}
}

func (s *taskScope) launch(fn func(ctx context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
}

// Wait blocks until every launched task has returned.
func (s *taskScope) Wait() {
	s.wg.Wait()
}

func (s *taskScope) Close() {
	s.cancel()
	s.wg.Wait()
}

type options struct {
	logger           logrus.FieldLogger
	skipInitialFetch bool
}

type Option func(*options)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutInitialFetch stops a holder from loading its data on construction.
func WithoutInitialFetch() Option {
	return func(o *options) {
		o.skipInitialFetch = true
	}
}

func newOptions(component string, opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = o.logger.WithField("component", component)
	return o
}
