// Package runloop serialises work onto a single goroutine.
//
// A storex.Store is not safe for concurrent use, so everything that touches
// one (UI input, completions of background fetches) is posted to a Loop as a
// job and executed in FIFO order by Run. Background work started with Go runs
// on its own goroutines and is cancelled and awaited when Run returns.
package runloop

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultQueueSize is the job buffer used when WithQueueSize is not given.
const DefaultQueueSize = 64

var (
	ErrQueueFull = errors.New("job queue full (backpressure)")
	ErrStopped   = errors.New("run loop stopped")
)

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the job buffer size.
func WithQueueSize(size int) Option {
	return func(l *Loop) {
		if size > 0 {
			l.jobs = make(chan func(), size)
		}
	}
}

// WithLogger sets the logger used for dropped jobs and background failures.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(l *Loop) {
		if log != nil {
			l.log = log
		}
	}
}

// Loop is a single-consumer job queue with attached background workers.
type Loop struct {
	jobs chan func()
	done chan struct{}
	once sync.Once
	log  *zap.SugaredLogger

	cancel context.CancelFunc
	group  *errgroup.Group
	gctx   context.Context
}

// New creates a Loop. It does nothing until Run is called.
func New(opts ...Option) *Loop {
	l := &Loop{
		jobs: make(chan func(), DefaultQueueSize),
		done: make(chan struct{}),
		log:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(l)
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.group, l.gctx = errgroup.WithContext(ctx)
	return l
}

// Post enqueues job for execution on the Run goroutine.
// Non-blocking; returns ErrQueueFull if the buffer is full.
// Safe for concurrent use.
func (l *Loop) Post(job func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}

	select {
	case l.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Submit enqueues job, waiting for buffer space. It returns ErrStopped once
// the loop is stopped, or ctx.Err() if ctx ends first.
// Safe for concurrent use. Never call it from the Run goroutine: a full
// queue would deadlock.
func (l *Loop) Submit(ctx context.Context, job func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}

	select {
	case l.jobs <- job:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Go runs fn on a background goroutine. fn receives a context that is
// cancelled when Run returns or another background function fails.
// Deliver results back with Post.
func (l *Loop) Go(fn func(ctx context.Context) error) {
	l.group.Go(func() error {
		return fn(l.gctx)
	})
}

// Run executes posted jobs until ctx is cancelled, Stop is called or a
// background function returns an error. It then cancels background work,
// waits for it and returns the first background error, if any.
// Jobs still queued at that point are discarded.
func (l *Loop) Run(ctx context.Context) error {
	defer l.Stop()

	for {
		select {
		case job := <-l.jobs:
			job()
		case <-ctx.Done():
			return l.shutdown()
		case <-l.done:
			return l.shutdown()
		case <-l.gctx.Done():
			return l.shutdown()
		}
	}
}

// Stop signals Run to return. Safe to call multiple times.
func (l *Loop) Stop() {
	l.once.Do(func() {
		close(l.done)
	})
}

// Done is closed once the loop has been stopped.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) shutdown() error {
	l.Stop()
	l.cancel()
	err := l.group.Wait()
	if dropped := len(l.jobs); dropped > 0 {
		l.log.Debugw("Discarding queued jobs on shutdown", "count", dropped)
	}
	if err != nil {
		l.log.Warnw("Background work failed", "error", err)
	}
	return err
}
