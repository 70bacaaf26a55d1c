package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/investment-app/portfolio-api/internal/api/metrics"
)

// ErrStopped is returned by Do once the dispatcher has been shut down.
var ErrStopped = errors.New("serializer stopped")

// keyLock is a one-slot semaphore shared by every job on the same key.
// refs counts the jobs holding or waiting for it.
type keyLock struct {
	slot chan struct{}
	refs int
}

// Dispatcher serializes jobs per key inside the process. Jobs on the same key
// never overlap; jobs on different keys never wait for each other. fn runs on
// the caller's goroutine and must not call Do itself.
type Dispatcher struct {
	mu      sync.Mutex
	keys    map[string]*keyLock
	stopped chan struct{}
	log     zerolog.Logger
}

func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		keys:    make(map[string]*keyLock),
		stopped: make(chan struct{}),
		log:     log,
	}
}

// Start makes the dispatcher refuse new work once ctx is cancelled. Jobs
// already running are left to finish.
func (d *Dispatcher) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		close(d.stopped)
	}()
}

// Do waits for exclusive use of key and runs fn. Once fn has started, its
// result is returned as is, even if ctx is cancelled meanwhile.
func (d *Dispatcher) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	select {
	case <-d.stopped:
		return ErrStopped
	default:
	}

	kl := d.acquireRef(key)
	defer d.releaseRef(key, kl)

	metrics.SerializerQueueDepth.Inc()
	select {
	case kl.slot <- struct{}{}:
		metrics.SerializerQueueDepth.Dec()
	case <-ctx.Done():
		metrics.SerializerQueueDepth.Dec()
		return ctx.Err()
	case <-d.stopped:
		metrics.SerializerQueueDepth.Dec()
		return ErrStopped
	}
	defer func() { <-kl.slot }()

	return d.run(ctx, key, fn)
}

func (d *Dispatcher) acquireRef(key string) *keyLock {
	d.mu.Lock()
	defer d.mu.Unlock()

	kl, ok := d.keys[key]
	if !ok {
		kl = &keyLock{slot: make(chan struct{}, 1)}
		d.keys[key] = kl
	}
	kl.refs++
	return kl
}

func (d *Dispatcher) releaseRef(key string, kl *keyLock) {
	d.mu.Lock()
	defer d.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(d.keys, key)
	}
}

// run executes one job and turns a panic into an error.
func (d *Dispatcher) run(ctx context.Context, key string, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Str("key", key).
				Interface("panic", r).
				Msg("serialized job panicked")
			err = fmt.Errorf("serialized job %s panicked: %v", key, r)
		}
	}()
	return fn(ctx)
}
