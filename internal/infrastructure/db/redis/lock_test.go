package redis

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// Runs only against a live server: REDIS_TEST_ADDR=localhost:6379 go test ./...
func newTestLocker(t *testing.T) *Locker {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client, err := Connect(context.Background(), Config{Addr: addr})
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewLocker(client, time.Second, zerolog.Nop())
}

func TestLocker_SerializesSameKey(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		inside  int
		maxSeen int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := locker.Do(ctx, "test:serialize", func(context.Context) error {
				mu.Lock()
				inside++
				if inside > maxSeen {
					maxSeen = inside
				}
				mu.Unlock()

				time.Sleep(5 * time.Millisecond)

				mu.Lock()
				inside--
				mu.Unlock()
				return nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("expected exclusive execution, saw %d concurrent holders", maxSeen)
	}
}

func TestLocker_ContextCancelledWhileWaiting(t *testing.T) {
	locker := newTestLocker(t)

	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_ = locker.Do(context.Background(), "test:cancel", func(context.Context) error {
			close(held)
			<-release
			return nil
		})
	}()
	<-held
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	called := false
	err := locker.Do(ctx, "test:cancel", func(context.Context) error {
		called = true
		return nil
	})
	if err == nil || called {
		t.Fatalf("expected timeout without running fn, got err=%v called=%v", err, called)
	}
}

func TestLocker_LostLockKeepsWriteResult(t *testing.T) {
	locker := newTestLocker(t)
	ctx := context.Background()

	err := locker.Do(ctx, "test:lost", func(ctx context.Context) error {
		// Simulate expiry: the lock vanishes while fn is still running.
		return locker.client.Del(ctx, lockKeyPrefix+"test:lost").Err()
	})
	if err != nil {
		t.Fatalf("expected the completed write to be reported as success, got %v", err)
	}
}
