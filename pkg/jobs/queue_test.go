package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueProcessesJobs(t *testing.T) {
	var mu sync.Mutex
	seen := make([]string, 0)
	done := make(chan struct{}, 2)

	q := NewQueue("test", func(_ context.Context, job Job) error {
		mu.Lock()
		seen = append(seen, job.ID)
		mu.Unlock()
		done <- struct{}{}
		return nil
	}, QueueConfig{Workers: 2})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "a"}))
	require.NoError(t, q.Enqueue(Job{ID: "b"}))

	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for jobs")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "b"}, seen)
}

func TestQueueRetriesFailedJobs(t *testing.T) {
	attempts := make(chan int, 4)

	q := NewQueue("test", func(_ context.Context, job Job) error {
		attempts <- job.Attempt
		if job.Attempt < 2 {
			return errors.New("transient")
		}
		return nil
	}, QueueConfig{Workers: 1, MaxRetries: 3, RetryDelay: 10 * time.Millisecond})

	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Job{ID: "a"}))

	var recorded []int
	for len(recorded) < 2 {
		select {
		case n := <-attempts:
			recorded = append(recorded, n)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after attempts %v", recorded)
		}
	}
	assert.Equal(t, []int{1, 2}, recorded)
}

func TestQueueEnqueueBeforeStart(t *testing.T) {
	q := NewQueue("test", func(context.Context, Job) error { return nil }, QueueConfig{})

	assert.Error(t, q.Enqueue(Job{ID: "a"}))
}
