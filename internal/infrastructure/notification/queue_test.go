package notification

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tjcichra/tira-backend/internal/domain/notification"
	sharedConfig "github.com/tjcichra/tira-backend/internal/shared/config"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// gatedSender blocks every Send until released, recording delivered jobs.
type gatedSender struct {
	mu        sync.Mutex
	delivered []notification.Job
	gate      chan struct{}
}

func newGatedSender() *gatedSender {
	return &gatedSender{gate: make(chan struct{})}
}

func (s *gatedSender) Send(job notification.Job) error {
	<-s.gate
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delivered = append(s.delivered, job)
	return nil
}

func (s *gatedSender) release() { close(s.gate) }

func (s *gatedSender) deliveredJobs() []notification.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]notification.Job, len(s.delivered))
	copy(out, s.delivered)
	return out
}

// failingSender fails a fixed number of times before succeeding.
type failingSender struct {
	mu        sync.Mutex
	failures  int
	attempts  int
	succeeded []notification.Job
}

func (s *failingSender) Send(job notification.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.attempts <= s.failures {
		return fmt.Errorf("smtp: connection refused")
	}
	s.succeeded = append(s.succeeded, job)
	return nil
}

func testConfig(size int) sharedConfig.NotificationConfig {
	return sharedConfig.NotificationConfig{
		QueueSize:   size,
		MaxAttempts: 3,
		// Zero retry delay keeps retry tests fast.
		RetryDelaySec: 0,
	}
}

func job(n int) notification.Job {
	return notification.Job{
		To:      fmt.Sprintf("user%d@example.com", n),
		Subject: fmt.Sprintf("subject %d", n),
		Body:    "<p>body</p>",
	}
}

func TestQueue_DeliversFIFO(t *testing.T) {
	sender := newGatedSender()
	sender.release()

	q := NewQueue(sender, logger.NewLogger(), testConfig(8))
	require.NoError(t, q.Start())

	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(job(i)))
	}

	assert.Eventually(t, func() bool {
		return len(sender.deliveredJobs()) == 5
	}, 2*time.Second, 10*time.Millisecond)

	delivered := sender.deliveredJobs()
	for i, j := range delivered {
		assert.Equal(t, fmt.Sprintf("user%d@example.com", i), j.To)
	}

	require.NoError(t, q.Stop())
}

func TestQueue_FullQueueBlocksProducer(t *testing.T) {
	sender := newGatedSender()

	q := NewQueue(sender, logger.NewLogger(), testConfig(2))
	require.NoError(t, q.Start())

	// The worker takes one job and blocks inside Send; two more fill
	// the channel. The next Enqueue must block rather than drop or
	// grow memory.
	require.NoError(t, q.Enqueue(job(0)))
	assert.Eventually(t, func() bool { return q.Pending() == 0 }, time.Second, time.Millisecond)
	require.NoError(t, q.Enqueue(job(1)))
	require.NoError(t, q.Enqueue(job(2)))

	blockedDone := make(chan struct{})
	go func() {
		_ = q.Enqueue(job(3))
		close(blockedDone)
	}()

	select {
	case <-blockedDone:
		t.Fatal("enqueue returned while the queue was full and the worker stalled")
	case <-time.After(100 * time.Millisecond):
	}

	sender.release()

	select {
	case <-blockedDone:
	case <-time.After(2 * time.Second):
		t.Fatal("enqueue did not unblock after the worker drained the queue")
	}

	assert.Eventually(t, func() bool {
		return len(sender.deliveredJobs()) == 4
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, q.Stop())
}

func TestQueue_StopDrainsPendingJobs(t *testing.T) {
	sender := newGatedSender()
	sender.release()

	q := NewQueue(sender, logger.NewLogger(), testConfig(8))
	require.NoError(t, q.Start())

	for i := 0; i < 4; i++ {
		require.NoError(t, q.Enqueue(job(i)))
	}

	require.NoError(t, q.Stop())
	assert.Len(t, sender.deliveredJobs(), 4)

	// Enqueue after stop fails instead of blocking forever.
	assert.Error(t, q.Enqueue(job(9)))
}

func TestQueue_EnqueueAfterStopFailsWithFreeCapacity(t *testing.T) {
	sender := newGatedSender()
	sender.release()

	q := NewQueue(sender, logger.NewLogger(), testConfig(8))
	require.NoError(t, q.Start())
	require.NoError(t, q.Stop())

	// The channel has free capacity, so a bare send would succeed and
	// leave the job in a queue no worker drains. Every post-stop
	// enqueue must error instead.
	for i := 0; i < 16; i++ {
		assert.Error(t, q.Enqueue(job(i)))
	}
	assert.Equal(t, 0, q.Pending())
}

func TestQueue_RetriesTransientFailure(t *testing.T) {
	sender := &failingSender{failures: 2}

	q := NewQueue(sender, logger.NewLogger(), testConfig(4))
	require.NoError(t, q.Start())

	require.NoError(t, q.Enqueue(job(0)))

	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.succeeded) == 1
	}, 2*time.Second, 10*time.Millisecond)

	sender.mu.Lock()
	assert.Equal(t, 3, sender.attempts)
	sender.mu.Unlock()

	require.NoError(t, q.Stop())
}

func TestQueue_DropsAfterMaxAttempts(t *testing.T) {
	sender := &failingSender{failures: 100}

	q := NewQueue(sender, logger.NewLogger(), testConfig(4))
	require.NoError(t, q.Start())

	require.NoError(t, q.Enqueue(job(0)))
	require.NoError(t, q.Enqueue(job(1)))

	// Both jobs exhaust their attempts; the worker keeps running.
	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return sender.attempts == 6
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, q.Stop())
}

func TestQueue_StartTwiceFails(t *testing.T) {
	q := NewQueue(newGatedSender(), logger.NewLogger(), testConfig(1))
	require.NoError(t, q.Start())
	assert.Error(t, q.Start())
	require.NoError(t, q.Stop())
	assert.Error(t, q.Stop())
}
