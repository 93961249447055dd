// Package notification implements the bounded in-process queue that
// decouples email delivery from request handling. Handlers are the
// producers; a single long-lived worker goroutine is the consumer.
package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/tjcichra/tira-backend/internal/domain/notification"
	sharedConfig "github.com/tjcichra/tira-backend/internal/shared/config"
	"github.com/tjcichra/tira-backend/internal/shared/goroutine"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
)

// Sender performs the actual (slow, fallible) delivery of one job.
type Sender interface {
	Send(job notification.Job) error
}

// Queue is a bounded FIFO of pending notification jobs. Enqueue blocks
// when the queue is full, so a slow mail relay applies backpressure to
// the workflows that produce notifications instead of growing memory
// or dropping jobs.
type Queue struct {
	sender      Sender
	logger      logger.Interface
	jobs        chan notification.Job
	stopCh      chan struct{}
	wg          sync.WaitGroup
	mu          sync.Mutex
	running     bool
	maxAttempts int
	retryDelay  time.Duration
}

func NewQueue(sender Sender, log logger.Interface, cfg sharedConfig.NotificationConfig) *Queue {
	size := cfg.QueueSize
	if size <= 0 {
		size = 512
	}
	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	delay := time.Duration(cfg.RetryDelaySec) * time.Second

	return &Queue{
		sender:      sender,
		logger:      log,
		jobs:        make(chan notification.Job, size),
		stopCh:      make(chan struct{}),
		maxAttempts: attempts,
		retryDelay:  delay,
	}
}

// Enqueue submits a job for delivery. Blocks while the queue is at
// capacity; fails once the queue has been stopped. Enqueued jobs
// cannot be retracted.
func (q *Queue) Enqueue(job notification.Job) error {
	// Checked before the blocking send: after Stop the worker has
	// drained and exited, so a job that won the send would be lost.
	select {
	case <-q.stopCh:
		return fmt.Errorf("notification queue is stopped")
	default:
	}

	select {
	case q.jobs <- job:
		return nil
	case <-q.stopCh:
		return fmt.Errorf("notification queue is stopped")
	}
}

// Start launches the single consumer goroutine.
func (q *Queue) Start() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return fmt.Errorf("notification queue is already running")
	}
	q.running = true

	q.wg.Add(1)
	goroutine.SafeGo(q.logger, "notification-worker", func() {
		defer q.wg.Done()
		q.processJobs()
	})

	return nil
}

// Stop shuts the queue down, draining jobs already enqueued before
// returning so an orderly shutdown does not lose notifications.
func (q *Queue) Stop() error {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return fmt.Errorf("notification queue is not running")
	}
	q.running = false
	q.mu.Unlock()

	close(q.stopCh)
	q.wg.Wait()

	return nil
}

// Pending reports the number of jobs waiting in the queue.
func (q *Queue) Pending() int {
	return len(q.jobs)
}

func (q *Queue) processJobs() {
	for {
		select {
		case <-q.stopCh:
			// Drain remaining jobs
			for {
				select {
				case job := <-q.jobs:
					q.deliver(job)
				default:
					return
				}
			}
		case job := <-q.jobs:
			q.deliver(job)
		}
	}
}

// deliver attempts one job with bounded retries. A job that keeps
// failing is logged and dropped; a bad address must never take down
// the notification subsystem or surface to the HTTP caller.
func (q *Queue) deliver(job notification.Job) {
	var err error
	for attempt := 1; attempt <= q.maxAttempts; attempt++ {
		err = q.sender.Send(job)
		if err == nil {
			q.logger.Debugw("notification delivered", "to", job.To, "subject", job.Subject)
			return
		}

		q.logger.Warnw("notification delivery failed",
			"to", job.To,
			"subject", job.Subject,
			"attempt", attempt,
			"error", err,
		)

		if attempt < q.maxAttempts {
			time.Sleep(q.retryDelay * time.Duration(attempt))
		}
	}

	q.logger.Errorw("dropping notification after repeated delivery failures",
		"to", job.To,
		"subject", job.Subject,
		"attempts", q.maxAttempts,
		"error", err,
	)
}
