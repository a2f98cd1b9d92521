package services

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type outboxTask struct {
	name     string
	attempts int
	nextTry  time.Time
	run      func(ctx context.Context) error
}

// Outbox retries failed remote writes in the background with exponential
// backoff. Tasks that exhaust their attempts are dropped with an error log.
type Outbox struct {
	mu          sync.Mutex
	tasks       []*outboxTask
	wake        chan struct{}
	logger      *slog.Logger
	baseDelay   time.Duration
	maxDelay    time.Duration
	maxAttempts int
}

func NewOutbox(logger *slog.Logger) *Outbox {
	return &Outbox{
		wake:        make(chan struct{}, 1),
		logger:      logger,
		baseDelay:   5 * time.Second,
		maxDelay:    5 * time.Minute,
		maxAttempts: 8,
	}
}

func (o *Outbox) Enqueue(name string, run func(ctx context.Context) error) {
	o.mu.Lock()
	o.tasks = append(o.tasks, &outboxTask{
		name:    name,
		nextTry: time.Now().Add(o.baseDelay),
		run:     run,
	})
	o.mu.Unlock()

	select {
	case o.wake <- struct{}{}:
	default:
	}
}

func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.tasks)
}

// Run processes queued tasks until ctx is cancelled.
func (o *Outbox) Run(ctx context.Context) {
	timer := time.NewTimer(o.baseDelay)
	defer timer.Stop()

	for {
		wait := o.nextWait()
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-ctx.Done():
			return
		case <-o.wake:
		case <-timer.C:
			o.runDue(ctx)
		}
	}
}

func (o *Outbox) nextWait() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if len(o.tasks) == 0 {
		return o.maxDelay
	}
	soonest := o.tasks[0].nextTry
	for _, t := range o.tasks[1:] {
		if t.nextTry.Before(soonest) {
			soonest = t.nextTry
		}
	}
	wait := time.Until(soonest)
	if wait < time.Millisecond {
		wait = time.Millisecond
	}
	return wait
}

func (o *Outbox) runDue(ctx context.Context) {
	now := time.Now()

	o.mu.Lock()
	var due, later []*outboxTask
	for _, t := range o.tasks {
		if t.nextTry.After(now) {
			later = append(later, t)
		} else {
			due = append(due, t)
		}
	}
	o.tasks = later
	o.mu.Unlock()

	for _, t := range due {
		err := t.run(ctx)
		if err == nil {
			o.logger.Info("outbox task succeeded", "task", t.name, "attempts", t.attempts+1)
			continue
		}
		t.attempts++
		if t.attempts >= o.maxAttempts {
			o.logger.Error("outbox task dropped after max attempts", "task", t.name, "attempts", t.attempts, "err", err)
			continue
		}
		t.nextTry = now.Add(o.backoff(t.attempts))
		o.logger.Warn("outbox task failed, will retry", "task", t.name, "attempts", t.attempts, "err", err)

		o.mu.Lock()
		o.tasks = append(o.tasks, t)
		o.mu.Unlock()
	}
}

func (o *Outbox) backoff(attempts int) time.Duration {
	d := o.baseDelay << uint(attempts)
	if d > o.maxDelay || d <= 0 {
		d = o.maxDelay
	}
	return d
}
