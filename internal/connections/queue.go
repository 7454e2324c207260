package connections

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"recipely/internal/config"
	"recipely/internal/remote"
)

// OperationType is the remote mutation mirrored by a queued operation.
type OperationType string

const (
	OpUpsert OperationType = "upsert"
	OpDelete OperationType = "delete"
)

// Operation is one outgoing remote mutation for a connection.
type Operation struct {
	ConnectionID string
	Type         OperationType
	Record       *remote.Record
}

// Outcome reports the progress of a queued operation back to its owner.
// Err nil means the mutation was confirmed remotely. A non-terminal
// outcome with an error is an intermediate retriable failure; the queue
// will try again after backoff.
type Outcome struct {
	ConnectionID string
	Type         OperationType
	Record       *remote.Record
	Attempts     int
	Err          error
	Terminal     bool
}

// OperationQueue serializes outgoing mutations per connection id so two
// competing mutations never race on the remote side; operations for
// different connections proceed concurrently. Retries are never cancelled
// mid-flight: a lane finishes its current operation, cap included, before
// Shutdown returns.
type OperationQueue struct {
	store          remote.RemoteStore
	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	bufferSize     int
	attemptTimeout time.Duration
	onOutcome      func(Outcome)

	mu     sync.Mutex
	lanes  map[string]chan Operation
	closed bool
	wg     sync.WaitGroup
}

func NewOperationQueue(store remote.RemoteStore, cfg config.SyncConfig, onOutcome func(Outcome)) *OperationQueue {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 5
	}
	bufferSize := cfg.QueueBufferSize
	if bufferSize <= 0 {
		bufferSize = 64
	}

	return &OperationQueue{
		store:          store,
		maxRetries:     maxRetries,
		initialBackoff: time.Duration(cfg.InitialBackoffMs) * time.Millisecond,
		maxBackoff:     time.Duration(cfg.MaxBackoffMs) * time.Millisecond,
		bufferSize:     bufferSize,
		attemptTimeout: 30 * time.Second,
		onOutcome:      onOutcome,
	}
}

// Enqueue hands the operation to the connection's lane, starting the lane
// worker on first use. Enqueue after Shutdown is a no-op. The send happens
// under the mutex so it cannot interleave with Shutdown closing the lane.
func (q *OperationQueue) Enqueue(op Operation) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		log.Printf("operation queue closed, dropping %s for connection %s", op.Type, op.ConnectionID)
		return
	}
	if q.lanes == nil {
		q.lanes = make(map[string]chan Operation)
	}
	lane, ok := q.lanes[op.ConnectionID]
	if !ok {
		lane = make(chan Operation, q.bufferSize)
		q.lanes[op.ConnectionID] = lane
		q.wg.Add(1)
		go q.worker(lane)
	}

	lane <- op
}

// Shutdown drains every lane and waits for in-flight retries to reach
// their cap or complete.
func (q *OperationQueue) Shutdown() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	for _, lane := range q.lanes {
		close(lane)
	}
	q.mu.Unlock()

	q.wg.Wait()
}

func (q *OperationQueue) worker(lane chan Operation) {
	defer q.wg.Done()
	for op := range lane {
		q.run(op)
	}
}

// run drives one operation through the retry loop. Retriable failures
// back off exponentially up to the attempt cap; terminal remote errors
// short-circuit immediately.
func (q *OperationQueue) run(op Operation) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = q.initialBackoff
	bo.MaxInterval = q.maxBackoff
	bo.MaxElapsedTime = 0
	bo.Reset()

	attempts := 0
	for {
		attempts++
		err := q.execute(op)
		if err == nil {
			q.report(Outcome{
				ConnectionID: op.ConnectionID,
				Type:         op.Type,
				Record:       op.Record,
				Attempts:     attempts,
			})
			return
		}

		if !remote.IsRetriable(err) {
			q.report(Outcome{
				ConnectionID: op.ConnectionID,
				Type:         op.Type,
				Record:       op.Record,
				Attempts:     attempts,
				Err:          err,
				Terminal:     true,
			})
			return
		}

		if attempts >= q.maxRetries {
			q.report(Outcome{
				ConnectionID: op.ConnectionID,
				Type:         op.Type,
				Record:       op.Record,
				Attempts:     attempts,
				Err:          fmt.Errorf("max retries exceeded: %w", err),
				Terminal:     true,
			})
			return
		}

		q.report(Outcome{
			ConnectionID: op.ConnectionID,
			Type:         op.Type,
			Record:       op.Record,
			Attempts:     attempts,
			Err:          err,
		})
		time.Sleep(bo.NextBackOff())
	}
}

func (q *OperationQueue) execute(op Operation) error {
	// Deliberately not tied to any caller context: an abandoned screen
	// must not cancel a half-applied mutation.
	ctx, cancel := context.WithTimeout(context.Background(), q.attemptTimeout)
	defer cancel()

	switch op.Type {
	case OpDelete:
		return q.store.Delete(ctx, op.Record)
	default:
		return q.store.CreateOrUpdate(ctx, op.Record)
	}
}

func (q *OperationQueue) report(outcome Outcome) {
	if q.onOutcome != nil {
		q.onOutcome(outcome)
	}
}
