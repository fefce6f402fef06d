// Package remotesync drains optimistic local writes to the remote
// backend. Writes are fire-and-forget: the caller never waits, there is
// no ordering guarantee relative to later local mutations, and a failed
// write is logged without rolling the local state back.
package remotesync

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"github.com/TripDeskHQ/TripDesk/internal/pkg/cache"
)

const (
	// Redis keys
	QueueKey         = "remote_sync:queue"
	StatsCompleteKey = "remote_sync:completed"
	StatsFailedKey   = "remote_sync:failed"

	popTimeout = 1 * time.Second
)

// Applier performs one remote write. Implemented by the GORM-backed
// repository layer.
type Applier interface {
	Apply(ctx context.Context, job WriteJob) error
}

// Queue manages the remote write backlog using a Redis list.
type Queue struct {
	client  *redis.Client
	applier Applier
	workers int
	stopCh  chan struct{}
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewQueue creates a remote write queue.
func NewQueue(applier Applier, workers int) *Queue {
	if workers <= 0 {
		workers = 2
	}
	return &Queue{
		client:  cache.GetClient(),
		applier: applier,
		workers: workers,
		stopCh:  make(chan struct{}),
	}
}

// Enqueue pushes a job and returns immediately. Enqueue failures are
// logged, not surfaced: the optimistic local update already committed
// and the portal accepts the divergence window.
func (q *Queue) Enqueue(job WriteJob) {
	data, err := json.Marshal(job)
	if err != nil {
		log.Errorf("[RemoteSync] Marshal job %s failed: %v", job.ID, err)
		return
	}
	if err := q.client.LPush(context.Background(), QueueKey, data).Err(); err != nil {
		log.Errorf("[RemoteSync] Enqueue %s %s/%s failed: %v", job.Action, job.Entity, job.RecordID, err)
	}
}

// Start launches the worker pool.
func (q *Queue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return
	}
	q.running = true
	log.Infof("[RemoteSync] Starting %d workers", q.workers)

	for i := 0; i < q.workers; i++ {
		q.wg.Add(1)
		go q.worker(i)
	}
}

// Stop stops the workers. Jobs still queued remain in Redis.
func (q *Queue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		return
	}
	log.Info("[RemoteSync] Stopping workers...")
	close(q.stopCh)
	q.running = false
	q.wg.Wait()
	log.Info("[RemoteSync] All workers stopped")
}

// Pending returns the current backlog depth.
func (q *Queue) Pending() int64 {
	n, err := q.client.LLen(context.Background(), QueueKey).Result()
	if err != nil {
		return 0
	}
	return n
}

func (q *Queue) worker(id int) {
	defer q.wg.Done()
	ctx := context.Background()

	for {
		select {
		case <-q.stopCh:
			return
		default:
		}

		res, err := q.client.BRPop(ctx, popTimeout, QueueKey).Result()
		if err != nil {
			if err != redis.Nil {
				log.Errorf("[RemoteSync] Worker %d pop error: %v", id, err)
				time.Sleep(popTimeout)
			}
			continue
		}
		if len(res) < 2 {
			continue
		}

		var job WriteJob
		if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
			log.Errorf("[RemoteSync] Worker %d unmarshal error: %v", id, err)
			continue
		}

		if err := q.applier.Apply(ctx, job); err != nil {
			// No retry, no rollback: log and count.
			log.Errorf("[RemoteSync] %s %s/%s failed: %v", job.Action, job.Entity, job.RecordID, err)
			_ = q.client.Incr(ctx, StatsFailedKey).Err()
			continue
		}
		_ = q.client.Incr(ctx, StatsCompleteKey).Err()
	}
}
