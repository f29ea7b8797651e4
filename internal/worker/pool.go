// Package worker runs the async comprobante pipeline: after a confirmed
// inscription the portal enqueues a job, and a goroutine pool generates the
// PDF receipt and emails it. The data plane (remote API calls) never goes
// through here.
package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
)

const (
	// QueueComprobantes is the main job list, consumed via BRPOP.
	QueueComprobantes = "jobs:comprobantes"
	// QueueComprobantesRetry is a sorted set scored by next-attempt time.
	QueueComprobantesRetry = "jobs:comprobantes:retry"
	// MaxComprobanteRetries before a job lands in the DLQ.
	MaxComprobanteRetries = 5
)

// ComprobanteJob carries everything the worker needs so it never has to
// call the remote API (it holds no session credential).
type ComprobanteJob struct {
	Inscripcion model.Inscripcion `json:"inscripcion"`
	Evento      model.Evento      `json:"evento"`
	Usuario     model.Usuario     `json:"usuario"`
	Attempts    int               `json:"attempts"`
}

// Dispatcher enqueues comprobante jobs into Redis.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EncolarComprobante pushes a receipt job onto the main queue.
func (d *Dispatcher) EncolarComprobante(ctx context.Context, job ComprobanteJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, QueueComprobantes, data).Err()
}

// programarReintento schedules a failed job for a later attempt.
func (d *Dispatcher) programarReintento(ctx context.Context, job ComprobanteJob, en time.Duration) error {
	data, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.ZAdd(ctx, QueueComprobantesRetry, redis.Z{
		Score:  float64(time.Now().Add(en).Unix()),
		Member: data,
	}).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming the queue.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, w *ComprobanteWorker, numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, w, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, w *ComprobanteWorker, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := rdb.BRPop(ctx, 5*time.Second, QueueComprobantes).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			w.Process(ctx, json.RawMessage(result[1]))
		}
	}
}
