package worker

// retry_cron.go
// Background goroutine that periodically moves due entries from the retry
// sorted set back onto the main comprobante queue. Respects the mailer
// circuit breaker to avoid hammering a downed SMTP server.

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds the dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB *redis.Client
	CB  *infra.CircuitBreaker
}

// StartRetryCron launches a goroutine that ticks every 30s and re-enqueues
// scheduled retries whose time has come. It respects the context for
// graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If the breaker is open, skip the tick entirely
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := strconv.FormatInt(time.Now().Unix(), 10)
	entries, err := cfg.RDB.ZRangeByScore(ctx, QueueComprobantesRetry, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   now,
		Count: retryBatchSize,
	}).Result()
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query retry set")
		return
	}
	if len(entries) == 0 {
		return
	}

	log.Info().Int("count", len(entries)).Msg("retry_cron: re-enqueueing due comprobantes")

	for _, raw := range entries {
		// Remove first so a crash between the two ops drops a job instead
		// of duplicating the email.
		removed, err := cfg.RDB.ZRem(ctx, QueueComprobantesRetry, raw).Result()
		if err != nil || removed == 0 {
			continue
		}
		if err := cfg.RDB.LPush(ctx, QueueComprobantes, raw).Err(); err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to re-enqueue job")
		}
	}
}
