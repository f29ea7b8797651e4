package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
)

// ComprobanteWorker generates the PDF receipt for an inscription and emails
// it. SMTP sends go through the circuit breaker so a downed mail server
// fast-fails instead of tying up the pool.
type ComprobanteWorker struct {
	mailer      *infra.Mailer
	cb          *infra.CircuitBreaker
	dispatcher  *Dispatcher
	rdb         *redis.Client
	storagePath string
}

func NewComprobanteWorker(mailer *infra.Mailer, cb *infra.CircuitBreaker, dispatcher *Dispatcher, rdb *redis.Client, storagePath string) *ComprobanteWorker {
	return &ComprobanteWorker{
		mailer:      mailer,
		cb:          cb,
		dispatcher:  dispatcher,
		rdb:         rdb,
		storagePath: storagePath,
	}
}

// Process handles one job: PDF first, then the email. Any failure schedules
// a retry with exponential backoff until MaxComprobanteRetries, after which
// the job moves to the DLQ for manual inspection.
func (w *ComprobanteWorker) Process(ctx context.Context, raw json.RawMessage) {
	var job ComprobanteJob
	if err := json.Unmarshal(raw, &job); err != nil {
		log.Error().Err(err).Msg("comprobante_worker: invalid payload")
		return
	}
	if job.Usuario.Email == "" {
		log.Warn().Str("inscripcion_id", job.Inscripcion.ID).Msg("comprobante_worker: empty email, skipping")
		return
	}

	pdfPath, err := infra.GenerarComprobantePDF(&job.Inscripcion, &job.Evento, &job.Usuario, w.storagePath)
	if err != nil {
		w.fallo(ctx, job, fmt.Errorf("generate pdf: %w", err))
		return
	}

	asunto := "Comprobante de inscripcion: " + job.Evento.Titulo
	cuerpo := fmt.Sprintf(
		"Hola %s,\n\nAdjuntamos el comprobante de tu inscripcion a %s (%s).\n\nPortal de Eventos",
		job.Usuario.Nombre, job.Evento.Titulo, job.Evento.FechaInicio.Format("02/01/2006"),
	)

	err = w.cb.Execute(func() error {
		return w.mailer.EnviarComprobante(job.Usuario.Email, asunto, cuerpo, pdfPath)
	})
	if err != nil {
		w.fallo(ctx, job, err)
		return
	}

	log.Info().
		Str("inscripcion_id", job.Inscripcion.ID).
		Str("to", job.Usuario.Email).
		Msg("comprobante_worker: receipt sent")
}

func (w *ComprobanteWorker) fallo(ctx context.Context, job ComprobanteJob, cause error) {
	job.Attempts++

	if job.Attempts >= MaxComprobanteRetries {
		payload, _ := json.Marshal(job)
		SendToDLQ(ctx, w.rdb, QueueComprobantes, "comprobante", payload,
			fmt.Sprintf("max retries (%d) exceeded: %s", MaxComprobanteRetries, cause), job.Attempts)
		return
	}

	backoff := computeRetryBackoff(job.Attempts)
	if err := w.dispatcher.programarReintento(ctx, job, backoff); err != nil {
		log.Error().Err(err).Str("inscripcion_id", job.Inscripcion.ID).Msg("comprobante_worker: failed to schedule retry")
		return
	}
	log.Warn().
		Err(cause).
		Str("inscripcion_id", job.Inscripcion.ID).
		Int("attempts", job.Attempts).
		Dur("backoff", backoff).
		Msg("comprobante_worker: send failed, retry scheduled")
}

// computeRetryBackoff doubles per attempt: 1m, 2m, 4m… capped at 30m.
func computeRetryBackoff(attempts int) time.Duration {
	backoff := time.Minute << (attempts - 1)
	if backoff > 30*time.Minute {
		backoff = 30 * time.Minute
	}
	return backoff
}
