package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cbDePrueba(openTimeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker(CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 2,
		OpenTimeout:      openTimeout,
	})
}

func fallar(cb *CircuitBreaker, veces int) {
	for i := 0; i < veces; i++ {
		_ = cb.Execute(func() error { return errors.New("smtp down") })
	}
}

func TestCB_EmpiezaCerrado(t *testing.T) {
	cb := cbDePrueba(time.Hour)
	assert.Equal(t, CBClosed, cb.State())

	err := cb.Execute(func() error { return nil })
	assert.NoError(t, err)
	assert.Equal(t, CBClosed, cb.State())
}

func TestCB_AbreTrasElUmbral(t *testing.T) {
	cb := cbDePrueba(time.Hour)

	fallar(cb, 2)
	assert.Equal(t, CBClosed, cb.State())

	fallar(cb, 1)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCB_AbiertoFallaRapido(t *testing.T) {
	cb := cbDePrueba(time.Hour)
	fallar(cb, 3)

	ejecutado := false
	err := cb.Execute(func() error { ejecutado = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, ejecutado, "el envio no debe intentarse con el breaker abierto")
}

func TestCB_ExitoCierraElContadorDeFallos(t *testing.T) {
	cb := cbDePrueba(time.Hour)

	fallar(cb, 2)
	require.NoError(t, cb.Execute(func() error { return nil }))
	// counter reset: two more failures still do not trip it
	fallar(cb, 2)
	assert.Equal(t, CBClosed, cb.State())
}

func TestCB_SeRecuperaPorHalfOpen(t *testing.T) {
	cb := cbDePrueba(10 * time.Millisecond)
	fallar(cb, 3)
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, CBHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCB_ProbeFallidoReabre(t *testing.T) {
	cb := cbDePrueba(10 * time.Millisecond)
	fallar(cb, 3)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	fallar(cb, 1)
	assert.Equal(t, CBOpen, cb.State())
}

func TestCBState_String(t *testing.T) {
	assert.Equal(t, "closed", CBClosed.String())
	assert.Equal(t, "open", CBOpen.String())
	assert.Equal(t, "half-open", CBHalfOpen.String())
}
