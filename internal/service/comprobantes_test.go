package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
	"github.com/Estefan29/frontend-eventos-sub000/internal/session"
	"github.com/Estefan29/frontend-eventos-sub000/internal/worker"
)

func dispatcherDePrueba(t *testing.T) (*worker.Dispatcher, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return worker.NewDispatcher(rdb), rdb
}

func storeConUsuario() *session.Store {
	st := session.NewStore("s1", nil)
	st.Login(&model.Usuario{ID: "u1", Nombre: "Ana", Email: "ana@uni.edu", Rol: "estudiante"}, "tok123")
	return st
}

func TestGenerarPDF_UsaElEventoEmbebido(t *testing.T) {
	insAPI := &stubInscripciones{}
	evAPI := &stubEventos{err: assert.AnError} // must never be called
	d, _ := dispatcherDePrueba(t)
	svc := NewComprobanteService(insAPI, evAPI, d, t.TempDir())

	obtener := &model.Inscripcion{
		ID: "i1", EventoID: "e1", Estado: "confirmada",
		Evento: &model.Evento{ID: "e1", Titulo: "Congreso"},
	}
	insAPI.obtener = obtener

	path, err := svc.GenerarPDF(context.Background(), storeConUsuario(), "i1")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerarPDF_CargaElEventoCuandoFalta(t *testing.T) {
	insAPI := &stubInscripciones{obtener: &model.Inscripcion{ID: "i1", EventoID: "e1", Estado: "confirmada"}}
	evAPI := &stubEventos{obtener: &model.Evento{ID: "e1", Titulo: "Congreso"}}
	d, _ := dispatcherDePrueba(t)
	svc := NewComprobanteService(insAPI, evAPI, d, t.TempDir())

	path, err := svc.GenerarPDF(context.Background(), storeConUsuario(), "i1")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestEnviarPorEmail_EncolaElJob(t *testing.T) {
	insAPI := &stubInscripciones{obtener: &model.Inscripcion{
		ID: "i1", EventoID: "e1", Estado: "confirmada",
		Evento: &model.Evento{ID: "e1", Titulo: "Congreso"},
	}}
	d, rdb := dispatcherDePrueba(t)
	svc := NewComprobanteService(insAPI, &stubEventos{}, d, t.TempDir())

	require.NoError(t, svc.EnviarPorEmail(context.Background(), storeConUsuario(), "i1"))

	raw, err := rdb.RPop(context.Background(), worker.QueueComprobantes).Result()
	require.NoError(t, err)
	var job worker.ComprobanteJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "i1", job.Inscripcion.ID)
	assert.Equal(t, "ana@uni.edu", job.Usuario.Email)
}

func TestComprobantes_SinSesionFalla(t *testing.T) {
	d, _ := dispatcherDePrueba(t)
	svc := NewComprobanteService(&stubInscripciones{}, &stubEventos{}, d, t.TempDir())

	_, err := svc.GenerarPDF(context.Background(), session.NewStore("s1", nil), "i1")
	assert.ErrorIs(t, err, ErrSinUsuario)
}

func TestComprobantes_ErrorRemotoSePropaga(t *testing.T) {
	insAPI := &stubInscripciones{err: &remote.ErrRemoto{Status: 404, Detalle: "Inscripcion no encontrada"}}
	d, _ := dispatcherDePrueba(t)
	svc := NewComprobanteService(insAPI, &stubEventos{}, d, t.TempDir())

	err := svc.EnviarPorEmail(context.Background(), storeConUsuario(), "i9")
	var remoto *remote.ErrRemoto
	assert.ErrorAs(t, err, &remoto)
}
