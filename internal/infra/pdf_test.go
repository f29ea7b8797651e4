package infra

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
)

func TestGenerarComprobantePDF(t *testing.T) {
	dir := t.TempDir()
	ins := &model.Inscripcion{ID: "i1", Estado: "confirmada", Fecha: time.Now()}
	evento := &model.Evento{
		ID: "e1", Titulo: "Congreso de Ingenieria", Lugar: "Auditorio Central",
		FechaInicio: time.Now().Add(48 * time.Hour),
		Costo:       decimal.NewFromInt(50000),
	}
	usuario := &model.Usuario{ID: "u1", Nombre: "Ana Gomez", Email: "ana@uni.edu"}

	path, err := GenerarComprobantePDF(ins, evento, usuario, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "comprobante_i1.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestGenerarComprobantePDF_EventoGratuito(t *testing.T) {
	dir := t.TempDir()
	ins := &model.Inscripcion{ID: "i2", Estado: "confirmada", Fecha: time.Now()}
	evento := &model.Evento{ID: "e2", Titulo: "Charla Abierta", Lugar: "Sala 3"}
	usuario := &model.Usuario{ID: "u1", Nombre: "Ana Gomez", Email: "ana@uni.edu"}

	path, err := GenerarComprobantePDF(ins, evento, usuario, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestGenerarComprobantePDF_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "anidado", "comprobantes")
	ins := &model.Inscripcion{ID: "i3", Estado: "confirmada", Fecha: time.Now()}
	evento := &model.Evento{ID: "e3", Titulo: "Taller"}
	usuario := &model.Usuario{ID: "u1", Nombre: "Ana"}

	_, err := GenerarComprobantePDF(ins, evento, usuario, dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
