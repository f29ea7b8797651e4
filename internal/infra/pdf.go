package infra

// pdf.go — inscription receipt generation using go-pdf/fpdf.
// An A5 page with the event details, the attendee, the inscription state
// and, when the event has a cost, the amount. The file is written to
// storagePath/comprobante_{inscripcion}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/Estefan29/frontend-eventos-sub000/internal/model"
)

// GenerarComprobantePDF writes the receipt for a confirmed inscription and
// returns the absolute path of the generated file.
func GenerarComprobantePDF(ins *model.Inscripcion, evento *model.Evento, usuario *model.Usuario, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("comprobante_%s.pdf", ins.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Comprobante de Inscripcion", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Inscripcion: %s", ins.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Fecha: %s", ins.Fecha.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Estado: %s", ins.Estado), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, evento.Titulo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Lugar: %s", evento.Lugar), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Inicio: %s", evento.FechaInicio.Format("02/01/2006 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.CellFormat(0, 7, fmt.Sprintf("Asistente: %s", usuario.Nombre), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Email: %s", usuario.Email), "", 1, "L", false, 0, "")

	if !evento.Costo.IsZero() {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, fmt.Sprintf("Costo: $%s", evento.Costo.StringFixed(2)), "", 1, "L", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", fileName, err)
	}
	return filePath, nil
}
