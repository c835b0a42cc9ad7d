package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/MKhiriev/sheetcharts/models"
)

const chartImageName = "chart"

// PDF writes a single A4 landscape page holding the title and the PNG
// rendering of ds.
func (r *Renderer) PDF(w io.Writer, kind models.ChartType, title string, ds models.Dataset) error {
	img, err := r.pngBytes(kind, title, ds)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(chartImageName, opts, bytes.NewReader(img))

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.ImageOptions(chartImageName, left, pdf.GetY()+4, pageW-left-right, 0, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	return nil
}
