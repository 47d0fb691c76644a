// Package report renders the completed-phase history as a PDF.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/pomo/internal/models"
	"github.com/akyairhashvil/pomo/internal/timer"
	"github.com/go-pdf/fpdf"
)

// Data is everything a report shows.
type Data struct {
	Title       string
	GeneratedAt time.Time
	Since       time.Time
	Totals      models.PhaseTotals
	Records     []models.PhaseRecord
}

// WritePDF renders d to w.
func WritePDF(w io.Writer, d Data) error {
	pdf := build(d)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// SavePDF renders d to path, creating the parent directory.
func SavePDF(path string, d Data) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := WritePDF(f, d); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// FileName is the default report name for a generation time.
func FileName(at time.Time) string {
	return fmt.Sprintf("pomodoro-%s.pdf", at.Format("2006-01-02"))
}

func build(d Data) *fpdf.Fpdf {
	title := d.Title
	if title == "" {
		title = "Pomodoro Report"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", d.GeneratedAt.Format("2006-01-02 15:04")))
	pdf.Ln(6)
	if !d.Since.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Totals since %s", d.Since.Format("2006-01-02 15:04")))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Summary
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(50, 8, "Phase", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Completed", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Time", "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for _, p := range []models.Phase{models.PhaseWork, models.PhaseBreak} {
		t := d.Totals[p]
		pdf.CellFormat(50, 8, p.Label(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", t.Count), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, timer.FormatDuration(time.Duration(t.Seconds)*time.Second), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Completed Phases")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(d.Records) == 0 {
		pdf.Cell(0, 8, "  - Nothing completed yet.")
		pdf.Ln(8)
		return pdf
	}
	for _, r := range d.Records {
		line := fmt.Sprintf("[%s]  %s  %s",
			r.CompletedAt.Local().Format("2006-01-02 15:04"),
			r.Phase.Label(),
			timer.FormatRemaining(r.Seconds))
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}
	return pdf
}
