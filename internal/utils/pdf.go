package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/ardiansyah-dp/buku-tamu-backend/internal/model"
	"github.com/jung-kurt/gofpdf"
)

// GenerateGuestReportPDF membuat laporan buku tamu dalam format A4 landscape.
func GenerateGuestReportPDF(guests []*model.Guest, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// ─────────────────────────────────────────
	// HEADER
	// ─────────────────────────────────────────
	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 8, "LAPORAN BUKU TAMU", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, fmt.Sprintf("Dicetak: %s", generatedAt.Format("02 Jan 2006 15:04")), "", 1, "C", false, 0, "")

	pdf.SetDrawColor(0, 51, 102)
	pdf.SetLineWidth(0.8)
	pdf.Line(15, pdf.GetY()+3, 282, pdf.GetY()+3)
	pdf.Ln(8)

	// ─────────────────────────────────────────
	// TABEL KUNJUNGAN
	// ─────────────────────────────────────────
	headers := []string{"No", "Nama Lengkap", "JK", "Tanggal", "Dituju", "Keperluan", "No HP"}
	widths := []float64{12, 60, 12, 28, 45, 75, 35}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 236, 245)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for i, g := range guests {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, g.NamaLengkap, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, g.JenisKelamin, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 7, g.TanggalKehadiran.Format("02-01-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 7, derefOr(g.Dituju, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[5], 7, derefOr(g.Keperluan, "-"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 7, derefOr(g.NoHP, "-"), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if len(guests) == 0 {
		pdf.CellFormat(267, 7, "Belum ada data kunjungan", "1", 1, "C", false, 0, "")
	}

	pdf.Ln(5)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total kunjungan: %d", len(guests)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gagal generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
