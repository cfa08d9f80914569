package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders a document as an A4 estimate. Section markers become bold
// group headers; the totals block closes with the deposit split.
func PDF(doc *Document, studioName string) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("no document to render")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	header := doc.CreatedAt.Format("02 Jan 2006")
	if doc.Number != "" {
		header = fmt.Sprintf("No. %s, %s", doc.Number, header)
	}
	pdf.Cell(0, 6, header)
	pdf.Ln(10)

	for _, line := range doc.Lines {
		if line.IsSection {
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.Cell(0, 7, line.Description)
			pdf.Ln(7)
			continue
		}
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(140, 6, trim(line.Description, 80))
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", line.Amount), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(140, 7, "Total")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", doc.Total), "", 0, "R", false, 0, "")
	pdf.Ln(7)

	if doc.DepositDue > 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(140, 6, "Deposit due")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", doc.DepositDue), "", 0, "R", false, 0, "")
		pdf.Ln(6)
		pdf.Cell(140, 6, "Balance due")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", doc.BalanceDue), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	if studioName != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, studioName)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render quote pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "..."
}
