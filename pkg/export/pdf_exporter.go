package export

import (
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 10.0
	pdfRowHeight  = 7.0
	pdfMinColumn  = 12.0
	landscapeCols = 5
)

// PDFExporter lays a dataset out as a bordered A4 table with a title, a row
// count and page numbers.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// Render draws the table. More than five columns switch to landscape and
// column widths follow the longest cell of each column.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if err := data.check(FormatPDF); err != nil {
		return nil, err
	}
	orientation := "P"
	if len(data.Headers) > landscapeCols {
		orientation = "L"
	}
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetMargins(pdfMargin, 15, pdfMargin)
	pdf.SetAutoPageBreak(true, 15)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	records := data.Records()
	widths := columnWidths(data.Headers, records, pageWidth-2*pdfMargin)
	stamp := e.now().Format("2006-01-02 15:04")

	header := func() {
		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(225, 230, 240)
		for i, h := range data.Headers {
			pdf.CellFormat(widths[i], 8, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 9)
	}
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, fmt.Sprintf("%s  |  page %d", stamp, pdf.PageNo()), "", 0, "R", false, 0, "")
	})
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	pdf.AddPage()
	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	}
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d records", len(records)), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	header()

	for n, cells := range records {
		fill := n%2 == 1
		pdf.SetFillColor(245, 245, 245)
		for i, cell := range cells {
			pdf.CellFormat(widths[i], pdfRowHeight, tr(cell), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths splits total across columns in proportion to their longest
// value, never below pdfMinColumn.
func columnWidths(headers []string, records [][]string, total float64) []float64 {
	longest := make([]int, len(headers))
	sum := 0
	for i, h := range headers {
		longest[i] = utf8.RuneCountInString(h)
		for _, r := range records {
			if n := utf8.RuneCountInString(r[i]); n > longest[i] {
				longest[i] = n
			}
		}
		sum += longest[i]
	}

	widths := make([]float64, len(headers))
	if sum == 0 {
		for i := range widths {
			widths[i] = total / float64(len(headers))
		}
		return widths
	}
	used := 0.0
	flexible := 0
	for i, n := range longest {
		widths[i] = total * float64(n) / float64(sum)
		if widths[i] < pdfMinColumn {
			widths[i] = pdfMinColumn
			used += pdfMinColumn
			continue
		}
		flexible += n
	}
	if flexible == 0 {
		return widths
	}
	rest := total - used
	for i, n := range longest {
		if widths[i] > pdfMinColumn {
			widths[i] = rest * float64(n) / float64(flexible)
		}
	}
	return widths
}
