package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"student-data-processor/internal/model"
)

const (
	pdfRecordsPerPage = 30
	pdfRowHeight      = 20.0
	pdfMargin         = 50.0
	pdfNameWidth      = 10
)

var (
	pdfColumnX      = []float64{50, 100, 180, 260, 340, 400}
	pdfColumnLabels = []string{"ID", "First Name", "Last Name", "DOB", "Class", "Score"}
)

// pdfSink lays records out as a fixed-grid report, 30 rows per page
// with a title on the first page only. Long names are truncated so the
// columns never collide.
type pdfSink struct {
	pdf    *gofpdf.Fpdf
	path   string    // "" when writing to a caller-owned writer
	out    io.Writer // nil when writing to a file
	onPage int
}

// NewPDFSink streams a report into w. Used for in-memory exports.
func NewPDFSink(w io.Writer) Sink {
	sink := newPDFSink()
	sink.out = w
	return sink
}

// NewPDFFileSink streams a report into the file at path.
func NewPDFFileSink(path string) Sink {
	sink := newPDFSink()
	sink.path = path
	return sink
}

func newPDFSink() *pdfSink {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, pdfMargin)
	sink := &pdfSink{pdf: pdf}
	sink.startPage(true)
	return sink
}

func (p *pdfSink) startPage(first bool) {
	p.pdf.AddPage()
	y := pdfMargin

	if first {
		p.pdf.SetFont("Helvetica", "B", 16)
		p.pdf.Text(pdfMargin, y, "Student Report")
		y += pdfRowHeight * 2
	}

	p.pdf.SetFont("Helvetica", "B", 10)
	for i, label := range pdfColumnLabels {
		p.pdf.Text(pdfColumnX[i], y, label)
	}
	p.pdf.Line(pdfMargin, y+5, 545, y+5)

	p.pdf.SetFont("Helvetica", "", 9)
	p.pdf.SetXY(pdfMargin, y)
	p.onPage = 0
}

func (p *pdfSink) Write(rec model.StudentRecord) error {
	if p.onPage >= pdfRecordsPerPage {
		p.startPage(false)
	}
	p.onPage++

	y := p.pdf.GetY() + pdfRowHeight
	cells := []string{
		fmt.Sprintf("%d", rec.StudentID),
		truncate(rec.FirstName, pdfNameWidth),
		truncate(rec.LastName, pdfNameWidth),
		rec.DOB.String(),
		rec.Class,
		fmt.Sprintf("%d", rec.Score),
	}
	for i, cell := range cells {
		p.pdf.Text(pdfColumnX[i], y, cell)
	}
	p.pdf.SetXY(pdfMargin, y)

	return p.pdf.Error()
}

func (p *pdfSink) Close() (string, error) {
	if p.out != nil {
		if err := p.pdf.Output(p.out); err != nil {
			return "", fmt.Errorf("write pdf: %w", err)
		}
		return "", nil
	}
	if err := p.pdf.OutputFileAndClose(p.path); err != nil {
		return "", fmt.Errorf("save pdf: %w", err)
	}
	return p.path, nil
}

func (p *pdfSink) Abort() {
	p.pdf.Close()
	if p.path != "" {
		os.Remove(p.path)
	}
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
