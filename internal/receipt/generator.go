package receipt

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"github.com/talkincode/tillpos/internal/domain"
)

const (
	titleLine  = "---- Purchase Receipt ----"
	footerLine = "Thank you for your purchase!"

	leftMargin = 72.0
	topMargin  = 72.0
	lineHeight = 20.0
)

// Render produces the receipt document as ordered text lines: title, date,
// one line per sold item, grand total, footer. Pure formatting, no
// validation.
func Render(lines []domain.ReceiptLine, total decimal.Decimal, issuedAt time.Time) []string {
	out := make([]string, 0, len(lines)+4)
	out = append(out, titleLine)
	out = append(out, "Date: "+issuedAt.Format(domain.TimeLayout))
	for _, line := range lines {
		out = append(out, fmt.Sprintf("Product: %s, Quantity: %d, Price: %s, Total: %s",
			line.Name, line.Quantity,
			domain.FormatCOP(line.UnitPrice), domain.FormatCOP(line.LineTotal)))
	}
	out = append(out, "Purchase total: "+domain.FormatCOP(total))
	out = append(out, footerLine)
	return out
}

// Generator writes receipts to a fixed PDF file, overwritten on every sale.
type Generator struct {
	path string
}

// NewGenerator creates a receipt generator targeting the given file path.
func NewGenerator(path string) *Generator {
	return &Generator{path: path}
}

// Path returns the receipt file location.
func (g *Generator) Path() string {
	return g.path
}

// Write renders the receipt to a single letter-sized PDF page. A write
// failure is reported to the caller but never rolls back the sale that
// produced the receipt.
func (g *Generator) Write(lines []domain.ReceiptLine, total decimal.Decimal, issuedAt time.Time) error {
	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	y := topMargin
	for _, line := range Render(lines, total, issuedAt) {
		pdf.Text(leftMargin, y, line)
		y += lineHeight
	}
	if err := pdf.OutputFileAndClose(g.path); err != nil {
		return fmt.Errorf("write receipt %s: %w", g.path, err)
	}
	return nil
}
