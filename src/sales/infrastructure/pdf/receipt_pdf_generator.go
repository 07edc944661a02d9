package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"github.com/iquintero24/Firmeza-project/src/sales/domain/entity"
	"github.com/iquintero24/Firmeza-project/src/sales/domain/port"
)

// ReceiptPDFGenerator renderiza el recibo de una venta como PDF en disco.
// El layout reproduce el recibo impreso de caja: encabezado con fecha,
// número de recibo y cliente, tabla de productos y bloque de totales.
type ReceiptPDFGenerator struct {
	outputDir string
	baseURL   string
}

// NewReceiptPDFGenerator crea el generador. outputDir se crea si no existe;
// baseURL es el prefijo público bajo el que se sirven los recibos.
func NewReceiptPDFGenerator(outputDir, baseURL string) (port.ReceiptRenderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating receipt directory %s: %w", outputDir, err)
	}

	return &ReceiptPDFGenerator{
		outputDir: outputDir,
		baseURL:   baseURL,
	}, nil
}

// Render escribe Receipt_<número>.pdf y retorna su locator público
func (g *ReceiptPDFGenerator) Render(sale *entity.Sale) (string, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetMargins(15, 15, 15)
	doc.AddPage()

	// Encabezado
	doc.SetFont("Helvetica", "B", 18)
	doc.CellFormat(0, 10, "Firmeza", "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 6, "Materiales de construccion", "", 1, "C", false, 0, "")
	doc.Ln(6)

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", sale.SaleDate.Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Recibo No: %s", sale.ReceiptNumber), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 6, fmt.Sprintf("Cliente: %s", sale.CustomerName), "", 1, "L", false, 0, "")
	doc.Ln(6)

	// Tabla de productos
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(230, 230, 230)
	doc.CellFormat(80, 8, "Producto", "1", 0, "L", true, 0, "")
	doc.CellFormat(25, 8, "Cantidad", "1", 0, "C", true, 0, "")
	doc.CellFormat(35, 8, "Precio Unit.", "1", 0, "R", true, 0, "")
	doc.CellFormat(40, 8, "Subtotal", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	for _, d := range sale.Details {
		doc.CellFormat(80, 7, d.ProductName, "1", 0, "L", false, 0, "")
		doc.CellFormat(25, 7, fmt.Sprintf("%d", d.Quantity), "1", 0, "C", false, 0, "")
		doc.CellFormat(35, 7, fmt.Sprintf("$%s", d.AppliedUnitPrice.StringFixed(2)), "1", 0, "R", false, 0, "")
		doc.CellFormat(40, 7, fmt.Sprintf("$%s", d.Extension().StringFixed(2)), "1", 1, "R", false, 0, "")
	}
	doc.Ln(4)

	// Totales
	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(140, 7, "Subtotal:", "", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("$%s", sale.Subtotal.StringFixed(2)), "", 1, "R", false, 0, "")
	doc.CellFormat(140, 7, "IVA:", "", 0, "R", false, 0, "")
	doc.CellFormat(40, 7, fmt.Sprintf("$%s", sale.Tax.StringFixed(2)), "", 1, "R", false, 0, "")
	doc.SetFont("Helvetica", "B", 12)
	doc.CellFormat(140, 8, "Total:", "", 0, "R", false, 0, "")
	doc.CellFormat(40, 8, fmt.Sprintf("$%s", sale.Total.StringFixed(2)), "", 1, "R", false, 0, "")

	doc.Ln(10)
	doc.SetFont("Helvetica", "I", 9)
	doc.CellFormat(0, 6, "Gracias por su compra", "", 1, "C", false, 0, "")

	fileName := fmt.Sprintf("Receipt_%s.pdf", sale.ReceiptNumber)
	fullPath := filepath.Join(g.outputDir, fileName)

	if err := doc.OutputFileAndClose(fullPath); err != nil {
		return "", fmt.Errorf("error writing receipt PDF %s: %w", fullPath, err)
	}

	return g.baseURL + "/" + fileName, nil
}
