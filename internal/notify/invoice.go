package notify

import (
	"fmt"
	"os"
	"path/filepath"

	"lokapasar-be/internal/order"
	"lokapasar-be/internal/user"

	"github.com/go-pdf/fpdf"
)

// WriteInvoicePDF renders the order invoice and writes it under dir, named
// after the invoice number. It returns the path of the written file.
func WriteInvoicePDF(dir string, o *order.Order, buyer *user.User) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+o.InvoiceNumber, false)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(33, 37, 41)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 14, "INVOICE", "", 1, "C", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Invoice no: %s", o.InvoiceNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", o.CreatedAt.Format("2 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Billed to: %s (%s)", buyer.Username, buyer.Email), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Payment: %s (%s)", o.PaymentMethod, o.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	ship := o.ShipLine1
	if o.ShipLine2 != "" {
		ship += ", " + o.ShipLine2
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Ship to: %s, %s %s, %s %s",
		ship, o.ShipCity, o.ShipState, o.ShipPostalCode, o.ShipCountry), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(70, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Seller", "1", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Unit", "1", 0, "R", true, 0, "")
	pdf.CellFormat(15, 8, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range o.Items {
		pdf.CellFormat(70, 8, item.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, item.SellerName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 8, item.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(15, 8, fmt.Sprintf("%d", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, item.LineTotal.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(150, 7, "Subtotal", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 7, o.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	if !o.Discount.IsZero() {
		label := "Discount"
		if o.CouponCode != nil {
			label = fmt.Sprintf("Discount (%s)", *o.CouponCode)
		}
		pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, "-"+o.Discount.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(150, 9, "Total", "", 0, "R", false, 0, "")
	pdf.CellFormat(30, 9, o.Total.StringFixed(2), "", 1, "R", false, 0, "")

	path := filepath.Join(dir, o.InvoiceNumber+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}
