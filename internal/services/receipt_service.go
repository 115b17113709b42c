package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
)

// ReceiptService renders a bill as a thermal-style receipt PDF. The PDF is
// returned as bytes; sending it to a printer is the caller's problem.
type ReceiptService struct {
	billSvc   *BillService
	storeName string
	location  *time.Location
}

// NewReceiptService creates a new receipt service
func NewReceiptService(billSvc *BillService, storeName string, location *time.Location) *ReceiptService {
	if storeName == "" {
		storeName = "Kirana POS"
	}
	return &ReceiptService{billSvc: billSvc, storeName: storeName, location: location}
}

var receiptTemplate = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: monospace; width: 280px; margin: 0 auto; font-size: 12px; }
  h1 { font-size: 16px; text-align: center; margin: 4px 0; }
  .meta { text-align: center; margin-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; }
  td { padding: 2px 0; }
  td.amount { text-align: right; }
  .rule { border-top: 1px dashed #000; }
  .total td { font-weight: bold; border-top: 1px solid #000; }
  .footer { text-align: center; margin-top: 10px; }
</style>
</head>
<body>
<h1>{{.StoreName}}</h1>
<div class="meta">
  Receipt #{{.ReceiptNumber}}<br>
  {{.Date}}
</div>
<table>
{{range .Items}}
  <tr>
    <td>{{.Name}} x{{.Quantity}}</td>
    <td class="amount">{{.Subtotal}}</td>
  </tr>
{{end}}
  <tr class="total">
    <td>TOTAL</td>
    <td class="amount">{{.Total}}</td>
  </tr>
  <tr>
    <td>Paid by</td>
    <td class="amount">{{.PaymentMethod}}</td>
  </tr>
</table>
<div class="footer">Thank you, visit again!</div>
</body>
</html>`))

type receiptLine struct {
	Name     string
	Quantity int
	Subtotal string
}

type receiptData struct {
	StoreName     string
	ReceiptNumber string
	Date          string
	Items         []receiptLine
	Total         string
	PaymentMethod string
}

// Render produces the receipt PDF for a bill.
func (s *ReceiptService) Render(ctx context.Context, billID uint) ([]byte, error) {
	bill, err := s.billSvc.FindByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	data := receiptData{
		StoreName:     s.storeName,
		ReceiptNumber: bill.ReceiptNumber,
		Date:          bill.CreatedAt.In(s.location).Format("02 Jan 2006 15:04"),
		Total:         bill.Total.StringFixed(2),
		PaymentMethod: bill.PaymentMethod,
	}
	for i := range bill.Items {
		item := bill.Items[i]
		name := fmt.Sprintf("Item %d", item.ProductID)
		if item.Product.ID != 0 {
			name = item.Product.Name
		}
		data.Items = append(data.Items, receiptLine{
			Name:     name,
			Quantity: item.Quantity,
			Subtotal: item.Subtotal.StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render receipt template: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(buf.Bytes()))
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}

	return pdfg.Bytes(), nil
}
