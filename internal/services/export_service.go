package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/skumar/kirana-api/internal/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService produces downloadable reports: the purchase ledger as XLSX,
// sales as CSV and a period summary as PDF.
type ExportService struct {
	purchaseRepo repository.PurchaseRepository
	billRepo     repository.BillRepository
	billSvc      *BillService
	location     *time.Location
}

// NewExportService creates a new export service
func NewExportService(purchaseRepo repository.PurchaseRepository, billRepo repository.BillRepository, billSvc *BillService, location *time.Location) *ExportService {
	return &ExportService{
		purchaseRepo: purchaseRepo,
		billRepo:     billRepo,
		billSvc:      billSvc,
		location:     location,
	}
}

// ExportPurchasesXLSX renders the full purchase ledger, newest first.
func (s *ExportService) ExportPurchasesXLSX(ctx context.Context) ([]byte, string, error) {
	purchases, err := s.purchaseRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Purchases"
	_ = f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	headers := []string{"ID", "Date", "Vendor", "Product", "Quantity", "Unit Price", "Total"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
		_ = f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for row, p := range purchases {
		values := []interface{}{
			p.ID,
			p.PurchasedAt.In(s.location).Format("2006-01-02"),
			p.Vendor.Name,
			p.Product.Name,
			p.Quantity,
			p.Price.StringFixed(2),
			p.Total().StringFixed(2),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("purchases_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportSalesCSV renders all bills, newest first.
func (s *ExportService) ExportSalesCSV(ctx context.Context) ([]byte, string, error) {
	bills, err := s.billRepo.FindAll(ctx)
	if err != nil {
		return nil, "", err
	}

	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	_ = w.Write([]string{"ID", "Receipt", "Date", "Customer", "Phone", "Payment Method", "Total"})
	for i := range bills {
		b := bills[i]
		_ = w.Write([]string{
			fmt.Sprintf("%d", b.ID),
			b.ReceiptNumber,
			b.CreatedAt.In(s.location).Format("2006-01-02 15:04"),
			deref(b.CustomerName),
			deref(b.CustomerPhone),
			b.PaymentMethod,
			b.Total.StringFixed(2),
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales_%s.csv", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

// ExportSalesPDF renders a one-page summary of the named period.
func (s *ExportService) ExportSalesPDF(ctx context.Context, period string) ([]byte, string, error) {
	analytics, err := s.billSvc.Analytics(ctx, period)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Sales Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	rows := [][2]string{
		{"Period", analytics.Period},
		{"Generated", time.Now().In(s.location).Format("02 Jan 2006 15:04")},
		{"Transactions", fmt.Sprintf("%d", analytics.TotalTransactions)},
		{"Total Sales", analytics.TotalSales.StringFixed(2)},
		{"Average Transaction", analytics.AvgTransactionValue.StringFixed(2)},
		{"Smallest Transaction", analytics.MinTransaction.StringFixed(2)},
		{"Largest Transaction", analytics.MaxTransaction.StringFixed(2)},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("sales_summary_%s.pdf", time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}
