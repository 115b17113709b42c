package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// ReportHandler serves downloadable report files.
type ReportHandler struct {
	svc *services.ExportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *services.ExportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func sendFile(c *gin.Context, data []byte, filename, contentType string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, data)
}

// @Summary Download the purchase ledger as XLSX
// @Tags Reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Router /reports/purchases.xlsx [get]
func (h *ReportHandler) PurchasesXLSX(c *gin.Context) {
	data, filename, err := h.svc.ExportPurchasesXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// @Summary Download all bills as CSV
// @Tags Reports
// @Produce text/csv
// @Success 200 {file} binary
// @Router /reports/sales.csv [get]
func (h *ReportHandler) SalesCSV(c *gin.Context) {
	data, filename, err := h.svc.ExportSalesCSV(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, data, filename, "text/csv")
}

// @Summary Download a sales summary PDF
// @Tags Reports
// @Produce application/pdf
// @Param period query string false "today, week, month or year (default today)"
// @Success 200 {file} binary
// @Router /reports/sales.pdf [get]
func (h *ReportHandler) SalesPDF(c *gin.Context) {
	period := c.DefaultQuery("period", "today")

	data, filename, err := h.svc.ExportSalesPDF(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, data, filename, "application/pdf")
}
