package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// BillHandler serves checkout, recent bills, receipts and sales analytics.
type BillHandler struct {
	billSvc    *services.BillService
	receiptSvc *services.ReceiptService
}

// NewBillHandler creates a new bill handler
func NewBillHandler(billSvc *services.BillService, receiptSvc *services.ReceiptService) *BillHandler {
	return &BillHandler{billSvc: billSvc, receiptSvc: receiptSvc}
}

// @Summary Create a bill
// @Description Prices each line from the current product price and decrements
// @Description stock per item. The whole bill commits or nothing does.
// @Tags Bills
// @Accept json
// @Produce json
// @Param bill body services.CreateBillInput true "Bill"
// @Success 201 {object} models.Bill
// @Failure 400 {object} map[string]string
// @Router /bills [post]
func (h *BillHandler) Create(c *gin.Context) {
	var in services.CreateBillInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	bill, err := h.billSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bill)
}

// @Summary List recent bills
// @Tags Bills
// @Produce json
// @Param limit query int false "Max bills to return (default 50)"
// @Success 200 {array} models.Bill
// @Router /bills [get]
func (h *BillHandler) Index(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	bills, err := h.billSvc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// @Summary Get one bill
// @Tags Bills
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} models.Bill
// @Failure 404 {object} map[string]string
// @Router /bills/{id} [get]
func (h *BillHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	bill, err := h.billSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// @Summary Download a bill's receipt as PDF
// @Tags Bills
// @Produce application/pdf
// @Param id path int true "Bill ID"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /bills/{id}/receipt.pdf [get]
func (h *BillHandler) Receipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pdf, err := h.receiptSvc.Render(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt_%d.pdf", id))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// @Summary Sales analytics for a period
// @Tags Analytics
// @Produce json
// @Param period query string false "today, week, month or year (default today)"
// @Success 200 {object} models.SalesAnalytics
// @Router /bills/analytics [get]
func (h *BillHandler) Analytics(c *gin.Context) {
	period := c.DefaultQuery("period", "today")

	analytics, err := h.billSvc.Analytics(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// @Summary Per-day sales for the last N days
// @Tags Analytics
// @Produce json
// @Param days query int false "Days to cover (default 30)"
// @Success 200 {array} models.DailySales
// @Router /bills/daily-sales [get]
func (h *BillHandler) DailySales(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	sales, err := h.billSvc.DailySales(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sales)
}

// @Summary Revenue-ranked products for a period
// @Tags Analytics
// @Produce json
// @Param period query string false "today, week, month or year (default today)"
// @Param limit query int false "Max products (default 10)"
// @Success 200 {array} models.TopProduct
// @Router /bills/top-products [get]
func (h *BillHandler) TopProducts(c *gin.Context) {
	period := c.DefaultQuery("period", "today")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.billSvc.TopProducts(c.Request.Context(), period, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}
