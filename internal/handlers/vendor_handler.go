package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/services"
)

// VendorHandler serves the vendor directory, the per-vendor payment log and
// the derived outstanding balance.
type VendorHandler struct {
	vendorSvc  *services.VendorService
	paymentSvc *services.PaymentService
	ledgerSvc  *services.LedgerService
	location   *time.Location
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorSvc *services.VendorService, paymentSvc *services.PaymentService, ledgerSvc *services.LedgerService, location *time.Location) *VendorHandler {
	return &VendorHandler{
		vendorSvc:  vendorSvc,
		paymentSvc: paymentSvc,
		ledgerSvc:  ledgerSvc,
		location:   location,
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// @Summary List vendors
// @Tags Vendors
// @Produce json
// @Success 200 {array} models.Vendor
// @Router /vendors [get]
func (h *VendorHandler) Index(c *gin.Context) {
	vendors, err := h.vendorSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// @Summary List vendors that have products assigned
// @Tags Vendors
// @Produce json
// @Success 200 {array} models.Vendor
// @Router /vendors/with-products [get]
func (h *VendorHandler) WithProducts(c *gin.Context) {
	vendors, err := h.vendorSvc.ListWithProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

// @Summary Create a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param vendor body models.Vendor true "Vendor"
// @Success 201 {object} models.Vendor
// @Failure 400 {object} map[string]string
// @Router /vendors [post]
func (h *VendorHandler) Create(c *gin.Context) {
	var vendor models.Vendor
	if err := c.ShouldBindJSON(&vendor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.vendorSvc.Create(c.Request.Context(), &vendor); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, vendor)
}

// @Summary Get one vendor
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} models.Vendor
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [get]
func (h *VendorHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	vendor, err := h.vendorSvc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// @Summary Update a vendor
// @Tags Vendors
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param vendor body models.Vendor true "Vendor"
// @Success 200 {object} models.Vendor
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [put]
func (h *VendorHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in models.Vendor
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	vendor, err := h.vendorSvc.Update(c.Request.Context(), id, &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendor)
}

// @Summary Delete a vendor
// @Description Fails while purchases or products still reference the vendor.
// @Tags Vendors
// @Param id path int true "Vendor ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /vendors/{id} [delete]
func (h *VendorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.vendorSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get a vendor's outstanding balance
// @Tags Vendors
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {object} models.VendorBalance
// @Router /vendors/{id}/balance [get]
func (h *VendorHandler) Balance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	balance, err := h.ledgerSvc.GetVendorBalance(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, balance)
}

// @Summary List a vendor's payments
// @Tags Payments
// @Produce json
// @Param id path int true "Vendor ID"
// @Success 200 {array} models.VendorPaymentResponse
// @Router /vendors/{id}/payments [get]
func (h *VendorHandler) Payments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentSvc.ListByVendor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.VendorPaymentResponse, 0, len(payments))
	for i := range payments {
		responses = append(responses, payments[i].ToResponse(h.location))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Record a payment to a vendor
// @Tags Payments
// @Accept json
// @Produce json
// @Param id path int true "Vendor ID"
// @Param payment body services.CreatePaymentInput true "Payment"
// @Success 201 {object} models.VendorPaymentResponse
// @Failure 400 {object} map[string]string
// @Router /vendors/{id}/payments [post]
func (h *VendorHandler) CreatePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in services.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	payment, err := h.paymentSvc.Create(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment.ToResponse(h.location))
}

// @Summary Delete a vendor payment
// @Description Removing a payment raises the vendor's outstanding balance by
// @Description exactly the deleted amount. No other record is touched.
// @Tags Payments
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /payments/{id} [delete]
func (h *VendorHandler) DeletePayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
