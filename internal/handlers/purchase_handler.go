package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/services"
)

// PurchaseHandler serves the purchase ledger.
type PurchaseHandler struct {
	svc      *services.PurchaseService
	location *time.Location
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(svc *services.PurchaseService, location *time.Location) *PurchaseHandler {
	return &PurchaseHandler{svc: svc, location: location}
}

// @Summary Record a purchase
// @Description Appends a delivery to the ledger and raises the product's
// @Description stock by the purchased quantity in the same transaction.
// @Tags Purchases
// @Accept json
// @Produce json
// @Param purchase body services.CreatePurchaseInput true "Purchase"
// @Success 201 {object} models.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var in services.CreatePurchaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	purchase, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, purchase.ToResponse(h.location))
}

// @Summary List all purchases
// @Tags Purchases
// @Produce json
// @Success 200 {array} models.PurchaseResponse
// @Router /purchases [get]
func (h *PurchaseHandler) Index(c *gin.Context) {
	purchases, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]models.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		responses = append(responses, purchases[i].ToResponse(h.location))
	}
	c.JSON(http.StatusOK, responses)
}

// @Summary Latest purchase for a product/vendor pair
// @Description Returns null when the pair has no purchase history.
// @Tags Purchases
// @Produce json
// @Param product_id query int true "Product ID"
// @Param vendor_id query int true "Vendor ID"
// @Success 200 {object} models.PurchaseResponse
// @Router /purchases/by-product-and-vendor [get]
func (h *PurchaseHandler) LatestByProductAndVendor(c *gin.Context) {
	productID, err1 := strconv.ParseUint(c.Query("product_id"), 10, 32)
	vendorID, err2 := strconv.ParseUint(c.Query("vendor_id"), 10, 32)
	if err1 != nil || err2 != nil || productID == 0 || vendorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id and vendor_id are required"})
		return
	}

	purchase, err := h.svc.FindLatestByProductAndVendor(c.Request.Context(), uint(productID), uint(vendorID))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, purchase.ToResponse(h.location))
}

// @Summary Delete a purchase
// @Description Removes the ledger entry and reverses its stock increment
// @Description atomically.
// @Tags Purchases
// @Param id path int true "Purchase ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
