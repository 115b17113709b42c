package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// Handlers holds all handler instances
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	User     *UserHandler
	Vendor   *VendorHandler
	Product  *ProductHandler
	Purchase *PurchaseHandler
	Bill     *BillHandler
	Customer *CustomerHandler
	Report   *ReportHandler
	Sync     *SyncHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services, loc *time.Location) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(),
		Auth:     NewAuthHandler(svcs.Auth),
		User:     NewUserHandler(svcs.User),
		Vendor:   NewVendorHandler(svcs.Vendor, svcs.Payment, svcs.Ledger, loc),
		Product:  NewProductHandler(svcs.Product),
		Purchase: NewPurchaseHandler(svcs.Purchase, loc),
		Bill:     NewBillHandler(svcs.Bill, svcs.Receipt),
		Customer: NewCustomerHandler(svcs.Bill),
		Report:   NewReportHandler(svcs.Export),
		Sync:     NewSyncHandler(svcs.CatalogSync),
	}
}

// respondError maps service errors onto the `{error: message}` wire shape.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrVendorHasPurchases),
		errors.Is(err, services.ErrVendorHasProducts):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// HealthHandler serves the liveness endpoint.
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
