package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// CustomerHandler serves purchase history grouped by customer.
type CustomerHandler struct {
	billSvc *services.BillService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(billSvc *services.BillService) *CustomerHandler {
	return &CustomerHandler{billSvc: billSvc}
}

// @Summary Bills grouped by customer
// @Description Anonymous bills land in a single walk-in bucket at the end.
// @Tags Customers
// @Produce json
// @Success 200 {array} models.CustomerHistory
// @Router /customers [get]
func (h *CustomerHandler) Index(c *gin.Context) {
	customers, err := h.billSvc.CustomerHistory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}
