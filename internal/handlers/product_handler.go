package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/services"
)

// ProductHandler serves the product catalog and the counter scan endpoint.
type ProductHandler struct {
	svc *services.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// @Summary List products with vendor attribution
// @Tags Products
// @Produce json
// @Success 200 {array} models.ProductResponse
// @Router /products [get]
func (h *ProductHandler) Index(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Create a product
// @Tags Products
// @Accept json
// @Produce json
// @Param product body services.CreateProductInput true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var in services.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// @Summary Get one product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Update a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body services.CreateProductInput true "Product"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in services.CreateProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Delete a product
// @Tags Products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
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

// @Summary Resolve a scanned barcode
// @Description Looks the code up locally, then as a variable-weight EAN-13
// @Description with an embedded price, then against the remote price API. An
// @Description unknown code returns 404, with a suggestion when the remote
// @Description source knows the code.
// @Tags Products
// @Produce json
// @Param code path string true "Scanned code"
// @Success 200 {object} models.Product
// @Failure 404 {object} map[string]string
// @Router /products/scan/{code} [get]
func (h *ProductHandler) Scan(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	result, err := h.svc.Scan(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			body := gin.H{"error": "product not found"}
			if result != nil && result.Suggestion != nil {
				body["suggestion"] = result.Suggestion
			}
			c.JSON(http.StatusNotFound, body)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result.Product)
}
