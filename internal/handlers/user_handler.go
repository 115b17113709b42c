package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skumar/kirana-api/internal/middleware"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/services"
)

// UserHandler serves operator account management.
type UserHandler struct {
	svc *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserResponse
// @Router /users [get]
func (h *UserHandler) Index(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body createUserRequest true "User"
// @Success 201 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}
	if req.Role == "" {
		req.Role = models.RoleEmployee
	}

	user, err := h.svc.Create(c.Request.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user.ToResponse())
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password" binding:"required"`
}

// @Summary Change a user's password
// @Description Admins may change any password; everyone else only their own.
// @Tags Users
// @Accept json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body changePasswordRequest true "New password"
// @Success 204
// @Failure 403 {object} map[string]string
// @Router /users/{id}/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	if claims.Role != models.RoleAdmin && claims.UserID != id {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "new_password is required"})
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), id, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
