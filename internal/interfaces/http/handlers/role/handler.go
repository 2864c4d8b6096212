// Package role exposes role management over HTTP.
package role

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	roleapp "folios/internal/application/role"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
	"folios/internal/shared/utils"
)

type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

type Handler struct {
	service *roleapp.Service
	logger  logger.Interface
}

func NewHandler(service *roleapp.Service, log logger.Interface) *Handler {
	return &Handler{service: service, logger: log}
}

// ListRoles handles GET /roles
func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.List(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", roles)
}

// GetRole handles GET /roles/:id
func (h *Handler) GetRole(c *gin.Context) {
	roleID, err := parseRoleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	r, err := h.service.Get(c.Request.Context(), roleID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", r)
}

// CreateRole handles POST /roles
func (h *Handler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	r, err := h.service.Create(c.Request.Context(), req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, r, "Role created successfully")
}

// UpdateRole handles PUT /roles/:id
func (h *Handler) UpdateRole(c *gin.Context) {
	roleID, err := parseRoleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	r, err := h.service.Update(c.Request.Context(), roleID, req.Name)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", r)
}

// DeleteRole handles DELETE /roles/:id
func (h *Handler) DeleteRole(c *gin.Context) {
	roleID, err := parseRoleID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), roleID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Role deleted successfully", nil)
}

func parseRoleID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewValidationError("role ID must be a positive integer")
	}
	return id, nil
}
