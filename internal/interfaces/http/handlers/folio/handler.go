// Package folio exposes the folio workflow operations over HTTP.
package folio

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"folios/internal/application/folio/usecases"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
	"folios/internal/shared/utils"
)

type Handler struct {
	listFoliosUC  usecases.ListFoliosExecutor
	getFolioUC    usecases.GetFolioExecutor
	createFolioUC usecases.CreateFolioExecutor
	updateFolioUC usecases.UpdateFolioExecutor
	deleteFolioUC usecases.DeleteFolioExecutor
	assignUC      usecases.AssignResponsibleExecutor
	unassignUC    usecases.UnassignResponsibleExecutor
	addResponseUC usecases.AddResponseExecutor
	logger        logger.Interface
}

func NewHandler(
	listFoliosUC usecases.ListFoliosExecutor,
	getFolioUC usecases.GetFolioExecutor,
	createFolioUC usecases.CreateFolioExecutor,
	updateFolioUC usecases.UpdateFolioExecutor,
	deleteFolioUC usecases.DeleteFolioExecutor,
	assignUC usecases.AssignResponsibleExecutor,
	unassignUC usecases.UnassignResponsibleExecutor,
	addResponseUC usecases.AddResponseExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		listFoliosUC:  listFoliosUC,
		getFolioUC:    getFolioUC,
		createFolioUC: createFolioUC,
		updateFolioUC: updateFolioUC,
		deleteFolioUC: deleteFolioUC,
		assignUC:      assignUC,
		unassignUC:    unassignUC,
		addResponseUC: addResponseUC,
		logger:        log,
	}
}

// ListFolios handles GET /folios
func (h *Handler) ListFolios(c *gin.Context) {
	p := utils.ParsePagination(c)
	query := usecases.ListFoliosQuery{
		Priority:     c.Query("priority"),
		EmployeeCode: c.Query("employee_code"),
		Page:         p.Page,
		PageSize:     p.PageSize,
	}

	result, err := h.listFoliosUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetFolio handles GET /folios/:id
func (h *Handler) GetFolio(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getFolioUC.Execute(c.Request.Context(), usecases.GetFolioQuery{FolioID: folioID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateFolio handles POST /folios
func (h *Handler) CreateFolio(c *gin.Context) {
	var req CreateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create folio", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createFolioUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Folio, "Folio created successfully")
}

// UpdateFolio handles PUT /folios/:id
func (h *Handler) UpdateFolio(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateFolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateFolioUC.Execute(c.Request.Context(), req.ToCommand(folioID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Folio updated successfully", result.Folio)
}

// DeleteFolio handles DELETE /folios/:id
func (h *Handler) DeleteFolio(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteFolioUC.Execute(c.Request.Context(), usecases.DeleteFolioCommand{FolioID: folioID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Folio deleted successfully", nil)
}

// AssignResponsible handles POST /folios/:id/assignees
func (h *Handler) AssignResponsible(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignResponsibleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignResponsibleCommand{
		FolioID: folioID,
		UserID:  req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Assignment, "Responsible assigned successfully")
}

// UnassignResponsible handles DELETE /folios/:id/assignees/:userId
func (h *Handler) UnassignResponsible(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("user ID must be an integer"))
		return
	}

	if err := h.unassignUC.Execute(c.Request.Context(), usecases.UnassignResponsibleCommand{
		FolioID: folioID,
		UserID:  userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Responsible unassigned successfully", nil)
}

// AddResponse handles POST /folios/:id/responses
func (h *Handler) AddResponse(c *gin.Context) {
	folioID, err := parseFolioID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.addResponseUC.Execute(c.Request.Context(), usecases.AddResponseCommand{
		FolioID:      folioID,
		Body:         req.Body,
		AuthorUserID: req.AuthorUserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Response, "Response added successfully")
}

func parseFolioID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.NewValidationError("folio ID must be a positive integer")
	}
	return id, nil
}
