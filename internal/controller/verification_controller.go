package controller

import (
	"net/http"
	"strconv"

	"smartexam_backend/internal/repository"
	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VerificationController struct {
	VerificationService *service.VerificationService
}

func NewVerificationController(verificationService *service.VerificationService) *VerificationController {
	return &VerificationController{VerificationService: verificationService}
}

// @Summary List verification logs
// @Description One cursor page of moderation log entries
// @Tags verification
// @Produce json
// @Security ApiKeyAuth
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param startAfter query string false "Cursor: id of the last entry of the previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} service.LogPage
// @Router /api/verification-logs [get]
func (c *VerificationController) List(ctx *gin.Context) {
	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "50"), 10, 64)

	page, err := c.VerificationService.List(ctx.Request.Context(), repository.LogQuery{
		Status:     ctx.Query("status"),
		Type:       ctx.Query("type"),
		SortBy:     ctx.DefaultQuery("sortBy", "submittedAt"),
		SortOrder:  ctx.DefaultQuery("sortOrder", "desc"),
		StartAfter: ctx.Query("startAfter"),
		Limit:      limit,
	})
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, page)
}

// @Summary Create a verification log entry
// @Tags verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param entry body service.CreateLogRequest true "Log entry"
// @Success 201 {object} model.VerificationLog
// @Failure 400 {object} util.ErrorResponse
// @Router /api/verification-logs [post]
func (c *VerificationController) Create(ctx *gin.Context) {
	var req service.CreateLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	entry, err := c.VerificationService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if util.IsValidationError(err) {
			util.Error(ctx, http.StatusBadRequest, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// @Summary Update a verification log entry
// @Description Partial update; the target id travels in the JSON body
// @Tags verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param updates body map[string]interface{} true "id plus fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /api/verification-logs [patch]
func (c *VerificationController) Update(ctx *gin.Context) {
	var body map[string]interface{}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, _ := body["id"].(string)

	updates, err := c.VerificationService.Update(ctx.Request.Context(), id, body)
	if err != nil {
		if util.IsValidationError(err) {
			util.Error(ctx, http.StatusBadRequest, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}

	resp := gin.H{"id": id, "message": "Verification log updated successfully"}
	for k, v := range updates {
		resp[k] = v
	}
	util.Success(ctx, resp)
}
