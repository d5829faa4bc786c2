package controller

import (
	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PackController struct {
	PackService *service.PackService
}

func NewPackController(packService *service.PackService) *PackController {
	return &PackController{PackService: packService}
}

// @Summary List question packs
// @Description All packs, newest first
// @Tags packs
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} model.QuestionPack
// @Router /api/packs [get]
func (c *PackController) List(ctx *gin.Context) {
	packs, err := c.PackService.List(ctx.Request.Context())
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, packs)
}

// @Summary Create a question pack
// @Description Recomputes the mark sum over the referenced questions and rejects any mismatch before writing
// @Tags packs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param pack body service.CreatePackRequest true "Candidate pack"
// @Success 201 {object} model.QuestionPack
// @Failure 400 {object} util.ErrorResponse
// @Router /api/packs [post]
func (c *PackController) Create(ctx *gin.Context) {
	var req service.CreatePackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pack, err := c.PackService.Create(ctx.Request.Context(), &req)
	if err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}

	util.Created(ctx, pack)
}

// @Summary Update a pack
// @Description Partial-field update; creation-time invariants are not re-checked
// @Tags packs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pack id"
// @Success 200 {object} map[string]interface{}
// @Router /api/packs/{id} [patch]
func (c *PackController) Update(ctx *gin.Context) {
	id := ctx.Param("id")

	var updates map[string]interface{}
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PackService.Update(ctx.Request.Context(), id, updates); err != nil {
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}

	updates["id"] = id
	updates["success"] = true
	util.Success(ctx, updates)
}

// @Summary Delete a pack
// @Tags packs
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pack id"
// @Success 200 {object} map[string]interface{}
// @Router /api/packs/{id} [delete]
func (c *PackController) Delete(ctx *gin.Context) {
	if err := c.PackService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}

// @Summary Publish or unpublish a pack
// @Description Flips only isPublished; nothing else is touched or re-validated
// @Tags packs
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Pack id"
// @Param body body object true "{\"isPublished\": bool}"
// @Success 200 {object} map[string]interface{}
// @Router /api/packs/{id}/publish [post]
func (c *PackController) Publish(ctx *gin.Context) {
	var req struct {
		IsPublished *bool `json:"isPublished" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := ctx.Param("id")
	if err := c.PackService.SetPublished(ctx.Request.Context(), id, *req.IsPublished); err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true, "id": id, "isPublished": *req.IsPublished})
}
