package controller

import (
	"errors"

	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"
	"smartexam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService *service.AIService
}

func NewAIController(aiService *service.AIService) *AIController {
	return &AIController{AIService: aiService}
}

// @Summary Generate draft questions
// @Description Calls the completion model and returns a bare array of draft question objects for review; nothing is persisted
// @Tags ai
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body service.GenerateRequest true "Generation parameters"
// @Success 200 {array} object
// @Failure 400 {object} util.ErrorResponse
// @Failure 503 {object} util.ErrorResponse
// @Router /api/ai/generate [post]
func (c *AIController) Generate(ctx *gin.Context) {
	var req service.GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	drafts, err := c.AIService.GenerateDrafts(ctx.Request.Context(), &req)
	if err != nil {
		monitoring.AIGenerationCounter.WithLabelValues("error").Inc()

		if errors.Is(err, util.ErrNotConfigured) {
			util.NotConfigured(ctx, "AI API key")
			return
		}
		if util.IsValidationError(err) {
			util.BadRequest(ctx, err.Error())
			return
		}

		// Pass upstream status (including 429) and details through verbatim.
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			payload := gin.H{"error": upstream.Message}
			if upstream.Details != nil {
				payload["details"] = upstream.Details
			}
			if upstream.RetryAfterSeconds > 0 {
				payload["retryAfterSeconds"] = upstream.RetryAfterSeconds
			}
			ctx.JSON(upstream.Status, payload)
			return
		}

		util.InternalServerError(ctx, err)
		return
	}

	monitoring.AIGenerationCounter.WithLabelValues("success").Inc()
	util.Success(ctx, drafts)
}
