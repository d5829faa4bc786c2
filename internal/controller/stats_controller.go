package controller

import (
	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	StatsService *service.StatsService
}

func NewStatsController(statsService *service.StatsService) *StatsController {
	return &StatsController{StatsService: statsService}
}

// @Summary Dashboard statistics
// @Description Marketplace counts, activity windows, mean pack price, revenue and engagement estimates in one payload
// @Tags stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} service.Dashboard
// @Router /api/stats [get]
func (c *StatsController) GetDashboard(ctx *gin.Context) {
	dashboard, err := c.StatsService.GetDashboard(ctx.Request.Context())
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, dashboard)
}
