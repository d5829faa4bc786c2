package controller

import (
	"strconv"

	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary List users or user aggregates
// @Description Filtered/sorted user list, or aggregate counts only with stats=true
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Param role query string false "Filter by role"
// @Param limit query int false "Page size"
// @Param sortBy query string false "Sort field"
// @Param sortOrder query string false "asc or desc"
// @Param stats query bool false "Return aggregate counts only"
// @Success 200 {array} model.User
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	if ctx.Query("stats") == "true" {
		stats, err := c.UserService.Stats(ctx.Request.Context())
		if err != nil {
			util.InternalServerError(ctx, err)
			return
		}
		util.Success(ctx, stats)
		return
	}

	limit, _ := strconv.ParseInt(ctx.DefaultQuery("limit", "50"), 10, 64)

	users, err := c.UserService.List(ctx.Request.Context(), service.UserQuery{
		Role:      ctx.Query("role"),
		SortBy:    ctx.DefaultQuery("sortBy", "createdAt"),
		SortOrder: ctx.DefaultQuery("sortOrder", "desc"),
		Limit:     limit,
	})
	if err != nil {
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, users)
}
