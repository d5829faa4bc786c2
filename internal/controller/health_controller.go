package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthController struct {
	db *mongo.Database
}

func NewHealthController(db *mongo.Database) *HealthController {
	return &HealthController{db: db}
}

// @Summary Health check
// @Description Service liveness plus document store reachability
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/health [get]
func (c *HealthController) Check(ctx *gin.Context) {
	status := gin.H{
		"status":    "ok",
		"timestamp": time.Now().UnixMilli(),
	}

	if c.db == nil {
		status["database"] = "not configured"
		ctx.JSON(http.StatusOK, status)
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Client().Ping(pingCtx, readpref.Primary()); err != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	} else {
		status["database"] = "ok"
	}
	ctx.JSON(http.StatusOK, status)
}
