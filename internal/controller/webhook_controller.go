package controller

import (
	"net/http"

	"smartexam_backend/internal/service"
	"smartexam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WebhookController struct {
	WebhookService *service.WebhookService
}

func NewWebhookController(webhookService *service.WebhookService) *WebhookController {
	return &WebhookController{WebhookService: webhookService}
}

// @Summary Payment provider webhook
// @Description Grants the purchased pack to the buyer and records the sale
// @Tags webhooks
// @Accept json
// @Produce json
// @Param notification body service.PurchaseNotification true "Checkout completion payload"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.ErrorResponse
// @Router /api/webhooks/stripe [post]
func (c *WebhookController) HandleStripe(ctx *gin.Context) {
	var n service.PurchaseNotification
	if err := ctx.ShouldBindJSON(&n); err != nil {
		util.Error(ctx, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := c.WebhookService.GrantPurchase(ctx.Request.Context(), &n); err != nil {
		if util.IsValidationError(err) {
			util.Error(ctx, http.StatusBadRequest, err.Error())
			return
		}
		util.InternalServerError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"success": true})
}
