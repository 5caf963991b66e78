package handler

import (
	"net/http"

	mid "bizdesk/middleware"

	"github.com/gin-gonic/gin"
)

// InitAppRoutes - Registers all app server routes.
func InitAppRoutes(r *gin.Engine) {
	r.Use(mid.CustomCors())

	r.GET("/status", StatusHandler)
	r.POST("/agents/signin", SigninHandler)

	// Provider callbacks authenticate with the shared webhook token,
	// not an operator session.
	r.POST("/webhooks/billing", BillingWebhookHandler)

	authorized := r.Group("/", mid.SetLoggedInAgent())
	authorized.GET("/plans", GetPlansHandler)
	authorized.POST("/companies", CreateCompanyHandler)
	authorized.POST("/payments/:payment_id/confirm", ConfirmPaymentHandler)
}

func StatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
