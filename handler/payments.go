package handler

import (
	"net/http"
	"time"

	"bizdesk/cache"
	C "bizdesk/config"
	"bizdesk/model/store"
	U "bizdesk/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const webhookEventDedupeExpiry = 24 * time.Hour

// ConfirmPaymentHandler - Operator "mark as paid" action. Safe to call
// more than once with the same payment id.
func ConfirmPaymentHandler(c *gin.Context) {
	paymentID := c.Param("payment_id")
	if !U.IsValidUUID(paymentID) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id."})
		return
	}

	type confirmParams struct {
		ProviderRef string `json:"provider_ref"`
	}
	params := confirmParams{}
	// Body is optional on manual confirmation.
	c.ShouldBindJSON(&params)

	response, errCode := store.GetStore().ConfirmPayment(paymentID, params.ProviderRef)
	if errCode != http.StatusOK {
		c.JSON(errCode, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

type billingWebhookParams struct {
	EventID       string `json:"event_id"`
	EventType     string `json:"event_type"`
	PaymentID     string `json:"payment_id"`
	TransactionID string `json:"transaction_id"`
}

// BillingWebhookHandler - Payment provider callback. Deliveries are
// at least once and possibly out of order; the redis dedupe is only a
// fast path, correctness comes from the store's idempotency keys.
func BillingWebhookHandler(c *gin.Context) {
	token := C.GetWebhookAuthToken()
	if token == "" || c.Request.Header.Get("Authorization") != token {
		log.Error("Billing webhook request failed with auth failure.")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid webhook token."})
		return
	}

	params := billingWebhookParams{}
	if err := c.BindJSON(&params); err != nil {
		log.WithError(err).Error("Failed to parse billing webhook payload.")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload."})
		return
	}

	if params.EventID != "" {
		isFirstDelivery, err := cache.SetIfNotExists("webhook:billing:"+params.EventID,
			webhookEventDedupeExpiry)
		if err != nil {
			// Fail open. The confirmation path is idempotent anyway.
			log.WithError(err).Error("Webhook dedupe cache unavailable.")
		} else if !isFirstDelivery {
			c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
			return
		}
	}

	if params.EventType != "payment_succeeded" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	if !U.IsValidUUID(params.PaymentID) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid payment id."})
		return
	}

	response, errCode := store.GetStore().ConfirmPayment(params.PaymentID, params.TransactionID)
	if errCode != http.StatusOK {
		// Non-2xx makes the provider redeliver; retries are safe.
		c.JSON(errCode, response)
		return
	}

	c.JSON(http.StatusOK, response)
}
