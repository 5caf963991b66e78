package handler

import (
	"net/http"
	"testing"

	"bizdesk/model/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompanyHandler(t *testing.T) {
	r := newTestEngine()
	_, cookieValue := createSignedInOperator(t, "op-password-3")

	w := sendRequest(t, r, http.MethodPost, "/companies", cookieValue, map[string]interface{}{
		"name":    "Acme GmbH",
		"plan_id": model.StarterPlanID,
		"customer": map[string]string{
			"first_name": "Ada",
			"email":      getRandomEmail(),
		},
		"create_portal_admin": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	result := model.CompanyIntakeResult{}
	decodeResponse(t, w, &result)
	require.NotNil(t, result.Company)
	assert.Equal(t, model.CompanyPaymentStatusPending, result.Company.PaymentStatus)
	require.NotNil(t, result.Payment)
	assert.Equal(t, model.PaymentStatusPending, result.Payment.Status)
	assert.Equal(t, 60.0, result.AmountDue)
}

func TestCreateCompanyHandlerUnauthenticated(t *testing.T) {
	r := newTestEngine()

	w := sendRequest(t, r, http.MethodPost, "/companies", "", map[string]interface{}{
		"name": "Anon Co",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A malformed cookie never passes the middleware.
	w = sendRequest(t, r, http.MethodPost, "/companies", "garbage", map[string]interface{}{
		"name": "Anon Co",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateCompanyHandlerValidation(t *testing.T) {
	r := newTestEngine()
	_, cookieValue := createSignedInOperator(t, "op-password-4")

	// name is required.
	w := sendRequest(t, r, http.MethodPost, "/companies", cookieValue, map[string]interface{}{
		"plan_id": model.StarterPlanID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = sendRequest(t, r, http.MethodPost, "/companies", cookieValue, map[string]interface{}{
		"name":    "Legacy Co",
		"plan_id": model.LegacyPlanID,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = sendRequest(t, r, http.MethodPost, "/companies", cookieValue, map[string]interface{}{
		"name":    "Unknown Plan Co",
		"plan_id": 99999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPlansHandler(t *testing.T) {
	r := newTestEngine()
	_, cookieValue := createSignedInOperator(t, "op-password-5")

	w := sendRequest(t, r, http.MethodGet, "/plans", cookieValue, nil)
	require.Equal(t, http.StatusOK, w.Code)

	response := struct {
		Plans []model.Plan `json:"plans"`
	}{}
	decodeResponse(t, w, &response)
	assert.Len(t, response.Plans, 3)
}
