package handler

import (
	"net/http"
	"strings"
	"testing"

	C "bizdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigninHandler(t *testing.T) {
	r := newTestEngine()
	agent, _ := createSignedInOperator(t, "op-password-1")

	w := sendRequest(t, r, http.MethodPost, "/agents/signin", "", map[string]string{
		"email":    agent.Email,
		"password": "op-password-1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	assert.True(t, strings.HasPrefix(setCookie, C.GetCookieName()+"="))
}

func TestSigninHandlerBadCredentials(t *testing.T) {
	r := newTestEngine()
	agent, _ := createSignedInOperator(t, "op-password-2")

	w := sendRequest(t, r, http.MethodPost, "/agents/signin", "", map[string]string{
		"email":    agent.Email,
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = sendRequest(t, r, http.MethodPost, "/agents/signin", "", map[string]string{
		"email":    getRandomEmail(),
		"password": "irrelevant",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// binding:"required" on both fields.
	w = sendRequest(t, r, http.MethodPost, "/agents/signin", "", map[string]string{
		"email": agent.Email,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
