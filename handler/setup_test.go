package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	C "bizdesk/config"
	"bizdesk/handler/helpers"
	"bizdesk/model/model"
	"bizdesk/model/store"
	U "bizdesk/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testWebhookToken = "test-webhook-token"

func TestMain(m *testing.M) {
	os.Setenv("BIZDESK_WEBHOOK_AUTH_TOKEN", testWebhookToken)

	config := &C.Configuration{
		AppName:   "handler_test",
		Env:       C.DEVELOPMENT,
		DBInfo:    C.PostgresDefaultDBParams,
		RedisHost: "localhost",
		RedisPort: 6379,
	}
	if err := C.Init(config); err != nil {
		fmt.Println("Failed to initialize test config:", err)
		os.Exit(1)
	}

	C.GetServices().Db.AutoMigrate(
		&model.Agent{},
		&model.Company{},
		&model.Customer{},
		&model.CustomerAgentMapping{},
		&model.Payment{},
		&model.WorkflowRecord{},
		&model.Invoice{},
		&model.Subscription{},
		&model.MemberAccount{},
	)

	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestEngine() *gin.Engine {
	r := gin.New()
	InitAppRoutes(r)
	return r
}

func getRandomEmail() string {
	return strings.ToLower(U.RandomString(12)) + "@bizdesktest.com"
}

// createSignedInOperator provisions an operator agent and returns it
// with a valid session cookie value.
func createSignedInOperator(t *testing.T, password string) (*model.Agent, string) {
	hashedPassword, err := model.HashPassword(password)
	require.Nil(t, err)

	agent, errCode := store.GetStore().CreateAgent(&model.Agent{
		Email:    getRandomEmail(),
		Password: hashedPassword,
	})
	require.Equal(t, http.StatusCreated, errCode)

	cookieValue, err := helpers.GetAuthData(agent.Email, agent.UUID, agent.Salt, time.Hour)
	require.Nil(t, err)
	return agent, cookieValue
}

func sendRequest(t *testing.T, r *gin.Engine, method, target, cookieValue string,
	body interface{}) *httptest.ResponseRecorder {

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.Nil(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: C.GetCookieName(), Value: cookieValue})
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), out))
}
