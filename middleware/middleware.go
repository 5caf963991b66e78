package middleware

import (
	"net/http"
	"strings"

	C "bizdesk/config"
	"bizdesk/handler/helpers"
	"bizdesk/model/store"
	U "bizdesk/util"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// scope constants.
const SCOPE_LOGGEDIN_AGENT_UUID = "loggedInAgentUUID"
const SCOPE_LOGGEDIN_AGENT_EMAIL = "loggedInAgentEmail"

// SetLoggedInAgent - Request scope set from the session cookie. All
// intake and confirmation routes require an authenticated operator.
func SetLoggedInAgent() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieValue, err := c.Cookie(C.GetCookieName())
		if err != nil || cookieValue == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated request."})
			return
		}

		authData, err := helpers.ParseAuthData(cookieValue)
		if err != nil {
			log.WithError(err).Error("Request failed. Malformed auth data on cookie.")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated request."})
			return
		}

		agent, errCode := store.GetStore().GetAgentByUUID(authData.AgentUUID)
		if errCode != http.StatusFound {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated request."})
			return
		}

		email, err := helpers.ParseAndDecryptProtectedFields(agent.Salt, authData.ProtectedFields)
		if err != nil || !strings.EqualFold(email, agent.Email) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired."})
			return
		}

		U.SetScope(c, SCOPE_LOGGEDIN_AGENT_UUID, agent.UUID)
		U.SetScope(c, SCOPE_LOGGEDIN_AGENT_EMAIL, agent.Email)

		c.Next()
	}
}

// CustomCors for customised cors configuration based on conditions.
func CustomCors() gin.HandlerFunc {
	return func(c *gin.Context) {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowCredentials = true

		if C.IsDevelopment() {
			corsConfig.AllowOrigins = []string{"http://localhost:8080", "http://localhost:3000"}
		} else {
			corsConfig.AllowOrigins = []string{C.GetProtocol() + C.GetAPPDomain()}
		}

		cors.New(corsConfig)(c)
		c.Next()
	}
}
