package handler

import (
	"net/http"
	"time"

	C "bizdesk/config"
	"bizdesk/handler/helpers"
	"bizdesk/model/model"
	"bizdesk/model/store"
	U "bizdesk/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SigninHandler - Operator login. Sets the session cookie used by all
// authorized routes.
func SigninHandler(c *gin.Context) {
	type signinParams struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	params := signinParams{}
	if err := c.BindJSON(&params); err != nil {
		log.WithError(err).Error("Failed to parse SigninParams")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid signin payload."})
		return
	}

	agent, errCode := store.GetStore().GetAgentByEmail(params.Email)
	if errCode == http.StatusInternalServerError {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if errCode != http.StatusFound || agent.Password == "" ||
		!model.IsPasswordAndHashEqual(params.Password, agent.Password) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password."})
		return
	}

	authToken, err := helpers.GetAuthData(agent.Email, agent.UUID, agent.Salt,
		helpers.SecondsInOneMonth*time.Second)
	if err != nil {
		log.WithError(err).WithField("email", agent.Email).Error("Failed to create agent auth token.")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	store.GetStore().UpdateAgentLastLoginInfo(agent.UUID, U.TimeNowZ())

	c.SetCookie(C.GetCookieName(), authToken, helpers.SecondsInOneMonth, "/", "",
		!C.IsDevelopment(), true)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
