package handler

import (
	"net/http"

	"bizdesk/model/model"

	"github.com/gin-gonic/gin"
)

func GetPlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": model.GetActivePlans()})
}
