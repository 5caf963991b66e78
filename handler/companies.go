package handler

import (
	"net/http"

	mid "bizdesk/middleware"
	"bizdesk/model/model"
	"bizdesk/model/store"
	U "bizdesk/util"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type intakeCustomerParams struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
}

type createCompanyParams struct {
	Name      string `json:"name" binding:"required"`
	LegalName string `json:"legal_name"`

	PlanID   uint64   `json:"plan_id"`
	AddOnIDs []string `json:"add_on_ids"`

	Customer         *intakeCustomerParams `json:"customer"`
	CustomerPassword string                `json:"customer_password"`

	CreatePortalAdmin bool `json:"create_portal_admin"`
	SendWelcomeEmail  bool `json:"send_welcome_email"`
}

// CreateCompanyHandler - Intake entry point behind the operator form.
// Creates the company and, with a plan, stages the provisioning
// workflow; nothing is invoiced or provisioned until the payment is
// confirmed.
func CreateCompanyHandler(c *gin.Context) {
	agentUUID := U.GetScopeByKeyAsString(c, mid.SCOPE_LOGGEDIN_AGENT_UUID)
	if agentUUID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthenticated request."})
		return
	}

	params := createCompanyParams{}
	if err := c.BindJSON(&params); err != nil {
		log.WithError(err).Error("Failed to parse CreateCompanyParams")
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid company payload."})
		return
	}

	intakeParams := &model.CompanyIntakeParams{
		Company: &model.Company{
			Name:      params.Name,
			LegalName: params.LegalName,
		},
		PlanID:            params.PlanID,
		AddOnIDs:          params.AddOnIDs,
		CustomerPassword:  params.CustomerPassword,
		CreatePortalAdmin: params.CreatePortalAdmin,
		SendWelcomeEmail:  params.SendWelcomeEmail,
	}
	if params.Customer != nil {
		intakeParams.Customer = &model.Customer{
			FirstName: params.Customer.FirstName,
			LastName:  params.Customer.LastName,
			Email:     params.Customer.Email,
			Phone:     params.Customer.Phone,
		}
	}

	result, errCode := store.GetStore().CreateCompanyWithDependencies(intakeParams, agentUUID)
	if errCode != http.StatusCreated {
		switch errCode {
		case http.StatusNotFound:
			c.AbortWithStatusJSON(errCode, gin.H{"error": "Plan not found."})
		case http.StatusUnprocessableEntity:
			c.AbortWithStatusJSON(errCode, gin.H{"error": "Plan is not active."})
		case http.StatusBadRequest:
			c.AbortWithStatusJSON(errCode, gin.H{"error": "Invalid intake request."})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to create company."})
		}
		return
	}

	c.JSON(http.StatusCreated, result)
}
