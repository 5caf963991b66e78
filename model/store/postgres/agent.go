package postgres

import (
	"net/http"
	"strings"
	"time"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"
)

func (store *Postgres) CreateAgent(agent *model.Agent) (*model.Agent, int) {
	if agent == nil || agent.Email == "" {
		log.Error("CreateAgent Failed. Email not provided.")
		return nil, http.StatusBadRequest
	}

	agent.Email = strings.ToLower(agent.Email)

	if agent.Salt == "" {
		agent.Salt = U.RandomString(model.AgentSaltLength)
	}
	if agent.UUID == "" {
		agent.UUID = U.GetUUID()
	}

	db := C.GetServices().Db
	if err := db.Create(agent).Error; err != nil {
		if IsDuplicateRecordError(err) {
			return nil, http.StatusConflict
		}
		log.WithError(err).Error("CreateAgent Failed")
		return nil, http.StatusInternalServerError
	}

	return agent, http.StatusCreated
}

// createOrReuseAgentByEmail provisions the login identity for a
// customer. A conflict on the email unique key re-links to the
// existing agent instead of failing, so retried intake calls and
// repeat customers converge on one identity.
func (store *Postgres) createOrReuseAgentByEmail(email, firstName, lastName, plainTextPassword string) (*model.Agent, int) {
	if email == "" {
		return nil, http.StatusBadRequest
	}

	email = strings.ToLower(email)

	if existingAgent, errCode := store.GetAgentByEmail(email); errCode == http.StatusFound {
		return existingAgent, http.StatusFound
	} else if errCode == http.StatusInternalServerError {
		return nil, errCode
	}

	if plainTextPassword == "" {
		plainTextPassword = U.RandomString(model.AgentGeneratedPasswordLen)
	}
	hashedPassword, err := model.HashPassword(plainTextPassword)
	if err != nil {
		log.WithError(err).Error("Failed to hash password on agent provisioning.")
		return nil, http.StatusInternalServerError
	}

	passwordCreatedAt := U.TimeNowZ()
	agent := &model.Agent{
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Password:          hashedPassword,
		PasswordCreatedAt: &passwordCreatedAt,
	}

	createdAgent, errCode := store.CreateAgent(agent)
	if errCode == http.StatusConflict {
		// Lost a concurrent create for the same email. Reuse.
		return store.GetAgentByEmail(email)
	}
	if errCode != http.StatusCreated {
		return nil, errCode
	}

	return createdAgent, http.StatusCreated
}

func (store *Postgres) GetAgentByEmail(email string) (*model.Agent, int) {
	if email == "" {
		log.Error("GetAgentByEmail Failed. Email not provided.")
		return nil, http.StatusBadRequest
	}

	email = strings.ToLower(email)

	db := C.GetServices().Db
	var agent model.Agent
	if err := db.Limit(1).Where("email = ?", email).Find(&agent).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetAgentByEmail Failed")
		return nil, http.StatusInternalServerError
	}

	return &agent, http.StatusFound
}

func (store *Postgres) GetAgentByUUID(uuid string) (*model.Agent, int) {
	if uuid == "" {
		return nil, http.StatusBadRequest
	}

	db := C.GetServices().Db
	var agent model.Agent
	if err := db.Limit(1).Where("uuid = ?", uuid).Find(&agent).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, http.StatusNotFound
		}
		log.WithError(err).Error("GetAgentByUUID Failed")
		return nil, http.StatusInternalServerError
	}

	return &agent, http.StatusFound
}

func (store *Postgres) UpdateAgentLastLoginInfo(agentUUID string, ts time.Time) int {
	if agentUUID == "" {
		return http.StatusBadRequest
	}

	db := C.GetServices().Db
	updateFields := map[string]interface{}{
		"last_logged_in_at": ts,
		"login_count":       gorm.Expr("login_count + 1"),
	}

	dbx := db.Model(&model.Agent{}).Where("uuid = ?", agentUUID).Update(updateFields)
	if dbx.Error != nil {
		log.WithError(dbx.Error).Error("UpdateAgentLastLoginInfo Failed")
		return http.StatusInternalServerError
	}
	if dbx.RowsAffected == 0 {
		return http.StatusNotFound
	}

	return http.StatusAccepted
}
