package postgres

import (
	"net/http"
	"testing"

	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAgent(t *testing.T) {
	store := &Postgres{}
	email := getRandomEmail()

	agent, errCode := store.CreateAgent(&model.Agent{Email: email})
	require.Equal(t, http.StatusCreated, errCode)
	assert.NotEmpty(t, agent.UUID)
	assert.NotEmpty(t, agent.Salt)

	// Email is the identity key.
	_, errCode = store.CreateAgent(&model.Agent{Email: email})
	assert.Equal(t, http.StatusConflict, errCode)

	_, errCode = store.CreateAgent(&model.Agent{})
	assert.Equal(t, http.StatusBadRequest, errCode)
}

func TestCreateOrReuseAgentByEmail(t *testing.T) {
	store := &Postgres{}
	email := getRandomEmail()
	password := "pass-" + U.RandomString(8)

	agent, errCode := store.createOrReuseAgentByEmail(email, "Ada", "Lee", password)
	require.Equal(t, http.StatusCreated, errCode)
	assert.True(t, model.IsPasswordAndHashEqual(password, agent.Password))

	// Same email converges on the existing identity, the second
	// password is discarded.
	reusedAgent, errCode := store.createOrReuseAgentByEmail(email, "Ada", "Lee", "other-password")
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, agent.UUID, reusedAgent.UUID)
	assert.True(t, model.IsPasswordAndHashEqual(password, reusedAgent.Password))
}

func TestUpdateAgentLastLoginInfo(t *testing.T) {
	store := &Postgres{}
	agent := createTestOperatorAgent(t, store)

	errCode := store.UpdateAgentLastLoginInfo(agent.UUID, U.TimeNowZ())
	require.Equal(t, http.StatusAccepted, errCode)

	updatedAgent, errCode := store.GetAgentByUUID(agent.UUID)
	require.Equal(t, http.StatusFound, errCode)
	assert.Equal(t, uint64(1), updatedAgent.LoginCount)
	assert.NotNil(t, updatedAgent.LastLoggedInAt)

	errCode = store.UpdateAgentLastLoginInfo(U.GetUUID(), U.TimeNowZ())
	assert.Equal(t, http.StatusNotFound, errCode)
}
