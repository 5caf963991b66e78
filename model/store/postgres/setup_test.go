package postgres

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"

	C "bizdesk/config"
	"bizdesk/model/model"
	U "bizdesk/util"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	config := &C.Configuration{
		AppName:   "postgres_store_test",
		Env:       C.DEVELOPMENT,
		DBInfo:    C.PostgresDefaultDBParams,
		RedisHost: "localhost",
		RedisPort: 6379,
	}
	if err := C.Init(config); err != nil {
		fmt.Println("Failed to initialize test config:", err)
		os.Exit(1)
	}

	db := C.GetServices().Db
	db.AutoMigrate(
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

	os.Exit(m.Run())
}

func getRandomEmail() string {
	return strings.ToLower(U.RandomString(12)) + "@bizdesktest.com"
}

func createTestOperatorAgent(t *testing.T, store *Postgres) *model.Agent {
	agent, errCode := store.CreateAgent(&model.Agent{Email: getRandomEmail()})
	require.Equal(t, http.StatusCreated, errCode)
	return agent
}

// createTestIntake runs a full intake with plan, customer and portal
// admin, leaving a pending payment staged for provisioning.
func createTestIntake(t *testing.T, store *Postgres, planID uint64,
	addOnIDs []string) *model.CompanyIntakeResult {

	operator := createTestOperatorAgent(t, store)

	params := &model.CompanyIntakeParams{
		Company: &model.Company{Name: "Test Co " + U.RandomString(6)},
		Customer: &model.Customer{
			FirstName: "Tess",
			LastName:  "Tester",
			Email:     getRandomEmail(),
		},
		CustomerPassword:  "s3cret-" + U.RandomString(8),
		PlanID:            planID,
		AddOnIDs:          addOnIDs,
		CreatePortalAdmin: true,
	}

	result, errCode := store.CreateCompanyWithDependencies(params, operator.UUID)
	require.Equal(t, http.StatusCreated, errCode)
	require.NotNil(t, result.Company)
	require.NotNil(t, result.Customer)
	require.NotNil(t, result.Payment)
	return result
}
