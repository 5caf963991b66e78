package main

import (
	"flag"

	C "bizdesk/config"
	M "bizdesk/model/model"

	log "github.com/sirupsen/logrus"
)

// Creates all tables with their unique indexes and foreign keys.
// Development and test environments only.
func main() {
	env := flag.String("env", C.DEVELOPMENT, "")

	dbHost := flag.String("db_host", C.PostgresDefaultDBParams.Host, "")
	dbPort := flag.Int("db_port", C.PostgresDefaultDBParams.Port, "")
	dbUser := flag.String("db_user", C.PostgresDefaultDBParams.User, "")
	dbName := flag.String("db_name", C.PostgresDefaultDBParams.Name, "")
	dbPass := flag.String("db_pass", C.PostgresDefaultDBParams.Password, "")
	flag.Parse()

	config := &C.Configuration{
		AppName: "db_create",
		Env:     *env,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
	}

	if err := C.Init(config); err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}

	if C.GetConfig().Env == C.PRODUCTION {
		log.Error("Production environment. Aborting.")
		return
	}

	db := C.GetServices().Db
	defer db.Close()

	tables := []interface{}{
		&M.Agent{},
		&M.Company{},
		&M.Customer{},
		&M.CustomerAgentMapping{},
		&M.Payment{},
		&M.WorkflowRecord{},
		&M.Invoice{},
		&M.Subscription{},
		&M.MemberAccount{},
	}

	for _, table := range tables {
		if db.HasTable(table) {
			continue
		}
		if err := db.CreateTable(table).Error; err != nil {
			log.WithError(err).Error("Table creation failed.")
			return
		}
	}
	log.Info("Created tables.")

	// Foreign keys. Unique indexes come from the model tags.
	foreignKeys := []struct {
		model interface{}
		field string
		dest  string
	}{
		{&M.Customer{}, "company_id", "companies(id)"},
		{&M.CustomerAgentMapping{}, "customer_id", "customers(id)"},
		{&M.CustomerAgentMapping{}, "agent_uuid", "agents(uuid)"},
		{&M.Payment{}, "company_id", "companies(id)"},
		{&M.WorkflowRecord{}, "payment_id", "payments(id)"},
		{&M.Invoice{}, "company_id", "companies(id)"},
		{&M.Invoice{}, "payment_id", "payments(id)"},
		{&M.Subscription{}, "company_id", "companies(id)"},
		{&M.Subscription{}, "payment_id", "payments(id)"},
		{&M.MemberAccount{}, "customer_id", "customers(id)"},
		{&M.MemberAccount{}, "company_id", "companies(id)"},
		{&M.MemberAccount{}, "agent_uuid", "agents(uuid)"},
	}

	for _, fk := range foreignKeys {
		if err := db.Model(fk.model).AddForeignKey(fk.field, fk.dest, "RESTRICT", "RESTRICT").Error; err != nil {
			log.WithError(err).WithField("field", fk.field).Error("Foreign key creation failed.")
		}
	}
	log.Info("Added foreign keys.")
}
