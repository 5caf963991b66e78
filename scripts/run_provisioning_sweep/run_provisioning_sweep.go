package main

import (
	"flag"
	"time"

	C "bizdesk/config"
	"bizdesk/task"

	log "github.com/sirupsen/logrus"
)

// ./run_provisioning_sweep --env=development --db_host=localhost --db_port=5432 --older_than_minutes=15
func main() {
	env := flag.String("env", C.DEVELOPMENT, "")

	dbHost := flag.String("db_host", C.PostgresDefaultDBParams.Host, "")
	dbPort := flag.Int("db_port", C.PostgresDefaultDBParams.Port, "")
	dbUser := flag.String("db_user", C.PostgresDefaultDBParams.User, "")
	dbName := flag.String("db_name", C.PostgresDefaultDBParams.Name, "")
	dbPass := flag.String("db_pass", C.PostgresDefaultDBParams.Password, "")

	redisHost := flag.String("redis_host", "localhost", "")
	redisPort := flag.Int("redis_port", 6379, "")

	olderThanMinutes := flag.Int("older_than_minutes", 15,
		"Only sweep workflow records untouched for at least this long.")
	flag.Parse()

	config := &C.Configuration{
		AppName: "provisioning_sweep",
		Env:     *env,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
		RedisHost: *redisHost,
		RedisPort: *redisPort,
	}

	if err := C.Init(config); err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}

	completed, failed := task.RunProvisioningSweep(time.Duration(*olderThanMinutes) * time.Minute)
	log.WithFields(log.Fields{"completed": completed, "failed": failed}).Info("Sweep done.")
}
