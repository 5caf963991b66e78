package main

import (
	"flag"
	"strconv"

	C "bizdesk/config"
	H "bizdesk/handler"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ./app --env=development --api_domain=localhost:8080 --app_domain=localhost:3000 --api_http_port=8080 --db_host=localhost --db_port=5432 --db_user=bizdesk --db_name=bizdesk --db_pass=b1zd3sk --email_sender=support@bizdesk.io
func main() {
	env := flag.String("env", C.DEVELOPMENT, "")
	port := flag.Int("api_http_port", 8080, "")

	dbHost := flag.String("db_host", C.PostgresDefaultDBParams.Host, "")
	dbPort := flag.Int("db_port", C.PostgresDefaultDBParams.Port, "")
	dbUser := flag.String("db_user", C.PostgresDefaultDBParams.User, "")
	dbName := flag.String("db_name", C.PostgresDefaultDBParams.Name, "")
	dbPass := flag.String("db_pass", C.PostgresDefaultDBParams.Password, "")

	redisHost := flag.String("redis_host", "localhost", "")
	redisPort := flag.Int("redis_port", 6379, "")

	apiDomain := flag.String("api_domain", "localhost:8080", "")
	appDomain := flag.String("app_domain", "localhost:3000", "")

	awsRegion := flag.String("aws_region", "eu-west-1", "")
	awsAccessKeyID := flag.String("aws_key", "dummy", "")
	awsSecretAccessKey := flag.String("aws_secret", "dummy", "")

	emailSender := flag.String("email_sender", "support@bizdesk.io", "")
	flag.Parse()

	config := &C.Configuration{
		AppName: "app_server",
		Env:     *env,
		Port:    *port,
		DBInfo: C.DBConf{
			Host:     *dbHost,
			Port:     *dbPort,
			User:     *dbUser,
			Name:     *dbName,
			Password: *dbPass,
		},
		RedisHost:   *redisHost,
		RedisPort:   *redisPort,
		APIDomain:   *apiDomain,
		APPDomain:   *appDomain,
		AWSRegion:   *awsRegion,
		AWSKey:      *awsAccessKeyID,
		AWSSecret:   *awsSecretAccessKey,
		EmailSender: *emailSender,
	}

	// Initialize configs and connections.
	if err := C.Init(config); err != nil {
		log.WithError(err).Fatal("Failed to initialize.")
		return
	}

	if !C.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	H.InitAppRoutes(r)

	log.WithField("port", *port).Info("Starting app server.")
	if err := r.Run(":" + strconv.Itoa(*port)); err != nil {
		log.WithError(err).Fatal("App server exited.")
	}
}
