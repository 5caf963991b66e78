package config

import (
	"fmt"

	"bizdesk/interfaces/maileriface"
	"bizdesk/services/mailer"

	chargebee "github.com/chargebee/chargebee-go/v3"
	"github.com/evalphobia/logrus_sentry"
	"github.com/go-redis/redis"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"
)

const DEVELOPMENT = "development"
const STAGING = "staging"
const PRODUCTION = "production"

type DBConf struct {
	Host     string
	Port     int
	User     string
	Name     string
	Password string
}

// PostgresDefaultDBParams - Default development database params.
// Used by tests and local scripts.
var PostgresDefaultDBParams = DBConf{
	Host:     "localhost",
	Port:     5432,
	User:     "bizdesk",
	Name:     "bizdesk",
	Password: "b1zd3sk",
}

// Secrets are never passed as flags. Loaded from env with prefix BIZDESK_.
type Secrets struct {
	ChargebeeAPIKey  string `envconfig:"CHARGEBEE_API_KEY"`
	ChargebeeSite    string `envconfig:"CHARGEBEE_SITE"`
	SentryDSN        string `envconfig:"SENTRY_DSN"`
	WebhookAuthToken string `envconfig:"WEBHOOK_AUTH_TOKEN"`
}

type Configuration struct {
	AppName     string
	Env         string
	Port        int
	DBInfo      DBConf
	RedisHost   string
	RedisPort   int
	APIDomain   string
	APPDomain   string
	AWSRegion   string
	AWSKey      string
	AWSSecret   string
	EmailSender string
	Secrets     Secrets
}

type Services struct {
	Db     *gorm.DB
	Redis  *redis.Client
	Mailer maileriface.Mailer
}

var configuration *Configuration
var services *Services

func initLogging(config *Configuration) {
	log.SetFormatter(&log.JSONFormatter{})

	if IsDevelopment() {
		log.SetLevel(log.DebugLevel)
	}

	if config.Secrets.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(config.Secrets.SentryDSN, []log.Level{
			log.PanicLevel,
			log.FatalLevel,
			log.ErrorLevel,
		})
		if err != nil {
			log.WithError(err).Error("Failed to add sentry hook to logger.")
			return
		}
		hook.StacktraceConfiguration.Enable = true
		log.AddHook(hook)
	}
}

func initDB(dbConf DBConf) error {
	connStr := fmt.Sprintf("host=%s port=%d user=%s dbname=%s password=%s sslmode=disable",
		dbConf.Host, dbConf.Port, dbConf.User, dbConf.Name, dbConf.Password)

	db, err := gorm.Open("postgres", connStr)
	if err != nil {
		log.WithError(err).Error("Failed connecting to postgres.")
		return err
	}

	if IsDevelopment() {
		db.LogMode(true)
	}

	services.Db = db
	return nil
}

func initRedis(host string, port int) {
	services.Redis = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", host, port),
	})
}

func initMailer(config *Configuration) {
	if IsProduction() {
		services.Mailer = mailer.NewSESMailer(config.AWSRegion, config.AWSKey, config.AWSSecret)
		return
	}
	services.Mailer = mailer.NewDevMailer()
}

func initChargebee(config *Configuration) {
	if config.Secrets.ChargebeeAPIKey == "" || config.Secrets.ChargebeeSite == "" {
		log.Info("Chargebee is not configured. Skipping provider customer sync.")
		return
	}
	chargebee.Configure(config.Secrets.ChargebeeAPIKey, config.Secrets.ChargebeeSite)
}

// Init - Initializes configuration and connections. Must be called
// once on startup, before any store or handler usage.
func Init(config *Configuration) error {
	if configuration != nil {
		return nil
	}

	if err := envconfig.Process("bizdesk", &config.Secrets); err != nil {
		return err
	}

	configuration = config
	services = &Services{}

	initLogging(config)

	if err := initDB(config.DBInfo); err != nil {
		return err
	}
	initRedis(config.RedisHost, config.RedisPort)
	initMailer(config)
	initChargebee(config)

	return nil
}

func GetConfig() *Configuration {
	return configuration
}

func GetServices() *Services {
	return services
}

func IsDevelopment() bool {
	return configuration == nil || configuration.Env == DEVELOPMENT
}

func IsProduction() bool {
	return configuration != nil && configuration.Env == PRODUCTION
}

func GetProtocol() string {
	if IsDevelopment() {
		return "http://"
	}
	return "https://"
}

func GetAPPDomain() string {
	if configuration == nil {
		return ""
	}
	return configuration.APPDomain
}

func GetCookieName() string {
	if IsDevelopment() {
		return "bizdesk_sid_dev"
	}
	return "bizdesk_sid"
}

func GetEmailSender() string {
	if configuration == nil || configuration.EmailSender == "" {
		return "support@bizdesk.io"
	}
	return configuration.EmailSender
}

func GetWebhookAuthToken() string {
	if configuration == nil {
		return ""
	}
	return configuration.Secrets.WebhookAuthToken
}

func IsChargebeeEnabled() bool {
	return configuration != nil && configuration.Secrets.ChargebeeAPIKey != "" &&
		configuration.Secrets.ChargebeeSite != ""
}
