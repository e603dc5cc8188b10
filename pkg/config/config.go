package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Redis    RedisConfig
	Alert    AlertConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	SecretKey string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// AlertConfig carries the retention alert mailer settings. The mailer speaks
// the Mailjet send API with basic auth.
type AlertConfig struct {
	MailerBaseURL           string
	MailerBasicAuthUsername string
	MailerBasicAuthPassword string
	MailerSenderEmail       string
	MailerSenderName        string
	RetentionTeamEmail      string
	RetentionTeamName       string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "TenantPulse API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "tenantpulse"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Alert: AlertConfig{
			MailerBaseURL:           getEnv("MAILER_BASE_URL", ""),
			MailerBasicAuthUsername: getEnv("MAILER_BASIC_AUTH_USERNAME", ""),
			MailerBasicAuthPassword: getEnv("MAILER_BASIC_AUTH_PASSWORD", ""),
			MailerSenderEmail:       getEnv("MAILER_SENDER_EMAIL", ""),
			MailerSenderName:        getEnv("MAILER_SENDER_NAME", "TenantPulse Alerts"),
			RetentionTeamEmail:      getEnv("RETENTION_TEAM_EMAIL", ""),
			RetentionTeamName:       getEnv("RETENTION_TEAM_NAME", "Customer Success"),
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
