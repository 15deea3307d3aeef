package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP       HTTPConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	SMTP       SMTPConfig
	Membership MembershipConfig
	App        AppConfig
}

type HTTPConfig struct {
	Addr string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	// MailDomain turns a member handle into a deliverable address.
	MailDomain string
	// TeamAddress receives staff-needed and new-event notices.
	TeamAddress string
}

type MembershipConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

type AppConfig struct {
	Timezone string
	// SweepCron is the daily schedule for the expire, expiry-warning and
	// reminder sweeps.
	SweepCron string
	// CronToken guards the sweep-trigger endpoints; empty disables the check.
	CronToken string
}

var AppConfigInstance *Config

func LoadConfig() *Config {
	AppConfigInstance = &Config{
		HTTP: HTTPConfig{
			Addr: getEnv("HTTP_ADDR", ":8080"),
		},
		Database:   GetDatabaseConfig(),
		Redis:      GetRedisConfig(),
		SMTP:       GetSMTPConfig(),
		Membership: GetMembershipConfig(),
		App: AppConfig{
			Timezone:  getEnv("APP_TIMEZONE", "America/Los_Angeles"),
			SweepCron: getEnv("SWEEP_CRON", "0 7 * * *"),
			CronToken: getEnv("CRON_TOKEN", ""),
		},
	}
	return AppConfigInstance
}

func LoadTestConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{Addr: ":0"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5433",
			User:     "postgres",
			Password: "postgres",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Host:     "localhost",
			Port:     "6380",
			Password: "",
			DB:       1,
		},
		Membership: MembershipConfig{
			BaseURL:        "http://localhost:9090",
			TimeoutSeconds: 1,
		},
		App: AppConfig{
			Timezone:  "America/Los_Angeles",
			SweepCron: "0 7 * * *",
		},
	}
}

func GetDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "postgres"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}
}

func GetRedisConfig() RedisConfig {
	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		panic(err)
	}
	return RedisConfig{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	}
}

func GetSMTPConfig() SMTPConfig {
	port, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		panic(err)
	}
	return SMTPConfig{
		Host:        getEnv("SMTP_HOST", "localhost"),
		Port:        port,
		User:        getEnv("SMTP_USER", ""),
		Password:    getEnv("SMTP_PASSWORD", ""),
		From:        getEnv("SMTP_FROM", "events@example.org"),
		MailDomain:  getEnv("MAIL_DOMAIN", "example.org"),
		TeamAddress: getEnv("EVENTS_TEAM_ADDRESS", "events@example.org"),
	}
}

func GetMembershipConfig() MembershipConfig {
	timeout, err := strconv.Atoi(getEnv("MEMBERSHIP_TIMEOUT_SECONDS", "10"))
	if err != nil {
		panic(err)
	}
	return MembershipConfig{
		BaseURL:        getEnv("MEMBERSHIP_BASE_URL", "http://localhost:9090"),
		TimeoutSeconds: timeout,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
