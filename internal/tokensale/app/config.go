package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/blockbite/tokensale/internal/tokensale/mail"
)

type Config struct {
	Program       string // Required: which program this process serves (pre-sale, air-drop)
	MaxApplicants int64  // Optional: applicant cap, 0 means unlimited (air-drop only)

	AdminSecret string // Required: HMAC secret for admin bearer tokens
	Issuer      string // Optional: issuer claim for admin tokens (default: blockbite-tokensale)

	DatabaseFile string // Optional: path to SQLite database file (default: ./tokensale.db)
	BaseURL      string // Optional: public base URL used in email links (default: http://localhost:8080)

	SMTPHost     string         // Optional: SMTP relay host (default: localhost)
	SMTPPort     int            // Optional: SMTP relay port (default: 587)
	MailFrom     string         // Optional: From address on outgoing mail
	SMTPAccounts []mail.Account // Optional: relay credential pool, one is picked per send

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Program:       getEnvOrDefault("SALE_PROGRAM", "pre-sale"),
		MaxApplicants: getEnvInt64OrDefault("SALE_MAX_APPLICANTS", 0),

		AdminSecret: os.Getenv("SALE_ADMIN_SECRET"),
		Issuer:      getEnvOrDefault("SALE_ISSUER", "blockbite-tokensale"),

		DatabaseFile: getEnvOrDefault("SALE_DATABASE_FILE", "tokensale.db"),
		BaseURL:      getEnvOrDefault("SALE_BASE_URL", "http://localhost:8080"),

		SMTPHost:     getEnvOrDefault("SMTP_HOST", "localhost"),
		SMTPPort:     getEnvIntOrDefault("SMTP_PORT", 587),
		MailFrom:     getEnvOrDefault("MAIL_FROM", "presale@blockbite.io"),
		SMTPAccounts: parseSMTPAccounts(os.Getenv("SMTP_ACCOUNTS")),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

// parseSMTPAccounts parses "user:pass,user2:pass2" into a credential pool.
// An empty value yields a single anonymous account, which is enough for
// relays that accept unauthenticated mail (local dev, test containers).
func parseSMTPAccounts(raw string) []mail.Account {
	if strings.TrimSpace(raw) == "" {
		return []mail.Account{{}}
	}

	var accounts []mail.Account
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		user, pass, _ := strings.Cut(entry, ":")
		accounts = append(accounts, mail.Account{User: user, Pass: pass})
	}
	if len(accounts) == 0 {
		return []mail.Account{{}}
	}
	return accounts
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
