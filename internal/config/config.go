package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string

	JWTSecret      string
	AccessTokenTTL time.Duration
	AdminSecret    string

	PaymentAPIKey string

	SMTPHost     string
	SMTPPort     int
	SenderEmail  string
	SMTPPassword string

	SMSAccountSID string
	SMSAuthToken  string
	SMSFromNumber string

	InvoiceDir string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: durationMinutes("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		AdminSecret:    os.Getenv("ADMIN_SECRET_CODE"),

		PaymentAPIKey: os.Getenv("PAYMENT_APIKEY"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     intEnv("SMTP_PORT", 587),
		SenderEmail:  os.Getenv("SENDER_EMAIL"),
		SMTPPassword: os.Getenv("EMAIL_PASSWORD"),

		SMSAccountSID: os.Getenv("SMS_ACCOUNT_SID"),
		SMSAuthToken:  os.Getenv("SMS_AUTH_TOKEN"),
		SMSFromNumber: os.Getenv("SMS_FROM_NUMBER"),

		InvoiceDir: envOr("INVOICE_DIR", "static/invoices"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func durationMinutes(key string, fallback int) time.Duration {
	return time.Duration(intEnv(key, fallback)) * time.Minute
}
