package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	OwnerPhoneNumber string

	GeminiAPIKey string
	GenModel     string

	ChatHistoryWindow int

	LeadsFile  string
	UploadsDir string

	AwsAccessKey string
	AwsSecretKey string
	AwsRegion    string
	BucketName   string

	Port      string
	LogLevel  string
	LogFormat string
}

// LoadConfig loads the environment variables and returns the config. Every
// provider setting is optional; a missing one disables that capability
// rather than failing startup.
func LoadConfig() *Config {

	_ = godotenv.Load()

	cfg := &Config{
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFromNumber: getEnv("TWILIO_PHONE_NUMBER", ""),
		OwnerPhoneNumber: getEnv("OWNER_PHONE_NUMBER", ""),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GenModel:     getEnv("GEN_MODEL", "gemini-1.5-flash"),

		ChatHistoryWindow: getEnvInt("CHAT_HISTORY_WINDOW", 10),

		LeadsFile:  getEnv("LEADS_FILE", "leads.csv"),
		UploadsDir: getEnv("UPLOADS_DIR", "uploads"),

		AwsAccessKey: getEnv("AWS_ACCESS_KEY", ""),
		AwsSecretKey: getEnv("AWS_SECRET_KEY", ""),
		AwsRegion:    getEnv("AWS_REGION", "us-east-2"),
		BucketName:   getEnv("BUCKET_NAME", ""),

		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),
	}

	return cfg
}

// MessagingEnabled reports whether the SMS provider is fully configured.
func (c *Config) MessagingEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// AssistantEnabled reports whether the completion provider is configured.
func (c *Config) AssistantEnabled() bool {
	return c.GeminiAPIKey != ""
}

// S3PhotosEnabled reports whether photos should go to S3 instead of disk.
func (c *Config) S3PhotosEnabled() bool {
	return c.AwsAccessKey != "" && c.AwsSecretKey != "" && c.BucketName != ""
}

// Helper to read environment variables with a default fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, def int) int {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("WARN: %s=%q not an int, using default %d", key, v, def)
		return def
	}
	return n
}
