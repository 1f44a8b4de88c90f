package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (rate limiting). Optional: when REDIS_ADDR is
	// empty the limiter falls back to an in-process one.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisRateDB   int    `mapstructure:"REDIS_RATE_DB"`

	// Google Sheets configuration.
	SheetsSpreadsheetID   string `mapstructure:"SHEETS_SPREADSHEET_ID"`
	NexusSpreadsheetID    string `mapstructure:"NEXUS_SPREADSHEET_ID"`
	GoogleCredentialsFile string `mapstructure:"GOOGLE_CREDENTIALS_FILE"`
	BookingSheet          string `mapstructure:"BOOKING_SHEET"`

	// Booking dispatch configuration.
	BookingWebhookURL string `mapstructure:"BOOKING_WEBHOOK_URL"`
	PropertyName      string `mapstructure:"PROPERTY_NAME"`

	// SMTP configuration for outbound notifications.
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      string `mapstructure:"SMTP_PORT"`
	SMTPUsername  string `mapstructure:"SMTP_USERNAME"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SMTPSender    string `mapstructure:"SMTP_SENDER"`
	OperatorEmail string `mapstructure:"OPERATOR_EMAIL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_RATE_DB", 0)
	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("NEXUS_SPREADSHEET_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json")
	viper.SetDefault("BOOKING_SHEET", "Bookings")
	viper.SetDefault("BOOKING_WEBHOOK_URL", "")
	viper.SetDefault("PROPERTY_NAME", "Riad di Siena")
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", "587")
	viper.SetDefault("SMTP_SENDER", "")
	viper.SetDefault("OPERATOR_EMAIL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
