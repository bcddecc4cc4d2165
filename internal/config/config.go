package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Cafe      CafeConfig
	Hours     HoursConfig
	Catalog   CatalogConfig
	Ledger    LedgerConfig
	JWT       JWTConfig
	Staff     StaffConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

// CafeConfig is the business identity printed on bills and receipts.
type CafeConfig struct {
	Name    string
	Address string
	Phone   string
}

// HoursConfig holds the four HH:MM:SS serving-window boundaries and the
// cafe's IANA timezone. Validation happens in the schedule service;
// malformed values are fatal to startup.
type HoursConfig struct {
	DayStart     string
	DayEnd       string
	EveningStart string
	EveningEnd   string
	Timezone     string
}

type CatalogConfig struct {
	DayPath     string
	EveningPath string
}

type LedgerConfig struct {
	Path string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours time.Duration
}

// StaffConfig is the single locally-configured staff account used for
// the protected ledger and printer endpoints.
type StaffConfig struct {
	Username     string
	PasswordHash string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
	Width   int
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "cafe-pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CAFE_NAME", "Dill-Khus Cafe")
	viper.SetDefault("CAFE_ADDRESS", "")
	viper.SetDefault("CAFE_PHONE", "")
	viper.SetDefault("CAFE_DAY_START", "10:00:00")
	viper.SetDefault("CAFE_DAY_END", "15:00:00")
	viper.SetDefault("CAFE_EVENING_START", "17:00:00")
	viper.SetDefault("CAFE_EVENING_END", "22:00:00")
	viper.SetDefault("CAFE_TIMEZONE", "Asia/Kolkata")
	viper.SetDefault("CATALOG_DAY_PATH", "day.json")
	viper.SetDefault("CATALOG_EVENING_PATH", "evening.json")
	viper.SetDefault("LEDGER_PATH", "customer_data.json")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("STAFF_USERNAME", "staff")
	viper.SetDefault("STAFF_PASSWORD_HASH", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 32)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Cafe: CafeConfig{
			Name:    viper.GetString("CAFE_NAME"),
			Address: viper.GetString("CAFE_ADDRESS"),
			Phone:   viper.GetString("CAFE_PHONE"),
		},
		Hours: HoursConfig{
			DayStart:     viper.GetString("CAFE_DAY_START"),
			DayEnd:       viper.GetString("CAFE_DAY_END"),
			EveningStart: viper.GetString("CAFE_EVENING_START"),
			EveningEnd:   viper.GetString("CAFE_EVENING_END"),
			Timezone:     viper.GetString("CAFE_TIMEZONE"),
		},
		Catalog: CatalogConfig{
			DayPath:     viper.GetString("CATALOG_DAY_PATH"),
			EveningPath: viper.GetString("CATALOG_EVENING_PATH"),
		},
		Ledger: LedgerConfig{
			Path: viper.GetString("LEDGER_PATH"),
		},
		JWT: JWTConfig{
			Secret:      viper.GetString("JWT_SECRET"),
			ExpiryHours: time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
		},
		Staff: StaffConfig{
			Username:     viper.GetString("STAFF_USERNAME"),
			PasswordHash: viper.GetString("STAFF_PASSWORD_HASH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
	}
}
