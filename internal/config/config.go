package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Printer   PrinterConfig
	Catalog   CatalogConfig
	Client    ClientConfig
}

type AppConfig struct {
	Name     string
	Env      string
	Port     string
	Debug    bool
	Timezone string
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
	Path     string
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
	Type      string
	USBPath   string
	Address   string
	Width     int
	StoreName string
}

type CatalogConfig struct {
	ExpenseCategories []string
}

// ClientConfig configures the terminal point-of-sale.
type ClientConfig struct {
	APIURL       string
	Timeout      time.Duration
	Locale       string
	RecentLimit  int
	ToastTimeout time.Duration
}

// DefaultExpenseCategories is used when EXPENSE_CATEGORIES is not set.
var DefaultExpenseCategories = []string{
	"Ingredientes",
	"Aluguel",
	"Energia",
	"Água",
	"Gás",
	"Salários",
	"Manutenção",
	"Limpeza",
	"Marketing",
	"Outros",
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	setDefaults(viper.GetViper())
	return fromViper(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "lanchonete-pos")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "5000")
	v.SetDefault("APP_DEBUG", false)
	v.SetDefault("APP_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "lanchonete")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "America/Sao_Paulo")
	v.SetDefault("DB_PATH", "lanchonete.db")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5000")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
	v.SetDefault("PRINTER_TYPE", "none")
	v.SetDefault("PRINTER_WIDTH", 32)
	v.SetDefault("STORE_NAME", "Lanchonete")
	v.SetDefault("EXPENSE_CATEGORIES", DefaultExpenseCategories)
	v.SetDefault("POS_API_URL", "http://localhost:5000/api")
	v.SetDefault("POS_HTTP_TIMEOUT", 0)
	v.SetDefault("POS_LOCALE", "pt-BR")
	v.SetDefault("POS_RECENT_LIMIT", 5)
	v.SetDefault("POS_TOAST_SECONDS", 3)
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Name:     v.GetString("APP_NAME"),
			Env:      v.GetString("APP_ENV"),
			Port:     v.GetString("APP_PORT"),
			Debug:    v.GetBool("APP_DEBUG"),
			Timezone: v.GetString("APP_TIMEZONE"),
		},
		Database: DatabaseConfig{
			Driver:   v.GetString("DB_DRIVER"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
			Path:     v.GetString("DB_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getList(v, "CORS_ALLOWED_ORIGINS"),
			AllowedMethods: getList(v, "CORS_ALLOWED_METHODS"),
			AllowedHeaders: getList(v, "CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
		Printer: PrinterConfig{
			Type:      v.GetString("PRINTER_TYPE"),
			USBPath:   v.GetString("PRINTER_USB_PATH"),
			Address:   v.GetString("PRINTER_ADDRESS"),
			Width:     v.GetInt("PRINTER_WIDTH"),
			StoreName: v.GetString("STORE_NAME"),
		},
		Catalog: CatalogConfig{
			ExpenseCategories: getList(v, "EXPENSE_CATEGORIES"),
		},
		Client: ClientConfig{
			APIURL:       v.GetString("POS_API_URL"),
			Timeout:      time.Duration(v.GetInt("POS_HTTP_TIMEOUT")) * time.Second,
			Locale:       v.GetString("POS_LOCALE"),
			RecentLimit:  v.GetInt("POS_RECENT_LIMIT"),
			ToastTimeout: time.Duration(v.GetInt("POS_TOAST_SECONDS")) * time.Second,
		},
	}
}

// getList reads a list setting. Environment variables arrive as one
// comma-separated string.
func getList(v *viper.Viper, key string) []string {
	s, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Location resolves APP_TIMEZONE, falling back to the local zone.
func (c *AppConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DSN builds the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case "sqlite":
		return c.Path
	default:
		return "host=" + c.Host +
			" user=" + c.User +
			" password=" + c.Password +
			" dbname=" + c.Name +
			" port=" + c.Port +
			" sslmode=" + c.SSLMode +
			" TimeZone=" + c.Timezone
	}
}
