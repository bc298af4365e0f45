package utils

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	PolicyDegrade = "degrade"
	PolicyFail    = "fail"
)

type Config struct {
	// Server configuration
	AppPort          string `yaml:"APP_PORT"`
	AppURL           string `yaml:"APP_URL"`
	LogFile          string `yaml:"LOG_FILE"`
	CORSAllowOrigins string `yaml:"CORS_ALLOW_ORIGINS"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBPath     string `yaml:"DB_PATH"`

	// Session signing
	JWTSecret string `yaml:"JWT_SECRET"`

	// AI backend
	APIBaseURL           string `yaml:"API_BASE_URL"`
	BackendFailurePolicy string `yaml:"BACKEND_FAILURE_POLICY"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		AppPort:              "8080",
		AppURL:               "http://localhost:3000",
		LogFile:              "./logs/app.log",
		CORSAllowOrigins:     "http://localhost:3000",
		DBDriver:             "postgres",
		DBPort:               "5432",
		DBHost:               "localhost",
		DBPath:               "meal_planner.db",
		APIBaseURL:           "http://127.0.0.1:8000",
		BackendFailurePolicy: PolicyDegrade,
	}
}

// LoadConfig reads config.yaml, then .env, then the process environment.
// Later sources win. Missing files are not an error.
func LoadConfig() Config {
	cfg := defaultConfig()

	file, err := os.ReadFile("config.yaml")
	if err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			log.Warnf("error parsing config.yaml: %v", err)
		}
	} else if !os.IsNotExist(err) {
		log.Warnf("error reading config.yaml: %v", err)
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("error loading .env file: %v", err)
	}

	applyEnv(&cfg)
	cfg.BackendFailurePolicy = normalizePolicy(cfg.BackendFailurePolicy)

	config = cfg
	return cfg
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"APP_PORT":               &cfg.AppPort,
		"APP_URL":                &cfg.AppURL,
		"LOG_FILE":               &cfg.LogFile,
		"CORS_ALLOW_ORIGINS":     &cfg.CORSAllowOrigins,
		"DB_DRIVER":              &cfg.DBDriver,
		"DB_USER":                &cfg.DBUser,
		"DB_NAME":                &cfg.DBName,
		"DB_PASSWORD":            &cfg.DBPassword,
		"DB_PORT":                &cfg.DBPort,
		"DB_HOST":                &cfg.DBHost,
		"DB_PATH":                &cfg.DBPath,
		"JWT_SECRET":             &cfg.JWTSecret,
		"API_BASE_URL":           &cfg.APIBaseURL,
		"BACKEND_FAILURE_POLICY": &cfg.BackendFailurePolicy,
		"SMTP_HOST":              &cfg.SMTPHost,
		"SMTP_PORT":              &cfg.SMTPPort,
		"SMTP_SENDER_NAME":       &cfg.SMTPSenderName,
		"SMTP_AUTH_EMAIL":        &cfg.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD":     &cfg.SMTPAuthPassword,
		"AWS_S3_BUCKET":          &cfg.AWSS3Bucket,
		"AWS_S3_REGION":          &cfg.AWSS3Region,
		"AWS_ACCESS_KEY":         &cfg.AWSAccessKey,
		"AWS_SECRET_KEY":         &cfg.AWSSecretKey,
	}

	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}

	// API_URL is accepted as an alias for API_BASE_URL
	if value, ok := os.LookupEnv("API_URL"); ok && os.Getenv("API_BASE_URL") == "" {
		cfg.APIBaseURL = value
	}
}

func normalizePolicy(policy string) string {
	switch strings.ToLower(strings.TrimSpace(policy)) {
	case PolicyFail:
		return PolicyFail
	default:
		return PolicyDegrade
	}
}

func GetConfig(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "LOG_FILE":
		return config.LogFile
	case "CORS_ALLOW_ORIGINS":
		return config.CORSAllowOrigins
	case "DB_DRIVER":
		return config.DBDriver
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "DB_PATH":
		return config.DBPath
	case "JWT_SECRET":
		return config.JWTSecret
	case "API_BASE_URL":
		return config.APIBaseURL
	case "BACKEND_FAILURE_POLICY":
		return config.BackendFailurePolicy
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	default:
		return ""
	}
}
