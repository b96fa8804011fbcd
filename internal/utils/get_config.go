package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Server
	AppPort string `yaml:"APP_PORT"`

	// JWT key
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
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

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	setEnvIfUnset("DB_USER", config.DBUser)
	setEnvIfUnset("DB_NAME", config.DBName)
	setEnvIfUnset("DB_PASSWORD", config.DBPassword)
	setEnvIfUnset("DB_PORT", config.DBPort)
	setEnvIfUnset("DB_HOST", config.DBHost)
	setEnvIfUnset("APP_PORT", config.AppPort)
	setEnvIfUnset("JWT_SECRET", config.JWTSecret)
	setEnvIfUnset("APP_URL", config.AppURL)
	setEnvIfUnset("SMTP_HOST", config.SMTPHost)
	setEnvIfUnset("SMTP_PORT", config.SMTPPort)
	setEnvIfUnset("SMTP_SENDER_NAME", config.SMTPSenderName)
	setEnvIfUnset("SMTP_AUTH_EMAIL", config.SMTPAuthEmail)
	setEnvIfUnset("SMTP_AUTH_PASSWORD", config.SMTPAuthPassword)
	setEnvIfUnset("AWS_S3_BUCKET", config.AWSS3Bucket)
	setEnvIfUnset("AWS_S3_REGION", config.AWSS3Region)
	setEnvIfUnset("AWS_ACCESS_KEY", config.AWSAccessKey)
	setEnvIfUnset("AWS_SECRET_KEY", config.AWSSecretKey)
}

func GetConfig(key string) string {
	return os.Getenv(key)
}

func setEnvIfUnset(key, value string) {
	if value == "" {
		return
	}
	if _, exists := os.LookupEnv(key); !exists {
		os.Setenv(key, value)
	}
}
