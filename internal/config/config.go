package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	MongoURI          string
	DatabaseName      string
	Origin            string
	AccessTokenSecret string
	PaymentSecretKey  string
	SMTPHost          string
	SMTPPort          int
	SMTPUsername      string
	SMTPPassword      string
	Timeout           time.Duration
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		panic("Error loading .env file")
	}
	return Config{
		Port:              getEnv("PORT", "5000"),
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DatabaseName:      getEnv("DATABASE_NAME", "LearnLingoDB"),
		Origin:            getEnv("ORIGIN", "*"),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		PaymentSecretKey:  getEnv("PAYMENT_SECRET_KEY", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		Timeout:           10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
