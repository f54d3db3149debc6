package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	// Trello is optional on purpose: a missing tracker must not prevent the
	// service from starting, only from mirroring (checked at sync time).
	TRELLO_API_KEY string
	TRELLO_TOKEN   string
	TRELLO_LIST_ID string

	S3_BUCKET          string
	S3_REGION          string
	S3_PUBLIC_BASE_URL string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	TRELLO_API_KEY = getEnv("TRELLO_API_KEY", "")
	TRELLO_TOKEN = getEnv("TRELLO_TOKEN", "")
	TRELLO_LIST_ID = getEnv("TRELLO_LIST_ID", "")

	S3_BUCKET = mustEnv("S3_BUCKET")
	S3_REGION = getEnv("S3_REGION", "us-east-1")
	S3_PUBLIC_BASE_URL = getEnv("S3_PUBLIC_BASE_URL", "")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
