package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type EnvConfig struct {
	AppPort       string
	DBDSN         string
	MongoURI      string
	MongoDB       string
	JWTSecret     string
	StorageDriver string
	StorageDir    string
	StorageBucket string
}

var Env EnvConfig

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	Env.AppPort = getEnv("APP_PORT", "3000")
	Env.DBDSN = os.Getenv("DB_DSN")
	Env.MongoURI = os.Getenv("MONGO_URI")
	Env.MongoDB = getEnv("MONGO_DB_NAME", "ayush_portal")
	Env.JWTSecret = os.Getenv("JWT_SECRET")
	Env.StorageDriver = getEnv("STORAGE_DRIVER", "local")
	Env.StorageDir = getEnv("STORAGE_DIR", "./uploads")
	Env.StorageBucket = getEnv("STORAGE_BUCKET", "documents")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetJWTSecret() string {
	if Env.JWTSecret != "" {
		return Env.JWTSecret
	}
	return os.Getenv("JWT_SECRET")
}
