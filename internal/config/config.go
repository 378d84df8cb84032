package config

import (
	"os"
	"strings"

	"github.com/cmaclennan/aquivis-sub000/internal/utils"
)

const AppName = "scheduling-service"

type Config struct {
	AppName string
	AppPort string

	// Database
	DBUrl string

	// CORS
	AllowedOrigins []string

	// Development conveniences
	SeedDemoData bool
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		utils.Logger.Fatal("APP_PORT env var is missing")
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	return &Config{
		AppName:        AppName,
		AppPort:        appPort,
		DBUrl:          dbURL,
		AllowedOrigins: origins,
		SeedDemoData:   os.Getenv("SEED_DEMO_DATA") == "true",
	}
}
