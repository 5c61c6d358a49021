package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	KafkaBroker   string
	KafkaTopic    string
	KafkaUsername string
	KafkaPassword string
	AccessSecret  string
	AllowOrigins  string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Load(); err != nil {
			zap.L().Debug("no .env file loaded", zap.Error(err))
		}
	}

	cfg := Config{
		ServerPort:    os.Getenv("SERVER_PORT"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),
		AccessSecret:  os.Getenv("ACCESS_SECRET"),
		AllowOrigins:  os.Getenv("ALLOW_ORIGINS"),
	}

	if cfg.ServerPort == "" {
		cfg.ServerPort = ":8000"
	}
	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = "kanban.db"
	}
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "http://localhost:5173, http://127.0.0.1:5173"
	}
	if cfg.AccessSecret == "" {
		cfg.AccessSecret = "dev-secret"
		zap.L().Warn("ACCESS_SECRET not set, using insecure dev default")
	}

	return cfg
}
