package configs

import (
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/naomichiang/POS-system-Cursor/entity"
)

type Config struct {
	Port     string
	APIBase  string // upstream REST base, e.g. http://backend:8080
	WSURL    string // upstream push channel; empty disables sync
	DBSource string // local receipt log

	ServiceChargeRate float64

	// TerminalID tells the backend which tablet is talking. A fresh id
	// per process is fine; tables, not terminals, carry the state.
	TerminalID string
}

func LoadConfig() *Config {
	// .env is optional on a provisioned kiosk; real deployments set env vars
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "8090"),
		APIBase:           getEnv("API_BASE", "http://localhost:8080"),
		WSURL:             os.Getenv("WS_URL"),
		DBSource:          getEnv("DB_SOURCE", "receipts.db"),
		ServiceChargeRate: getEnvFloat("SERVICE_CHARGE_RATE", entity.DefaultServiceChargeRate),
		TerminalID:        uuid.NewString(),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
