package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	// DriverMySQL selects the GORM/MySQL store.
	DriverMySQL = "mysql"
	// DriverMongo selects the MongoDB store.
	DriverMongo = "mongo"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort    string
	StoreDriver   string
	MongoURI      string
	MongoDatabase string
	MySQLDSN      string
	RedisAddr     string
	RedisDB       int
	RedisPass     string
	JWTSecret     string
	CORSOrigin    string
	LogLevel      string
	SwaggerHost   string
	ResetDB       bool
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is read first when present; real
// environment variables take precedence over it.
func Load() *Config {
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	defaultDriver := DriverMySQL
	if mongoURI != "" {
		defaultDriver = DriverMongo
	}

	return &Config{
		ServerPort:    getEnv("PORT", "3000"),
		StoreDriver:   getEnv("STORE_DRIVER", defaultDriver),
		MongoURI:      mongoURI,
		MongoDatabase: getEnv("MONGO_DATABASE", "declutter"),
		MySQLDSN:      getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/declutter?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		RedisPass:     os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		CORSOrigin:    getEnv("CORS_ORIGIN", "https://iranai-frontend.onrender.com"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SwaggerHost:   os.Getenv("SWAGGER_HOST"),
		ResetDB:       os.Getenv("RESET_DB") == "true",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
