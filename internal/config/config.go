package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string
	CorsOrigins    []string

	JWTSecret             string
	AccessTokenTTLMinutes int
	BcryptCost            int

	LoginMaxAttempts    int
	LoginWindowSeconds  int
	LoginLockoutSeconds int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:        getEnv("APP_PORT", "8080"),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "kanban"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "kanban"),
		DbName:         getEnv("MYSQL_DATABASE", "kanban"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies: parseList(os.Getenv("TRUSTED_PROXIES")),
		CorsOrigins:    parseList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),

		JWTSecret:             getEnv("JWT_SECRET_KEY", ""),
		AccessTokenTTLMinutes: getEnvInt("ACCESS_TOKEN_TTL_MINUTES", 60*24),
		BcryptCost:            getEnvInt("BCRYPT_COST", 12),

		LoginMaxAttempts:    getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindowSeconds:  getEnvInt("LOGIN_WINDOW_SECONDS", 300),
		LoginLockoutSeconds: getEnvInt("LOGIN_LOCKOUT_SECONDS", 900),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
