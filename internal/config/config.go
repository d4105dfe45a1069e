package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	ServiceName string

	ServerPort int

	MongoURI string
	MongoDB  string

	AppVersion string

	AuthMode string

	CORSOrigins []string

	LogLevel string
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "mobile-api"),

		ServerPort: EnvIntDefault("SERVER_PORT", 8080),

		MongoURI: EnvDefault("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:  EnvDefault("MONGO_DB", "shopokoa"),

		AppVersion: EnvDefault("APP_VERSION", "2.0.0"),

		AuthMode: EnvDefault("AUTH_MODE", "plain"),

		CORSOrigins: CSV(EnvDefault("CORS_ORIGINS", "*")),

		LogLevel: os.Getenv("LOG_LEVEL"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
