package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	DefaultMaxTaskEntries = 100
)

type Config struct {
	AppName        string
	AppVersion     string
	AppPort        string
	DbDriver       string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	SqlitePath     string
	MaxTaskEntries int
	SeedTasks      bool
	TrustedProxies []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:        getEnv("APP_NAME", "taskmanager"),
		AppVersion:     getEnv("APP_VERSION", "dev"),
		AppPort:        getEnv("APP_PORT", "8080"),
		DbDriver:       strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
		DbHost:         getEnv("MYSQL_HOST", "db"),
		DbPort:         getEnv("MYSQL_PORT", "3306"),
		DbUser:         getEnv("MYSQL_USER", "taskmanager"),
		DbPassword:     getEnv("MYSQL_PASSWORD", "taskmanager"),
		DbName:         getEnv("MYSQL_DATABASE", "taskmanager"),
		DbParams:       getEnv("MYSQL_PARAMS", "parseTime=true"),
		SqlitePath:     getEnv("SQLITE_PATH", "taskmanager.db"),
		MaxTaskEntries: parseMaxTaskEntries(os.Getenv("MAX_TASK_ENTRIES")),
		SeedTasks:      parseBool(os.Getenv("SEED_TASKS"), true),
		TrustedProxies: parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// parseMaxTaskEntries falls back to the default for anything that is not a positive integer.
func parseMaxTaskEntries(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return DefaultMaxTaskEntries
	}
	return n
}

func parseBool(value string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
