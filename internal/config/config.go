package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	// Telegram (бот отключён, если токен не задан)
	BotToken string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// HTTP API для WebApp
	HTTPAddr string

	// Groq / OpenAI-совместимый API для генерации планов
	GroqAPIKey string
	AIModel    string
	AIBaseURL  string

	Lang string // ru | en

	// Cron-расписание еженедельного напоминания (с секундами)
	ReminderSpec string

	// Папка для Excel-выгрузок программ
	ExportDir string

	// Сколько сгенерированных планов держать в памяти
	PlanCacheSize int

	LogLevel string
}

// Load загружает конфигурацию из переменных окружения и .env файла.
// Переменные окружения имеют приоритет над .env.
func Load() (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cacheSize, err := strconv.Atoi(getEnv("PLAN_CACHE_SIZE", "256"))
	if err != nil || cacheSize <= 0 {
		return nil, fmt.Errorf("PLAN_CACHE_SIZE должен быть положительным числом")
	}

	cfg := &Config{
		BotToken: getEnv("BOT_TOKEN", ""),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "postgres"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		GroqAPIKey: getEnv("GROQ_API_KEY", ""),
		AIModel:    getEnv("AI_MODEL", "llama-3.3-70b-versatile"),
		AIBaseURL:  getEnv("AI_BASE_URL", "https://api.groq.com/openai/v1"),

		Lang: getEnv("BOT_LANG", "ru"),

		ReminderSpec: getEnv("REMINDER_SPEC", "0 0 9 * * 1"),
		ExportDir:    getEnv("EXPORT_DIR", os.TempDir()),

		PlanCacheSize: cacheSize,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// DSN возвращает строку подключения к базе данных
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
