package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	LogLevel     string
	EditorDBPath string
	TableDBPath  string
	NotesDir     string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:         GetEnv("PORT", "3000"),
		Env:          GetEnv("ENV", "development"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
		EditorDBPath: GetEnv("EDITOR_DB_PATH", "./data/test.db"),
		TableDBPath:  GetEnv("TABLE_DB_PATH", "./data/notes.db"),
		NotesDir:     GetEnv("NOTES_DIR", "./data/notes"),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
