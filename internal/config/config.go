package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	TemplatesDir string
}

func Load() Config {
	// Optional .env for local runs; real environment variables always win.
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = ":memory:" // users/sessions live in process memory only
	}
	tmpl := os.Getenv("TEMPLATES_DIR")
	if tmpl == "" {
		tmpl = "./web/templates"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile, TemplatesDir: tmpl}
	log.Printf("[config] PORT=%s DB_DSN=%s TEMPLATES_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.TemplatesDir, cfg.LogFile)
	return cfg
}
