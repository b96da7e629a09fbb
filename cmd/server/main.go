package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/birthdaybook/internal/auth"
	"github.com/mmynk/birthdaybook/internal/storage/sqlite"
	"github.com/mmynk/birthdaybook/internal/web"
	"github.com/mmynk/birthdaybook/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Optional .env for local development; real env always wins
	_ = godotenv.Load()

	logging.Setup()

	addr := getEnv("ADDR", ":8080")
	dbPath := getEnv("DB_PATH", "./data/birthdays.db")
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		slog.Error("SESSION_SECRET is not set, refusing to start")
		os.Exit(1)
	}

	sessionTTL := 24 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			slog.Error("Invalid SESSION_TTL", "value", v, "error", err)
			os.Exit(1)
		}
		sessionTTL = ttl
	}

	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	sessions := auth.NewSessionManager(sessionSecret, sessionTTL)
	server := web.New(store, sessions)

	// h2c allows HTTP/2 without TLS when running behind a trusted proxy
	handler := h2c.NewHandler(server.Handler(), &http2.Server{})

	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
