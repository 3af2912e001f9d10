package main

import (
	"net/http"
	"os"
	"time"

	"pet-adoption-portal/internal/adapters/auth/jwtauth"
	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/logger"
	"pet-adoption-portal/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional, para dev local
	_ = godotenv.Load()

	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" && os.Getenv("DB_DSN") == "" {
		dataDir = "./data"
	}

	opts := router.Options{
		DataDir:     dataDir,
		Logger:      log,
		RateLimiter: middleware.NewRateLimiter(5, 10),
	}

	// Sin JWT_SECRET queda en modo dev (X-Debug-User-ID); no apto para prod.
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		provider, err := jwtauth.New(secret, 24*time.Hour)
		if err != nil {
			log.Error("jwt setup failed", map[string]any{"err": err.Error()})
			os.Exit(1)
		}
		opts.AuthVerifier = provider
		opts.TokenIssuer = provider
	} else {
		log.Warn("JWT_SECRET not set, running in dev auth mode", nil)
	}

	h, err := router.NewRouter(opts)
	if err != nil {
		log.Error("router setup failed", map[string]any{"err": err.Error()})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"err": err.Error()})
		os.Exit(1)
	}
}
