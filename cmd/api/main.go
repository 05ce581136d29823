package main

import (
	"net/http"
	"os"
	"time"

	"medication-scheduler/internal/adapters/auth/jwtauth"
	"medication-scheduler/internal/config"
	"medication-scheduler/internal/platform/logger"
	"medication-scheduler/internal/ports/auth"
	"medication-scheduler/internal/router"
)

//	@title			Medication Scheduler API
//	@version		1.0
//	@description	API para tratamientos, citas de toma e historial de uso de medicamentos.
//	@BasePath		/

func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	// Sin JWT_SECRET el proceso queda en modo dev: X-Debug-User-ID.
	var verifier auth.AuthVerifier
	if v := jwtauth.NewVerifier(cfg.JWTSecret); v != nil {
		verifier = v
	} else {
		log.Warn("jwt secret not set, running in dev auth mode", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
