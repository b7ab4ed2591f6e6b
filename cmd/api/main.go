package main

import (
	"log"
	"time"

	"github.com/BMarcano/dispatcher/internal/app"
	"github.com/BMarcano/dispatcher/internal/bootstrap"
	"github.com/BMarcano/dispatcher/internal/config"
	"github.com/BMarcano/dispatcher/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	r := bootstrap.NewEngine(bootstrap.EngineConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Production:     cfg.IsProduction(),
	})

	// build dependency + routes
	if err := app.BuildApp(r, cfg); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		bootstrap.NewStdoutAuditLogger(logger),
	); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
