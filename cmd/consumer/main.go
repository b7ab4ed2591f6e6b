package main

import (
	"log"

	"github.com/BMarcano/dispatcher/internal/app"
	"github.com/BMarcano/dispatcher/internal/bootstrap"
	"github.com/BMarcano/dispatcher/internal/config"

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

	if err := app.RunConsumer(cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
