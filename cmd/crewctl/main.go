package main

import (
	"context"
	"fmt"
	"os"

	"github.com/BMarcano/dispatcher/internal/bootstrap"
	"github.com/BMarcano/dispatcher/internal/command"
	"github.com/BMarcano/dispatcher/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	root := command.NewRootCmd(command.Env{Config: cfg})
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
