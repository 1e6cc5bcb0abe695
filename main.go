package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/angas/greenplanet-go/config"
	"github.com/angas/greenplanet-go/greenplanet"
	"github.com/angas/greenplanet-go/prices"
	"github.com/angas/greenplanet-go/task"
	"github.com/angas/greenplanet-go/types"
	"github.com/angas/greenplanet-go/www"
	"github.com/lmittmann/tint"
)

var Version = "?.?.?"

func main() {
	defer func() {
		if err := recover(); err != nil {
			exitWithError(slog.Default(), fmt.Errorf("application panicked: %v", err))
		} else {
			slog.Default().Info("application is shutting down...")
		}
	}()

	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cnfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      cnfg.Logging.GetConsoleLevel(),
		TimeFormat: time.RFC3339,
	}))
	slog.SetDefault(logger)
	logger.Debug("greenplanet is starting...", slog.String("version", Version))

	store := prices.NewStore()

	providers := []types.PriceProvider{
		greenplanet.New(cnfg.GreenPlanet.GetUrl(), cnfg.GreenPlanet.GetTimeout()),
	}

	tasks := task.NewTasks(store, providers, cnfg)
	tasks.Run()
	defer tasks.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-ctx.Done():
			logger.Info("main context done")
		case sig := <-sigCh:
			logger.Info("received signal", slog.Any("signal", sig))
			cancel()
		}
	}()

	server := www.StartServer(store, tasks, cnfg.Api, Version)
	server.Run(ctx)
}

func exitWithError(logger *slog.Logger, err error) {
	if err != nil {
		logger.Error("application shutting down with error", slog.Any("error", err))
	}
	time.Sleep(2 * time.Second)
	os.Exit(1)
}
