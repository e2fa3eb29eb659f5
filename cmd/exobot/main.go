// /cmd/exobot/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	_ "exobot/internal/command"
	"exobot/internal/config"
	"exobot/internal/discord"
	"exobot/internal/health"
	"exobot/internal/logging"
	"exobot/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, cfg.StoragePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.StoragePath).Msg("failed to open storage")
	}
	defer store.Close()

	bot, err := discord.New(cfg, store)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build bot")
	}

	go func() {
		if err := health.New(cfg.HealthAddr).Run(ctx); err != nil {
			log.Error().Err(err).Msg("health server failed")
		}
	}()

	if err := bot.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
	log.Info().Msg("goodbye")
}
