package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/Xenn-00/personal-meister/internal/config"
	"github.com/Xenn-00/personal-meister/internal/db"
	"github.com/Xenn-00/personal-meister/internal/mail"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/Xenn-00/personal-meister/internal/worker"
	worker_handler "github.com/Xenn-00/personal-meister/internal/worker/handlers"
	"github.com/rs/zerolog/log"
)

// Der Worker verarbeitet Mail-Tasks und die Cron-Erinnerungen für überfällige Aufgaben.
func main() {
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.APP.State, "worker")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := db.ConnectPool(ctx, cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres-Pool konnte nicht initialisiert werden")
	}
	defer dbPool.Close()

	redisClient, err := db.ConnectRedis(ctx, cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis-Pool konnte nicht initialisiert werden")
	}
	defer redisClient.Close()

	handler := worker_handler.NewWorkerHandler(dbPool, mail.NewMailer(cfg))

	log.Info().Msg("Starting worker server...")
	if err := worker.RunWorker(ctx, redisClient, handler); err != nil {
		log.Error().Err(err).Msg("worker crashed")
		return
	}
	log.Info().Msg("worker shutdown complete")
}
