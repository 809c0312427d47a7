package main

// Package main ist der Einstiegspunkt der HR-API "personal-meister".
// Es lädt die Konfiguration, migriert die Datenbank, baut Paseto und i18n auf
// und startet die Fiber-API.

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Xenn-00/personal-meister/internal/config"
	"github.com/Xenn-00/personal-meister/internal/db"
	"github.com/Xenn-00/personal-meister/internal/i18n"
	"github.com/Xenn-00/personal-meister/internal/middleware"
	"github.com/Xenn-00/personal-meister/internal/routers"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// main initialisiert alle benötigten Ressourcen für den HTTP-Server und stellt sicher,
// dass bei Beendigung sauber heruntergefahren und aufgeräumt wird.
func main() {
	// 1. Konfiguration laden (config.LoadConfig) und Logger aufsetzen.
	cfg := config.LoadConfig()
	utils.SetupLogger(cfg.APP.State, "api")
	// 1a. I18N Einführung
	i18nSvc := i18n.NewInitI18nService()
	// 2. Postgres-Verbindungs-Pool (db.ConnectPool) und Redis-Client (db.ConnectRedis) erstellen.
	dbPool, err := db.ConnectPool(context.Background(), cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres-Pool konnte nicht initialisiert werden")
	}
	redisPool, err := db.ConnectRedis(context.Background(), cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis-Pool konnte nicht initialisiert werden") // Fehler beim Initialisieren Redis-Pool
	}
	// 2a. Schema anwenden, bevor Anfragen angenommen werden.
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(migrateCtx, dbPool); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("Migration fehlgeschlagen")
	}
	cancelMigrate()
	// 3. Paseto-Maker initialisieren (utils.NewPasetoMaker).
	paseto, err := utils.NewPasetoMaker(cfg.APP_SECRET.Paseto.HexKey) // Paseto erwartet einen gültigen HexKey in cfg.APP_SECRET.Paseto.HexKey.
	if err != nil {
		log.Fatal().Err(err).Msg("Paseto-Maker konnte nicht initialisiert werden") // Fehler beim Initialisieren führen zum sofortigen Abbruch.
	}

	// 4. Fiber-App mit ErrorHandler, RequestID- und Logger-Middleware erstellen.
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc),
	})
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())

	// 5. Applikationsrouten registrieren (routers.SetupRoutes).
	routers.SetupRoutes(app, routers.Deps{
		DB:       dbPool,
		Redis:    redisPool,
		I18n:     i18nSvc,
		Paseto:   paseto,
		TokenTTL: time.Duration(cfg.APP_SECRET.TokenTTLMinutes) * time.Minute,
	})

	go func() {
		// 6. HTTP-Server starten (app.Listen), soll es am Ende stellen, weil es blocking ist. Aber wir können es eigenlich in eine Goroutine einfügen.
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port) // Logging erfolgt mit zerolog
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil { // Ports und App-Metadaten werden aus cfg.APP gelesen; falsche Konfiguration verhindert Start.
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	// 7. Graceful Shutdown bei SIGINT/SIGTERM: DB-Pool schließen, Fiber herunterfahren,
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM) // Signale werden mit signal.NotifyContext abgefangen, stop() wird deferred aufgerufen.
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}

	if dbPool != nil { // Vor dem Schließen des DB-Pools auf nil prüfen (pool != nil), um Panics zu vermeiden.
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}
	log.Info().Msg("Datenbank-Pool erfolgreich abgeschlossen.")

	// Fiber shutdown
	if err := app.Shutdown(); err != nil { // app.Shutdown() beendet laufende Verbindungen und Handler sauber; Fehler dabei sollten geloggt werden.
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgtreten: %v", err)
	}
	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
