package routers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const readinessTimeout = 2 * time.Second

// HealthRouter registriert /healthz, /livez und /readyz.
// /readyz prüft Postgres und Redis und meldet den Zustand jeder Komponente.
func HealthRouter(app fiber.Router, db *pgxpool.Pool, redis *redis.Client) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Service lebt.",
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})

	app.Get("/readyz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.Context(), readinessTimeout)
		defer cancel()

		checks := map[string]func(context.Context) error{
			"postgres": db.Ping,
			"redis": func(ctx context.Context) error {
				return redis.Ping(ctx).Err()
			},
		}

		ready := true
		components := fiber.Map{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				log.Warn().Err(err).Str("component", name).Msg("Readiness-Check fehlgeschlagen")
				components[name] = "down"
				ready = false
				continue
			}
			components[name] = "up"
		}

		status := fiber.StatusOK
		if !ready {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"ready":      ready,
			"components": components,
		})
	})
}
