package routers

import (
	"net"
	"strconv"
	"time"

	"github.com/Xenn-00/personal-meister/internal/i18n"
	"github.com/Xenn-00/personal-meister/internal/middleware"
	auth_case "github.com/Xenn-00/personal-meister/internal/use-cases/auth-case"
	"github.com/Xenn-00/personal-meister/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Deps bündelt, was die Router zum Aufbau der Handler brauchen.
type Deps struct {
	DB       *pgxpool.Pool
	Redis    *redis.Client
	I18n     i18n.Service
	Paseto   *utils.PasetoMaker
	TokenTTL time.Duration
}

// routeKit enthält die geteilten Middlewares.
type routeKit struct {
	Deps
	auth       fiber.Handler
	limitStore fiber.Storage
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, deps Deps) {
	api := app.Group("/api/v1")

	authService := auth_case.NewAuthService(deps.DB, deps.Redis, deps.Paseto, deps.TokenTTL)
	kit := routeKit{
		Deps:       deps,
		auth:       middleware.AuthMiddleware(deps.Paseto, authService),
		limitStore: newLimiterStorage(deps.Redis),
	}

	AuthRouter(api, kit, authService)
	UserRouter(api, kit)
	TodoRouter(api, kit)
	LeaveRouter(api, kit)
	ProjectRouter(api, kit)
	ClientRouter(api, kit)
	ReportRouter(api, kit)
	DashboardRouter(api, kit)
	HealthRouter(api, deps.DB, deps.Redis)
}

// newLimiterStorage legt den Rate-Limiter in Redis-DB 1 ab, getrennt von Sessions und Cache.
func newLimiterStorage(client *redis.Client) fiber.Storage {
	host, portRaw, err := net.SplitHostPort(client.Options().Addr)
	if err != nil {
		log.Warn().Err(err).Msg("Redis-Adresse ohne Port, nutze 6379")
		host, portRaw = client.Options().Addr, "6379"
	}
	port, err := strconv.Atoi(portRaw)
	if err != nil {
		port = 6379
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: client.Options().Password,
		Database: 1,
	})
}

// rateLimit begrenzt eine Route auf max Anfragen pro Fenster, pro Benutzer oder sonst pro IP.
func (k routeKit) rateLimit(prefix string, max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID, ok := c.Locals("user_id").(string); ok && userID != "" {
				return prefix + ":" + userID
			}
			return prefix + ":ip:" + c.IP() // fallback to ip
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"status": "error",
				"error": fiber.Map{
					"code":    fiber.StatusTooManyRequests,
					"type":    "TOO_MANY_REQUESTS",
					"message": "too_many_request",
				},
			})
		},
		Storage: k.limitStore,
	})
}
