package routers

import (
	"time"

	auth_handlers "github.com/Xenn-00/personal-meister/internal/handlers/auth"
	auth_case "github.com/Xenn-00/personal-meister/internal/use-cases/auth-case"
	"github.com/gofiber/fiber/v2"
)

// AuthRouter richtet die Authentifizierungsrouten ein.
func AuthRouter(api fiber.Router, kit routeKit, service auth_case.AuthServiceContract) {
	r := api.Group("/auth")
	authHandler := auth_handlers.NewAuthHandler(service, kit.I18n)
	r.Post("/register", kit.rateLimit("register", 3, time.Minute), authHandler.RegisterUser)
	r.Post("/login", kit.rateLimit("login", 5, time.Minute), authHandler.LoginUser)
	r.Delete("/logout", kit.auth, authHandler.LogoutUser)
	r.Delete("/logout/all", kit.auth, authHandler.LogoutAllDevices)
	r.Get("/devices", kit.auth, authHandler.ListAllUserDevices)
}
