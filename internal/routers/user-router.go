package routers

import (
	user_handlers "github.com/Xenn-00/personal-meister/internal/handlers/user"
	"github.com/Xenn-00/personal-meister/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/employees", kit.auth)
	userHandler := user_handlers.NewUserHandler(kit.DB, kit.Redis, kit.I18n)
	adminOnly := middleware.RequireRoles("admin", "super_admin")

	r.Post("/", adminOnly, userHandler.CreateEmployee)
	r.Get("/", adminOnly, userHandler.ListEmployees)
	r.Get("/me", userHandler.FetchUserSelfProfile)
	r.Get("/:id", userHandler.FetchUserProfileByID)
	r.Patch("/:id/active", adminOnly, userHandler.SetEmployeeActive)
}
