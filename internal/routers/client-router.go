package routers

import (
	client_handlers "github.com/Xenn-00/personal-meister/internal/handlers/client"
	"github.com/Xenn-00/personal-meister/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func ClientRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/clients", kit.auth)
	clientHandler := client_handlers.NewClientHandler(kit.DB, kit.I18n)
	adminOnly := middleware.RequireRoles("admin", "super_admin")

	r.Get("/", clientHandler.ListClients)
	r.Get("/stats", clientHandler.ClientStats)
	r.Post("/", adminOnly, clientHandler.CreateClient)
	r.Get("/:client_id", clientHandler.GetClient)
	r.Put("/:client_id", adminOnly, clientHandler.UpdateClient)
	r.Delete("/:client_id", adminOnly, clientHandler.DeleteClient)
}
