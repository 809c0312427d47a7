package routers

import (
	dashboard_handlers "github.com/Xenn-00/personal-meister/internal/handlers/dashboard"
	"github.com/gofiber/fiber/v2"
)

func DashboardRouter(api fiber.Router, kit routeKit) {
	dashboardHandler := dashboard_handlers.NewDashboardHandler(kit.DB, kit.Redis, kit.I18n)
	api.Get("/dashboard", kit.auth, dashboardHandler.GetDashboard)
}
