package dashboard_handlers

import (
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	dashboard_case "github.com/Xenn-00/personal-meister/internal/use-cases/dashboard-case"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type DashboardHandler struct {
	service dashboard_case.DashboardServiceContract
	i18n    internal_i18n.Service
}

func NewDashboardHandler(db *pgxpool.Pool, redis *redis.Client, i18n internal_i18n.Service) *DashboardHandler {
	return &DashboardHandler{service: dashboard_case.NewDashboardService(db, redis), i18n: i18n}
}

func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	resp, err := h.service.GetDashboard(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_dashboard", nil), resp)
}
