package routers

import (
	leave_handlers "github.com/Xenn-00/personal-meister/internal/handlers/leave"
	"github.com/gofiber/fiber/v2"
)

func LeaveRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/leaves", kit.auth)
	leaveHandler := leave_handlers.NewLeaveHandler(kit.DB, kit.Redis, kit.I18n)

	r.Get("/", leaveHandler.ListLeaves)
	r.Get("/stats", leaveHandler.LeaveStats)
	r.Post("/", leaveHandler.CreateLeave)
	r.Get("/:leave_id", leaveHandler.GetLeave)
	r.Put("/:leave_id", leaveHandler.UpdateLeave)
	r.Delete("/:leave_id", leaveHandler.DeleteLeave)
}
