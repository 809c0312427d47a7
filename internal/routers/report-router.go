package routers

import (
	report_handlers "github.com/Xenn-00/personal-meister/internal/handlers/report"
	"github.com/gofiber/fiber/v2"
)

func ReportRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/reports", kit.auth)
	reportHandler := report_handlers.NewReportHandler(kit.DB, kit.I18n)

	r.Get("/", reportHandler.ListReports)
	r.Post("/", reportHandler.CreateReport)
	r.Get("/:report_id", reportHandler.GetReport)
	r.Put("/:report_id", reportHandler.UpdateReport)
}
