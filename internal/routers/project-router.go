package routers

import (
	project_handlers "github.com/Xenn-00/personal-meister/internal/handlers/project"
	"github.com/Xenn-00/personal-meister/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func ProjectRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/projects", kit.auth)
	projectHandler := project_handlers.NewProjectHandler(kit.DB, kit.I18n)
	adminOnly := middleware.RequireRoles("admin", "super_admin")

	r.Get("/", projectHandler.ListProjects)
	r.Get("/stats", projectHandler.ProjectStats)
	r.Post("/", adminOnly, projectHandler.CreateProject)
	r.Get("/:project_id", projectHandler.GetProject)
	r.Put("/:project_id", adminOnly, projectHandler.UpdateProject)
	r.Delete("/:project_id", adminOnly, projectHandler.DeleteProject)
}
