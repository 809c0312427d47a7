package routers

import (
	"time"

	todo_handlers "github.com/Xenn-00/personal-meister/internal/handlers/todo"
	"github.com/gofiber/fiber/v2"
)

func TodoRouter(api fiber.Router, kit routeKit) {
	r := api.Group("/todos", kit.auth)
	todoHandler := todo_handlers.NewTodoHandler(kit.DB, kit.Redis, kit.I18n)

	r.Get("/", todoHandler.ListTodos)
	r.Get("/stats", todoHandler.TodoStats)
	r.Post("/", todoHandler.CreateTodo)
	r.Post("/bulk-status", kit.rateLimit("bulk_status", 10, time.Minute), todoHandler.BulkUpdateStatus)
	r.Get("/:todo_id", todoHandler.GetTodo)
	r.Put("/:todo_id", todoHandler.UpdateTodo)
	r.Patch("/:todo_id/status", todoHandler.UpdateTodoStatus)
	r.Delete("/:todo_id", todoHandler.DeleteTodo)
}
