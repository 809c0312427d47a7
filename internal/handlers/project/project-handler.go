package project_handlers

import (
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	project_case "github.com/Xenn-00/personal-meister/internal/use-cases/project-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectHandler struct {
	validator *validator.Validate
	service   project_case.ProjectServiceContract
	i18n      internal_i18n.Service
}

func NewProjectHandler(db *pgxpool.Pool, i18n internal_i18n.Service) *ProjectHandler {
	return &ProjectHandler{
		validator: handlers.NewValidator(),
		service:   project_case.NewProjectService(db),
		i18n:      i18n,
	}
}

func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req project_dto.CreateProjectRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.CreateProject(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_project", nil), resp)
}

func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var filter project_dto.ProjectListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter, func() { handlers.NormalizeEnumPtr(filter.Status) }); err != nil {
		return err
	}

	resp, meta, err := h.service.ListProjects(c.Context(), actor, filter)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_projects", nil), resp, meta)
}

func (h *ProjectHandler) ProjectStats(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	stats, err := h.service.ProjectStats(c.Context(), actor)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_project_stats", nil), stats)
}

func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetProject(c.Context(), actor, projectID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_project", nil), resp)
}

func (h *ProjectHandler) UpdateProject(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	var req project_dto.UpdateProjectRequest
	if err := handlers.ParseBody(c, h.validator, &req, func() { handlers.NormalizeEnumPtr(req.Status) }); err != nil {
		return err
	}

	resp, err := h.service.UpdateProject(c.Context(), actor, projectID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_project", nil), resp)
}

func (h *ProjectHandler) DeleteProject(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	projectID, err := handlers.GetParamProjectID(c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteProject(c.Context(), actor, projectID); err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_delete_project", nil), "OK")
}
