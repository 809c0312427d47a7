package report_handlers

import (
	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	"github.com/Xenn-00/personal-meister/internal/handlers"
	internal_i18n "github.com/Xenn-00/personal-meister/internal/i18n"
	report_case "github.com/Xenn-00/personal-meister/internal/use-cases/report-case"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportHandler struct {
	validator *validator.Validate
	service   report_case.ReportServiceContract
	i18n      internal_i18n.Service
}

func NewReportHandler(db *pgxpool.Pool, i18n internal_i18n.Service) *ReportHandler {
	return &ReportHandler{
		validator: handlers.NewValidator(),
		service:   report_case.NewReportService(db),
		i18n:      i18n,
	}
}

func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var req report_dto.CreateReportRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.CreateReport(c.Context(), actor, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusCreated, h.i18n.T(handlers.GetLang(c), "response.success_create_report", nil), resp)
}

func (h *ReportHandler) ListReports(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	var filter report_dto.ReportListFilter
	if err := handlers.ParseQuery(c, h.validator, &filter); err != nil {
		return err
	}

	resp, meta, err := h.service.ListReports(c.Context(), actor, filter)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_list_reports", nil), resp, meta)
}

func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	reportID, err := handlers.GetParamReportID(c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.GetReport(c.Context(), actor, reportID)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_get_report", nil), resp)
}

func (h *ReportHandler) UpdateReport(c *fiber.Ctx) error {
	actor, err := handlers.GetActor(c)
	if err != nil {
		return err
	}

	reportID, err := handlers.GetParamReportID(c, h.validator)
	if err != nil {
		return err
	}

	var req report_dto.UpdateReportRequest
	if err := handlers.ParseBody(c, h.validator, &req); err != nil {
		return err
	}

	resp, err := h.service.UpdateReport(c.Context(), actor, reportID, &req)
	if err != nil {
		return err
	}

	return handlers.SendJSON(c, fiber.StatusOK, h.i18n.T(handlers.GetLang(c), "response.success_update_report", nil), resp)
}
