package handlers

import (
	"strings"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	client_dto "github.com/Xenn-00/personal-meister/internal/dtos/client-dto"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	project_dto "github.com/Xenn-00/personal-meister/internal/dtos/project-dto"
	report_dto "github.com/Xenn-00/personal-meister/internal/dtos/report-dto"
	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	user_dto "github.com/Xenn-00/personal-meister/internal/dtos/user-dto"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt eine standardisierte WebResponse.
func CreateResponse[T any](message string, data T, requestID string, details ...any) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
		Details:   details,
	}
}

// NewValidator registriert alle Enum-Tags der DTOs.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("todoStatus", todo_dto.IsValidTodoStatus)
	validate.RegisterValidation("todoPriority", todo_dto.IsValidTodoPriority)
	validate.RegisterValidation("leaveStatus", leave_dto.IsValidLeaveStatus)
	validate.RegisterValidation("projectStatus", project_dto.IsValidProjectStatus)
	validate.RegisterValidation("clientStatus", client_dto.IsValidClientStatus)
	validate.RegisterValidation("role", user_dto.IsValidRole)
	return validate
}

func GetUserID(c *fiber.Ctx) (string, *app_errors.AppError) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", nil)
	}

	return userID, nil
}

// GetActor baut den Aufrufer aus den Locals, die AuthMiddleware gesetzt hat.
func GetActor(c *fiber.Ctx) (access_rules.Actor, *app_errors.AppError) {
	userID, appErr := GetUserID(c)
	if appErr != nil {
		return access_rules.Actor{}, appErr
	}

	role, _ := c.Locals("role").(string)
	actor, err := access_rules.NewActor(userID, role)
	if err != nil {
		return access_rules.Actor{}, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.unauthorized", err)
	}
	return actor, nil
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

func GetLang(c *fiber.Ctx) string {
	lang, _ := c.Locals("lang").(string)
	return lang
}

// ParseBody parst und validiert den Request-Body. normalize läuft zwischen Parsen und Validieren.
func ParseBody(c *fiber.Ctx, v *validator.Validate, req any, normalize ...func()) *app_errors.AppError {
	if err := c.BodyParser(req); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}
	for _, fn := range normalize {
		fn()
	}
	if err := v.Struct(req); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

// ParseQuery parst und validiert die Query-Parameter einer Liste.
func ParseQuery(c *fiber.Ctx, v *validator.Validate, filter any, normalize ...func()) *app_errors.AppError {
	if err := c.QueryParser(filter); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	for _, fn := range normalize {
		fn()
	}
	if err := v.Struct(filter); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func parseParam(c *fiber.Ctx, v *validator.Validate, param any) *app_errors.AppError {
	if err := c.ParamsParser(param); err != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}
	if err := v.Struct(param); err != nil {
		return app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return nil
}

func GetParamTodoID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param todo_dto.ParamTodoID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamLeaveID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param leave_dto.ParamLeaveID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamProjectID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param project_dto.ParamProjectID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamClientID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param client_dto.ParamClientID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamReportID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param report_dto.ParamReportID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

func GetParamUserID(c *fiber.Ctx, v *validator.Validate) (string, *app_errors.AppError) {
	var param user_dto.ParamGetUserByID
	if err := parseParam(c, v, &param); err != nil {
		return "", err
	}
	return param.ID, nil
}

// NormalizeEnum bringt Werte wie "In Progress" auf die gespeicherte Form "in_progress".
func NormalizeEnum(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}

// NormalizeEnumPtr wendet NormalizeEnum auf optionale Query-Werte an.
func NormalizeEnumPtr(s *string) {
	if s != nil {
		*s = NormalizeEnum(*s)
	}
}

// SendJSON schreibt die lokalisierte Antwort.
func SendJSON[T any](c *fiber.Ctx, status int, message string, data T, details ...any) error {
	webResp := CreateResponse(message, data, GetRequestID(c), details...)
	if err := c.Status(status).JSON(webResp); err != nil {
		return app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "response.write_failed", err)
	}
	return nil
}
