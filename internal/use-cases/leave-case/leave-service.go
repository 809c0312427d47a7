package leave_case

import (
	"context"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/tx"
	"github.com/Xenn-00/personal-meister/internal/dtos"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	"github.com/Xenn-00/personal-meister/internal/queue"
	leave_repo "github.com/Xenn-00/personal-meister/internal/repo/leave-repo"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

type LeaveService struct {
	repo      leave_repo.LeaveRepoContract
	userRepo  user_repo.UserRepoContract
	txManager tx.TxManager
	taskQueue queue.TaskQueueClient
	access    *access_rules.Builder
	now       func() time.Time
}

func NewLeaveService(db *pgxpool.Pool, redis *redis.Client) LeaveServiceContract {
	return &LeaveService{
		repo:      leave_repo.NewLeaveRepo(db),
		userRepo:  user_repo.NewUserRepo(db),
		txManager: tx.NewPgxTxManager(db),
		taskQueue: queue.NewTaskQueue(redis),
		access:    access_rules.NewBuilder(),
		now:       time.Now,
	}
}

func toLeaveResponse(l *entity.LeaveWithEmployee) *leave_dto.LeaveResponse {
	return &leave_dto.LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		FromDate:     l.FromDate,
		ToDate:       l.ToDate,
		DurationDays: l.DurationDays(),
		Reason:       l.Reason,
		Status:       string(l.Status),
		IsHalfDay:    l.IsHalfDay,
		CreatedBy:    l.CreatedBy,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

func invalidDateRange() *app_errors.AppError {
	return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrValidation, "leave.invalid_date_range", nil)
}

func (s *LeaveService) CreateLeave(ctx context.Context, actor access_rules.Actor, req *leave_dto.CreateLeaveRequest) (*leave_dto.LeaveResponse, *app_errors.AppError) {
	// Employees always file for themselves, a requested employee_id is ignored
	employeeID := req.EmployeeID
	if employeeID == "" || actor.Role == access_rules.Employee {
		employeeID = actor.ID
	}

	if ruleErr := s.access.LeaveCreate(actor, access_rules.Record{EmployeeID: employeeID}); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	if req.ToDate.Before(req.FromDate) {
		return nil, invalidDateRange()
	}

	if employeeID != actor.ID {
		found, err := s.userRepo.ExistingIDs(ctx, []string{employeeID})
		if err != nil {
			return nil, err
		}
		if !found[employeeID] {
			return nil, app_errors.NewNotFoundError("user.not_found")
		}
	}

	leaveID, idErr := uuid.NewV7()
	if idErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrInternal, "internal_error", idErr)
	}

	now := s.now()
	leave := &entity.LeaveEntity{
		ID:         leaveID.String(),
		EmployeeID: employeeID,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Reason:     req.Reason,
		Status:     entity.LeavePending,
		IsHalfDay:  req.IsHalfDay,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.InsertLeave(ctx, leave); err != nil {
		return nil, err
	}

	return toLeaveResponse(&entity.LeaveWithEmployee{LeaveEntity: *leave}), nil
}

func (s *LeaveService) ListLeaves(ctx context.Context, actor access_rules.Actor, filter leave_dto.LeaveListFilter) ([]*leave_dto.LeaveResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	filter.Normalize()

	q := access_rules.Query{}
	if filter.EmployeeID != nil {
		q.EmployeeID = *filter.EmployeeID
	}
	scope, ruleErr := s.access.LeaveList(actor, q)
	if ruleErr != nil {
		return nil, nil, app_errors.FromRuleError(ruleErr)
	}

	leaves, err := s.repo.ListLeaves(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.repo.CountLeaves(ctx, scope, &filter)
	if err != nil {
		return nil, nil, err
	}

	responses := make([]*leave_dto.LeaveResponse, 0, len(leaves))
	for i := range leaves {
		responses = append(responses, toLeaveResponse(&leaves[i]))
	}

	return responses, dtos.NewPaginationMeta(filter.Page, filter.Limit, total), nil
}

func (s *LeaveService) GetLeave(ctx context.Context, actor access_rules.Actor, leaveID string) (*leave_dto.LeaveResponse, *app_errors.AppError) {
	scope, ruleErr := s.access.LeaveRead(actor)
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	leave, err := s.repo.FindScopedLeave(ctx, leaveID, scope)
	if err != nil {
		return nil, err
	}

	return toLeaveResponse(leave), nil
}

func (s *LeaveService) LeaveStats(ctx context.Context, actor access_rules.Actor) (*entity.LeaveStats, *app_errors.AppError) {
	scope, ruleErr := s.access.LeaveList(actor, access_rules.Query{})
	if ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	return s.repo.LeaveStats(ctx, scope)
}

func (s *LeaveService) UpdateLeave(ctx context.Context, actor access_rules.Actor, leaveID string, req *leave_dto.UpdateLeaveRequest) (*leave_dto.LeaveResponse, *app_errors.AppError) {
	leave, err := s.repo.GetLeaveByID(ctx, leaveID)
	if err != nil {
		return nil, err
	}

	record := access_rules.Record{EmployeeID: leave.EmployeeID}
	if req.Status != nil {
		record.RequestedStatus = *req.Status
	}
	if ruleErr := s.access.LeaveUpdate(actor, record); ruleErr != nil {
		return nil, app_errors.FromRuleError(ruleErr)
	}

	// Employees may only reshape a request nobody has decided on yet.
	if actor.Role == access_rules.Employee && leave.Status != entity.LeavePending && req.ChangesContent() {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "leave.only_pending_editable", nil)
	}

	previous := leave.Status
	if req.FromDate != nil {
		leave.FromDate = *req.FromDate
	}
	if req.ToDate != nil {
		leave.ToDate = *req.ToDate
	}
	if req.Reason != nil {
		leave.Reason = *req.Reason
	}
	if req.IsHalfDay != nil {
		leave.IsHalfDay = *req.IsHalfDay
	}
	if req.Status != nil {
		leave.Status = entity.LeaveStatus(*req.Status)
	}

	if leave.ToDate.Before(leave.FromDate) {
		return nil, invalidDateRange()
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.repo.UpdateLeave(ctx, t, leave); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	// The owner is told about decisions made by someone else
	if leave.Status != previous && actor.ID != leave.EmployeeID {
		payload := &worker_task.LeaveStatusChangedPayload{
			LeaveID:    leave.ID,
			EmployeeID: leave.EmployeeID,
			Status:     string(leave.Status),
			FromDate:   leave.FromDate,
			ToDate:     leave.ToDate,
			ChangedBy:  actor.ID,
		}
		if err := s.taskQueue.EnqueueLeaveStatusChanged(payload); err != nil {
			log.Warn().Err(err).Str("leave_id", leave.ID).Msg("failed to enqueue leave status mail")
		}
	}

	return toLeaveResponse(&entity.LeaveWithEmployee{LeaveEntity: *leave}), nil
}

func (s *LeaveService) DeleteLeave(ctx context.Context, actor access_rules.Actor, leaveID string) *app_errors.AppError {
	leave, err := s.repo.GetLeaveByID(ctx, leaveID)
	if err != nil {
		return err
	}

	if ruleErr := s.access.LeaveDelete(actor, access_rules.Record{EmployeeID: leave.EmployeeID}); ruleErr != nil {
		return app_errors.FromRuleError(ruleErr)
	}

	return s.repo.DeleteLeave(ctx, leave.ID)
}
