package dashboard_case

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/personal-meister/internal/abstraction/cache"
	dashboard_dto "github.com/Xenn-00/personal-meister/internal/dtos/dashboard-dto"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	user_repo "github.com/Xenn-00/personal-meister/internal/repo/user-repo"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	leave_case "github.com/Xenn-00/personal-meister/internal/use-cases/leave-case"
	project_case "github.com/Xenn-00/personal-meister/internal/use-cases/project-case"
	todo_case "github.com/Xenn-00/personal-meister/internal/use-cases/todo-case"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const dashboardTTL = 30 * time.Second

type DashboardService struct {
	userRepo user_repo.UserRepoContract
	todos    todo_case.TodoServiceContract
	leaves   leave_case.LeaveServiceContract
	projects project_case.ProjectServiceContract
	cache    cache.Cache
}

func NewDashboardService(db *pgxpool.Pool, redis *redis.Client) DashboardServiceContract {
	return &DashboardService{
		userRepo: user_repo.NewUserRepo(db),
		todos:    todo_case.NewTodoService(db, redis),
		leaves:   leave_case.NewLeaveService(db, redis),
		projects: project_case.NewProjectService(db),
		cache:    cache.NewRedisCache(redis),
	}
}

func dashboardKey(actor access_rules.Actor) string {
	return fmt.Sprintf("dashboard:%s:%s", actor.Role, actor.ID)
}

// GetDashboard fasst die Kennzahlen im Sichtbereich des Aufrufers zusammen.
// Das Ergebnis wird pro Benutzer 30 Sekunden gecacht.
func (s *DashboardService) GetDashboard(ctx context.Context, actor access_rules.Actor) (*dashboard_dto.DashboardResponse, *app_errors.AppError) {
	key := dashboardKey(actor)

	var cached dashboard_dto.DashboardResponse
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	} else if err != nil {
		log.Warn().Err(err.Err).Str("key", key).Msg("Dashboard-Cache nicht lesbar, Fallback auf DB")
	}

	roles, err := s.userRepo.CountRoles(ctx)
	if err != nil {
		return nil, err
	}

	todoStats, err := s.todos.TodoStats(ctx, actor)
	if err != nil {
		return nil, err
	}

	leaveStats, err := s.leaves.LeaveStats(ctx, actor)
	if err != nil {
		return nil, err
	}

	projectStats, err := s.projects.ProjectStats(ctx, actor)
	if err != nil {
		return nil, err
	}

	resp := &dashboard_dto.DashboardResponse{
		Admins:    roles.Admins,
		Employees: roles.Employees,
		Todos:     *todoStats,
		Leaves:    *leaveStats,
		Projects:  *projectStats,
	}

	if err := s.cache.Set(ctx, key, resp, dashboardTTL); err != nil {
		log.Warn().Err(err.Err).Str("key", key).Msg("Fehler beim Einstellen der Redis-Cache")
	}

	return resp, nil
}
