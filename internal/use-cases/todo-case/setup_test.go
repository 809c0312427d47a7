package todo_case

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/entity"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	todo_lifecycle "github.com/Xenn-00/personal-meister/internal/rules/todo-lifecycle"
	use_cases "github.com/Xenn-00/personal-meister/internal/use-cases"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

var (
	superAdmin = access_rules.Actor{ID: "super-1", Role: access_rules.SuperAdmin}
	admin      = access_rules.Actor{ID: "admin-1", Role: access_rules.Admin}
	otherAdmin = access_rules.Actor{ID: "admin-2", Role: access_rules.Admin}
	employee   = access_rules.Actor{ID: "emp-1", Role: access_rules.Employee}
	colleague  = access_rules.Actor{ID: "emp-2", Role: access_rules.Employee}
)

type testDeps struct {
	repo        *MockTodoRepo
	userRepo    *use_cases.MockUserRepo
	projectRepo *use_cases.MockProjectRepo
	txManager   *use_cases.MockTxManager
	tx          *use_cases.MockTx
	taskQueue   *use_cases.MockTaskQueue
}

func newTestService() (*TodoService, *testDeps) {
	d := &testDeps{
		repo:        new(MockTodoRepo),
		userRepo:    new(use_cases.MockUserRepo),
		projectRepo: new(use_cases.MockProjectRepo),
		txManager:   new(use_cases.MockTxManager),
		tx:          new(use_cases.MockTx),
		taskQueue:   new(use_cases.MockTaskQueue),
	}
	service := &TodoService{
		repo:        d.repo,
		userRepo:    d.userRepo,
		projectRepo: d.projectRepo,
		txManager:   d.txManager,
		taskQueue:   d.taskQueue,
		access:      access_rules.NewBuilder(),
		lifecycle:   todo_lifecycle.New(func() time.Time { return fixedNow }),
	}
	return service, d
}

// assignedTodo is a pending todo assigned by admin-1 to emp-1, due in two days.
func assignedTodo() *entity.TodoEntity {
	return &entity.TodoEntity{
		ID:         "todo-1",
		Title:      "Prepare onboarding",
		DueDate:    fixedNow.Add(48 * time.Hour),
		Priority:   entity.PriorityHigh,
		Status:     entity.TodoPending,
		EmployeeID: employee.ID,
		AssignedBy: admin.ID,
		CreatedAt:  fixedNow.Add(-24 * time.Hour),
		UpdatedAt:  fixedNow.Add(-24 * time.Hour),
	}
}
