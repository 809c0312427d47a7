package todo_case

import (
	"context"
	"testing"
	"time"

	todo_dto "github.com/Xenn-00/personal-meister/internal/dtos/todo-dto"
	"github.com/Xenn-00/personal-meister/internal/entity"
	app_errors "github.com/Xenn-00/personal-meister/internal/errors"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Test employee list ignores a requested employee_id and derives overdue on read
func TestListTodos_EmployeeScope(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	other := colleague.ID
	filter := todo_dto.TodoListFilter{EmployeeID: &other}

	expectedScope, ruleErr := access_rules.NewBuilder().TodoList(employee, access_rules.Query{})
	require.NoError(t, ruleErr)

	late := assignedTodo()
	late.DueDate = fixedNow.Add(-time.Hour)
	rows := []entity.TodoWithNames{{TodoEntity: *late, EmployeeName: "Emma", AssignedByName: "Adam"}}

	d.repo.On("ListTodos", ctx, expectedScope, mock.Anything, fixedNow).Return(rows, (*app_errors.AppError)(nil))
	d.repo.On("CountTodos", ctx, expectedScope, mock.Anything, fixedNow).Return(1, (*app_errors.AppError)(nil))

	resp, meta, err := service.ListTodos(ctx, employee, filter)

	require.Nil(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "overdue", resp[0].Status)
	assert.True(t, resp[0].IsOverdue)
	assert.Equal(t, "Emma", resp[0].EmployeeName)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)

	d.repo.AssertExpectations(t)
}

// Test admin narrowing by employee_id keeps the assigned_by scope
func TestListTodos_AdminNarrowed(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	target := employee.ID
	filter := todo_dto.TodoListFilter{EmployeeID: &target}
	filter.Page = 2
	filter.Limit = 10

	expectedScope, ruleErr := access_rules.NewBuilder().TodoList(admin, access_rules.Query{EmployeeID: target})
	require.NoError(t, ruleErr)
	assert.Len(t, expectedScope.Clauses(), 2)

	d.repo.On("ListTodos", ctx, expectedScope, mock.MatchedBy(func(f *todo_dto.TodoListFilter) bool {
		return f.Page == 2 && f.Limit == 10
	}), fixedNow).Return([]entity.TodoWithNames{}, (*app_errors.AppError)(nil))
	d.repo.On("CountTodos", ctx, expectedScope, mock.Anything, fixedNow).Return(25, (*app_errors.AppError)(nil))

	resp, meta, err := service.ListTodos(ctx, admin, filter)

	require.Nil(t, err)
	assert.Empty(t, resp)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	d.repo.AssertExpectations(t)
}

// Test stats use the unrestricted scope for super admins
func TestTodoStats_SuperAdmin(t *testing.T) {
	ctx := context.Background()
	service, d := newTestService()

	stats := &entity.TodoStats{Total: 4, Pending: 1, Completed: 1, Overdue: 2, OverdueCount: 2}
	d.repo.On("TodoStats", ctx, access_rules.Filter{}, fixedNow).Return(stats, (*app_errors.AppError)(nil))

	resp, err := service.TodoStats(ctx, superAdmin)

	require.Nil(t, err)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, resp.Overdue, resp.OverdueCount)
	d.repo.AssertExpectations(t)
}
