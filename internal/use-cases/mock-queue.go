package use_cases

import (
	"github.com/Xenn-00/personal-meister/internal/queue"
	worker_task "github.com/Xenn-00/personal-meister/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing
type MockTaskQueue struct {
	mock.Mock
}

func (m *MockTaskQueue) EnqueueTodoAssigned(payload *worker_task.TodoAssignedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}

func (m *MockTaskQueue) EnqueueLeaveStatusChanged(payload *worker_task.LeaveStatusChangedPayload) error {
	args := m.Called(payload)
	return args.Error(0)
}
