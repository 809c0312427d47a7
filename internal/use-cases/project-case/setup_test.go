package project_case

import (
	"time"

	"github.com/Xenn-00/personal-meister/internal/entity"
	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	use_cases "github.com/Xenn-00/personal-meister/internal/use-cases"
)

var (
	fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	admin    = access_rules.Actor{ID: "admin-1", Role: access_rules.Admin}
	employee = access_rules.Actor{ID: "emp-1", Role: access_rules.Employee}
)

type testDeps struct {
	repo       *use_cases.MockProjectRepo
	userRepo   *use_cases.MockUserRepo
	clientRepo *use_cases.MockClientRepo
	txManager  *use_cases.MockTxManager
	tx         *use_cases.MockTx
}

func newTestService() (*ProjectService, *testDeps) {
	d := &testDeps{
		repo:       new(use_cases.MockProjectRepo),
		userRepo:   new(use_cases.MockUserRepo),
		clientRepo: new(use_cases.MockClientRepo),
		txManager:  new(use_cases.MockTxManager),
		tx:         new(use_cases.MockTx),
	}
	return &ProjectService{
		repo:       d.repo,
		userRepo:   d.userRepo,
		clientRepo: d.clientRepo,
		txManager:  d.txManager,
		access:     access_rules.NewBuilder(),
		now:        func() time.Time { return fixedNow },
	}, d
}

func sampleProject() *entity.ProjectEntity {
	return &entity.ProjectEntity{
		ID:          "project-1",
		Name:        "Payroll",
		Description: "Payroll migration",
		Technology:  "Go, PostgreSQL",
		ClientID:    "client-1",
		ClientName:  "Acme GmbH",
		TeamMembers: []string{"emp-1", "emp-2"},
		Status:      entity.ProjectActive,
		StartDate:   fixedNow.AddDate(0, 0, -30),
		CreatedBy:   admin.ID,
	}
}

func sampleClient(id, name string) *entity.ClientEntity {
	return &entity.ClientEntity{ID: id, Name: name, Status: entity.ClientActive}
}
