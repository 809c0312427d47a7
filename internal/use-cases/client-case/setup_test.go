package client_case

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

func newTestService() (*ClientService, *use_cases.MockClientRepo) {
	repo := new(use_cases.MockClientRepo)
	return &ClientService{
		repo:   repo,
		access: access_rules.NewBuilder(),
		now:    func() time.Time { return fixedNow },
	}, repo
}

func sampleClient() *entity.ClientEntity {
	return &entity.ClientEntity{
		ID:        "client-1",
		Name:      "Acme GmbH",
		Email:     "office@acme.de",
		Country:   "Germany",
		State:     "Berlin",
		City:      "Berlin",
		Status:    entity.ClientActive,
		CreatedBy: admin.ID,
	}
}
