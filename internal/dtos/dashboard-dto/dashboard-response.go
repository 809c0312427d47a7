package dashboard_dto

import "github.com/Xenn-00/personal-meister/internal/entity"

type DashboardResponse struct {
	Admins    int                 `json:"admins"`
	Employees int                 `json:"employees"`
	Todos     entity.TodoStats    `json:"todos"`
	Leaves    entity.LeaveStats   `json:"leaves"`
	Projects  entity.ProjectStats `json:"projects"`
}
