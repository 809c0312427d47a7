package leave_repo

import (
	"strings"
	"testing"

	"github.com/Xenn-00/personal-meister/internal/dtos"
	leave_dto "github.com/Xenn-00/personal-meister/internal/dtos/leave-dto"
	"github.com/Xenn-00/personal-meister/internal/repo/query"
	"github.com/stretchr/testify/assert"
)

func TestListStatement_NewestFirstWithTiebreak(t *testing.T) {
	status := "pending"
	filter := &leave_dto.LeaveListFilter{Status: &status, PageQuery: dtos.PageQuery{Page: 1, Limit: 20}}

	w := query.New()
	applyListFilter(w, filter)
	stmt := listStatement(w, filter)

	assert.Contains(t, stmt, " WHERE l.status = $1 ORDER BY l.created_at DESC, l.id DESC LIMIT $2 OFFSET $3")
	assert.True(t, strings.HasPrefix(stmt, "SELECT l.id,"))
	assert.Equal(t, []any{"pending", 20, 0}, w.Args())
}
