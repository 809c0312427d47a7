package query

import (
	"testing"

	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var todoColumns = map[access_rules.Field]string{
	access_rules.FieldEmployeeID:        "t.employee_id",
	access_rules.FieldAssignedBy:        "t.assigned_by",
	access_rules.FieldHiddenForEmployee: "t.is_hidden_for_employee",
}

func TestScope_EmployeeTodoFilter(t *testing.T) {
	b := access_rules.NewBuilder()
	f, err := b.TodoList(access_rules.Actor{ID: "emp-1", Role: access_rules.Employee}, access_rules.Query{})
	require.NoError(t, err)

	w := New()
	require.NoError(t, w.Scope(f, todoColumns))
	w.Eq("t.status", "pending")

	assert.Equal(t, " WHERE t.employee_id = $1 AND t.is_hidden_for_employee IS NOT TRUE AND t.status = $2", w.SQL())
	assert.Equal(t, []any{"emp-1", "pending"}, w.Args())
}

func TestScope_UnrestrictedIsEmpty(t *testing.T) {
	w := New()
	require.NoError(t, w.Scope(access_rules.Filter{}, todoColumns))
	assert.Equal(t, "", w.SQL())
	assert.Empty(t, w.Args())
}

func TestScope_TeamMembership(t *testing.T) {
	b := access_rules.NewBuilder()
	f, err := b.ProjectList(access_rules.Actor{ID: "emp-1", Role: access_rules.Employee})
	require.NoError(t, err)

	w := New()
	require.NoError(t, w.Scope(f, map[access_rules.Field]string{access_rules.FieldTeamMembers: "p.team_members"}))
	assert.Equal(t, " WHERE $1 = ANY(p.team_members)", w.SQL())
}

func TestScope_UnknownFieldFails(t *testing.T) {
	b := access_rules.NewBuilder()
	f, err := b.ProjectList(access_rules.Actor{ID: "emp-1", Role: access_rules.Employee})
	require.NoError(t, err)

	assert.Error(t, New().Scope(f, todoColumns))
}

func TestSearchAndPage(t *testing.T) {
	w := New().Search("50%_off", "title", "notes")
	page := w.Page(3, 20)

	assert.Equal(t, " WHERE (title ILIKE $1 OR notes ILIKE $1)", w.SQL())
	assert.Equal(t, " LIMIT $2 OFFSET $3", page)
	assert.Equal(t, []any{`%50\%\_off%`, 20, 40}, w.Args())
}

func TestSearch_BlankIgnored(t *testing.T) {
	w := New().Search("   ", "title")
	assert.Equal(t, "", w.SQL())
}
