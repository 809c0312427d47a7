package access_rules

import (
	"testing"

	"github.com/Xenn-00/personal-meister/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	emp      = Actor{ID: "emp-1", Role: Employee}
	otherEmp = Actor{ID: "emp-2", Role: Employee}
	admin    = Actor{ID: "admin-1", Role: Admin}
	admin2   = Actor{ID: "admin-2", Role: Admin}
	root     = Actor{ID: "root-1", Role: SuperAdmin}
)

func assertForbidden(t *testing.T, err error) {
	t.Helper()
	kind, ok := rules.KindOf(err)
	require.True(t, ok, "expected rule error, got %v", err)
	assert.Equal(t, rules.KindForbidden, kind)
}

func TestTodoList_EmployeeOnlySeesOwnVisibleTodos(t *testing.T) {
	b := NewBuilder()

	f, err := b.TodoList(emp, Query{EmployeeID: otherEmp.ID})
	require.NoError(t, err)

	todos := []struct {
		name    string
		rec     Record
		visible bool
	}{
		{"own", Record{EmployeeID: emp.ID, AssignedBy: admin.ID}, true},
		{"own hidden", Record{EmployeeID: emp.ID, AssignedBy: admin.ID, HiddenForEmployee: true}, false},
		{"other employee", Record{EmployeeID: otherEmp.ID, AssignedBy: admin.ID}, false},
	}
	for _, tc := range todos {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.visible, f.Matches(tc.rec))
		})
	}
}

func TestTodoMutations_EmployeeOnForeignTodoForbidden(t *testing.T) {
	b := NewBuilder()
	foreign := Record{EmployeeID: otherEmp.ID, AssignedBy: admin.ID}

	assertForbidden(t, b.TodoUpdate(emp, foreign))
	assertForbidden(t, b.TodoUpdateStatus(emp, foreign))
	assertForbidden(t, b.TodoDelete(emp, foreign))
}

func TestTodoDelete_EmployeeNeverDeletes(t *testing.T) {
	b := NewBuilder()
	assertForbidden(t, b.TodoDelete(emp, Record{EmployeeID: emp.ID, AssignedBy: emp.ID}))
}

func TestTodoList_AdminSeesOnlyAssignedByThem(t *testing.T) {
	b := NewBuilder()

	f, err := b.TodoList(admin, Query{})
	require.NoError(t, err)
	assert.True(t, f.Matches(Record{EmployeeID: emp.ID, AssignedBy: admin.ID}))
	assert.True(t, f.Matches(Record{EmployeeID: otherEmp.ID, AssignedBy: admin.ID, HiddenForEmployee: true}))
	assert.False(t, f.Matches(Record{EmployeeID: emp.ID, AssignedBy: admin2.ID}))

	narrowed, err := b.TodoList(admin, Query{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.True(t, narrowed.Matches(Record{EmployeeID: emp.ID, AssignedBy: admin.ID}))
	assert.False(t, narrowed.Matches(Record{EmployeeID: otherEmp.ID, AssignedBy: admin.ID}))
	assert.False(t, narrowed.Matches(Record{EmployeeID: emp.ID, AssignedBy: admin2.ID}))
}

func TestTodoList_SuperAdminUnrestrictedWithOptionalNarrowing(t *testing.T) {
	b := NewBuilder()

	f, err := b.TodoList(root, Query{})
	require.NoError(t, err)
	assert.True(t, f.Unrestricted())

	narrowed, err := b.TodoList(root, Query{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.Equal(t, []Clause{{Field: FieldEmployeeID, Op: OpEq, Value: emp.ID}}, narrowed.Clauses())
}

func TestTodoDelete_SuperAdminAlwaysAllowed(t *testing.T) {
	b := NewBuilder()
	records := []Record{
		{EmployeeID: emp.ID, AssignedBy: admin.ID},
		{EmployeeID: otherEmp.ID, AssignedBy: admin2.ID},
		{},
	}
	for _, r := range records {
		assert.NoError(t, b.TodoDelete(root, r))
	}
}

func TestTodoUpdate_ByRole(t *testing.T) {
	b := NewBuilder()
	todo := Record{EmployeeID: emp.ID, AssignedBy: admin.ID}

	tests := []struct {
		name    string
		actor   Actor
		allowed bool
	}{
		{"assignee employee", emp, true},
		{"other employee", otherEmp, false},
		{"assigning admin", admin, true},
		{"other admin", admin2, false},
		{"super admin", root, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := b.TodoUpdate(tc.actor, todo)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assertForbidden(t, err)
		})
	}
}

func TestTodoUpdateStatus_OwnerOnlyForEveryRole(t *testing.T) {
	b := NewBuilder()

	assert.NoError(t, b.TodoUpdateStatus(emp, Record{EmployeeID: emp.ID, AssignedBy: admin.ID}))
	assertForbidden(t, b.TodoUpdateStatus(admin, Record{EmployeeID: emp.ID, AssignedBy: admin.ID}))
	assertForbidden(t, b.TodoUpdateStatus(root, Record{EmployeeID: emp.ID, AssignedBy: admin.ID}))
	assert.NoError(t, b.TodoUpdateStatus(admin, Record{EmployeeID: admin.ID, AssignedBy: root.ID}))
}

func TestTodoBulkStatus_AnyDenialRejectsBatch(t *testing.T) {
	b := NewBuilder()
	batch := []Record{
		{EmployeeID: emp.ID, AssignedBy: admin.ID},
		{EmployeeID: emp.ID, AssignedBy: admin2.ID},
		{EmployeeID: otherEmp.ID, AssignedBy: admin.ID},
	}

	assertForbidden(t, b.TodoBulkStatus(admin, batch))
	assert.NoError(t, b.TodoBulkStatus(admin, []Record{batch[0], batch[2]}))
	assert.NoError(t, b.TodoBulkStatus(root, batch))
}

func TestTodoCreate_EmployeeOnlyForSelf(t *testing.T) {
	b := NewBuilder()

	assert.NoError(t, b.TodoCreate(emp, Record{EmployeeID: emp.ID}))
	assertForbidden(t, b.TodoCreate(emp, Record{EmployeeID: otherEmp.ID}))
	assert.NoError(t, b.TodoCreate(admin, Record{EmployeeID: otherEmp.ID}))
}

func TestLeaveList_Scopes(t *testing.T) {
	b := NewBuilder()

	f, err := b.LeaveList(emp, Query{EmployeeID: otherEmp.ID})
	require.NoError(t, err)
	assert.True(t, f.Matches(Record{EmployeeID: emp.ID}))
	assert.False(t, f.Matches(Record{EmployeeID: otherEmp.ID}))

	f, err = b.LeaveList(admin, Query{})
	require.NoError(t, err)
	assert.True(t, f.Unrestricted())

	f, err = b.LeaveList(root, Query{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.False(t, f.Matches(Record{EmployeeID: otherEmp.ID}))
}

func TestLeaveUpdate_EmployeeMayOnlyCancelOwn(t *testing.T) {
	b := NewBuilder()

	assert.NoError(t, b.LeaveUpdate(emp, Record{EmployeeID: emp.ID}))
	assert.NoError(t, b.LeaveUpdate(emp, Record{EmployeeID: emp.ID, RequestedStatus: "cancelled"}))
	assertForbidden(t, b.LeaveUpdate(emp, Record{EmployeeID: emp.ID, RequestedStatus: "approved"}))
	assertForbidden(t, b.LeaveUpdate(emp, Record{EmployeeID: otherEmp.ID, RequestedStatus: "cancelled"}))
	assert.NoError(t, b.LeaveUpdate(admin, Record{EmployeeID: emp.ID, RequestedStatus: "approved"}))
}

func TestProject_EmployeeMembership(t *testing.T) {
	b := NewBuilder()

	f, err := b.ProjectList(emp)
	require.NoError(t, err)
	assert.True(t, f.Matches(Record{TeamMembers: []string{otherEmp.ID, emp.ID}}))
	assert.False(t, f.Matches(Record{TeamMembers: []string{otherEmp.ID}}))

	assertForbidden(t, b.ProjectManage(emp, ActionCreate))
	assert.NoError(t, b.ProjectManage(admin, ActionDelete))

	f, err = b.ProjectRead(root)
	require.NoError(t, err)
	assert.True(t, f.Unrestricted())
}

func TestReport_OwnScopeAndAdminNarrowing(t *testing.T) {
	b := NewBuilder()

	f, err := b.ReportList(emp, Query{EmployeeID: otherEmp.ID})
	require.NoError(t, err)
	assert.True(t, f.Matches(Record{EmployeeID: emp.ID}))
	assert.False(t, f.Matches(Record{EmployeeID: otherEmp.ID}))

	f, err = b.ReportList(admin, Query{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.True(t, f.Matches(Record{EmployeeID: emp.ID}))
	assert.False(t, f.Matches(Record{EmployeeID: otherEmp.ID}))

	f, err = b.ReportRead(root)
	require.NoError(t, err)
	assert.True(t, f.Unrestricted())
}

func TestReport_CreateOnlyForSelf(t *testing.T) {
	b := NewBuilder()

	assert.NoError(t, b.ReportCreate(emp, Record{EmployeeID: emp.ID}))
	assertForbidden(t, b.ReportCreate(admin, Record{EmployeeID: emp.ID}))

	assert.NoError(t, b.ReportUpdate(emp, Record{EmployeeID: emp.ID}))
	assertForbidden(t, b.ReportUpdate(emp, Record{EmployeeID: otherEmp.ID}))
	assert.NoError(t, b.ReportUpdate(admin, Record{EmployeeID: emp.ID}))
}

func TestClient_ReadForAllManageForAdmins(t *testing.T) {
	b := NewBuilder()

	assert.NoError(t, b.ClientRead(emp))
	assert.NoError(t, b.ClientRead(root))

	assertForbidden(t, b.ClientManage(emp, ActionCreate))
	assertForbidden(t, b.ClientManage(emp, ActionDelete))
	assert.NoError(t, b.ClientManage(admin, ActionUpdate))
	assert.NoError(t, b.ClientManage(root, ActionDelete))
}

func TestAuthorize_InvalidActorForbidden(t *testing.T) {
	b := NewBuilder()

	_, err := b.TodoList(Actor{ID: "x"}, Query{})
	assertForbidden(t, err)

	_, err = b.Authorize(Request{Actor: emp, Resource: Resource(99), Action: ActionList})
	assertForbidden(t, err)
}

func TestParseRole(t *testing.T) {
	for _, r := range Roles() {
		parsed, err := ParseRole(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}

	_, err := ParseRole("manager")
	kind, ok := rules.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, rules.KindValidation, kind)
}
