// Package access_rules decides what an actor may see or change. It never touches storage:
// callers receive a Filter to execute or an error to report.
package access_rules

import (
	"github.com/Xenn-00/personal-meister/internal/rules"
)

type Resource uint8

const (
	Todo Resource = iota + 1
	Leave
	Project
	Client
	Report
)

type Action uint8

const (
	ActionList Action = iota + 1
	ActionRead
	ActionCreate
	ActionUpdate
	ActionDelete
	ActionUpdateStatus
)

// Query carries the narrowing a caller asked for.
type Query struct {
	EmployeeID string
}

type Request struct {
	Actor    Actor
	Resource Resource
	Action   Action
	Query    Query
	Target   *Record
}

type strategy func(req Request) (Filter, error)

type cell struct {
	resource Resource
	role     Role
	action   Action
}

// Builder maps every (resource, role, action) cell to one strategy.
// Cells without an entry are denied.
type Builder struct {
	table map[cell]strategy
}

const cancelledLeave = "cancelled"

func NewBuilder() *Builder {
	b := &Builder{table: map[cell]strategy{}}

	// Todo
	b.set(Todo, []Action{ActionList, ActionRead}, Employee, ownVisibleTodos)
	b.set(Todo, []Action{ActionList, ActionRead}, Admin, eqActor(FieldAssignedBy).narrowed())
	b.set(Todo, []Action{ActionList, ActionRead}, SuperAdmin, unrestricted.narrowed())
	b.set(Todo, []Action{ActionCreate}, Employee, targetOwnedBy(FieldEmployeeID, "todo.only_self_assign"))
	b.set(Todo, []Action{ActionCreate}, Admin, allow)
	b.set(Todo, []Action{ActionCreate}, SuperAdmin, allow)
	b.set(Todo, []Action{ActionUpdate}, Employee, targetOwnedBy(FieldEmployeeID, "todo.only_own"))
	b.set(Todo, []Action{ActionUpdate}, Admin, targetOwnedBy(FieldAssignedBy, "todo.only_assigned_by_you"))
	b.set(Todo, []Action{ActionUpdate}, SuperAdmin, allow)
	b.set(Todo, []Action{ActionDelete}, Employee, deny("todo.employee_cannot_delete"))
	b.set(Todo, []Action{ActionDelete}, Admin, targetOwnedBy(FieldAssignedBy, "todo.only_assigned_by_you"))
	b.set(Todo, []Action{ActionDelete}, SuperAdmin, allow)
	for _, role := range Roles() {
		b.set(Todo, []Action{ActionUpdateStatus}, role, targetOwnedBy(FieldEmployeeID, "todo.only_own_status"))
	}

	// Leave
	b.set(Leave, []Action{ActionList, ActionRead}, Employee, eqActor(FieldEmployeeID))
	b.set(Leave, []Action{ActionList, ActionRead}, Admin, unrestricted.narrowed())
	b.set(Leave, []Action{ActionList, ActionRead}, SuperAdmin, unrestricted.narrowed())
	b.set(Leave, []Action{ActionCreate, ActionDelete}, Employee, targetOwnedBy(FieldEmployeeID, "leave.only_own"))
	b.set(Leave, []Action{ActionUpdate}, Employee, ownLeaveCancellation)
	for _, role := range []Role{Admin, SuperAdmin} {
		b.set(Leave, []Action{ActionCreate, ActionUpdate, ActionDelete}, role, allow)
	}

	// Project
	b.set(Project, []Action{ActionList, ActionRead}, Employee, memberOf)
	for _, role := range []Role{Admin, SuperAdmin} {
		b.set(Project, []Action{ActionList, ActionRead, ActionCreate, ActionUpdate, ActionDelete}, role, allow)
	}

	// Report
	b.set(Report, []Action{ActionList, ActionRead}, Employee, eqActor(FieldEmployeeID))
	b.set(Report, []Action{ActionList, ActionRead}, Admin, unrestricted.narrowed())
	b.set(Report, []Action{ActionList, ActionRead}, SuperAdmin, unrestricted.narrowed())
	for _, role := range Roles() {
		b.set(Report, []Action{ActionCreate}, role, targetOwnedBy(FieldEmployeeID, "report.only_own"))
	}
	b.set(Report, []Action{ActionUpdate}, Employee, targetOwnedBy(FieldEmployeeID, "report.only_own"))
	b.set(Report, []Action{ActionUpdate}, Admin, allow)
	b.set(Report, []Action{ActionUpdate}, SuperAdmin, allow)

	// Client
	for _, role := range Roles() {
		b.set(Client, []Action{ActionList, ActionRead}, role, allow)
	}
	for _, role := range []Role{Admin, SuperAdmin} {
		b.set(Client, []Action{ActionCreate, ActionUpdate, ActionDelete}, role, allow)
	}

	return b
}

func (b *Builder) set(res Resource, actions []Action, role Role, s strategy) {
	for _, a := range actions {
		b.table[cell{resource: res, role: role, action: a}] = s
	}
}

// Authorize looks up the strategy for the request and runs it.
func (b *Builder) Authorize(req Request) (Filter, error) {
	if !req.Actor.Role.Valid() || req.Actor.ID == "" {
		return Filter{}, rules.Forbidden("forbidden", "actor has no valid role")
	}
	s, ok := b.table[cell{resource: req.Resource, role: req.Actor.Role, action: req.Action}]
	if !ok {
		return Filter{}, rules.Forbidden("forbidden", "no rule for this role and action")
	}
	return s(req)
}

func (b *Builder) TodoList(actor Actor, q Query) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Todo, Action: ActionList, Query: q})
}

func (b *Builder) TodoRead(actor Actor) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Todo, Action: ActionRead})
}

func (b *Builder) TodoCreate(actor Actor, todo Record) error {
	return b.decide(actor, Todo, ActionCreate, todo)
}

func (b *Builder) TodoUpdate(actor Actor, todo Record) error {
	return b.decide(actor, Todo, ActionUpdate, todo)
}

func (b *Builder) TodoDelete(actor Actor, todo Record) error {
	return b.decide(actor, Todo, ActionDelete, todo)
}

func (b *Builder) TodoUpdateStatus(actor Actor, todo Record) error {
	return b.decide(actor, Todo, ActionUpdateStatus, todo)
}

// TodoBulkStatus applies the update rule to every todo and fails on the first denial.
func (b *Builder) TodoBulkStatus(actor Actor, todos []Record) error {
	for _, t := range todos {
		if err := b.TodoUpdate(actor, t); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) LeaveList(actor Actor, q Query) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Leave, Action: ActionList, Query: q})
}

func (b *Builder) LeaveRead(actor Actor) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Leave, Action: ActionRead})
}

func (b *Builder) LeaveCreate(actor Actor, leave Record) error {
	return b.decide(actor, Leave, ActionCreate, leave)
}

func (b *Builder) LeaveUpdate(actor Actor, leave Record) error {
	return b.decide(actor, Leave, ActionUpdate, leave)
}

func (b *Builder) LeaveDelete(actor Actor, leave Record) error {
	return b.decide(actor, Leave, ActionDelete, leave)
}

func (b *Builder) ProjectList(actor Actor) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Project, Action: ActionList})
}

func (b *Builder) ProjectRead(actor Actor) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Project, Action: ActionRead})
}

// ProjectManage covers create, update and delete, which share one rule.
func (b *Builder) ProjectManage(actor Actor, action Action) error {
	_, err := b.Authorize(Request{Actor: actor, Resource: Project, Action: action})
	return err
}

func (b *Builder) ReportList(actor Actor, q Query) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Report, Action: ActionList, Query: q})
}

func (b *Builder) ReportRead(actor Actor) (Filter, error) {
	return b.Authorize(Request{Actor: actor, Resource: Report, Action: ActionRead})
}

// ReportCreate allows every role to file a report, but only for itself.
func (b *Builder) ReportCreate(actor Actor, report Record) error {
	return b.decide(actor, Report, ActionCreate, report)
}

func (b *Builder) ReportUpdate(actor Actor, report Record) error {
	return b.decide(actor, Report, ActionUpdate, report)
}

// ClientRead covers list and read. Every role sees the whole client directory.
func (b *Builder) ClientRead(actor Actor) error {
	_, err := b.Authorize(Request{Actor: actor, Resource: Client, Action: ActionRead})
	return err
}

func (b *Builder) ClientManage(actor Actor, action Action) error {
	_, err := b.Authorize(Request{Actor: actor, Resource: Client, Action: action})
	return err
}

func (b *Builder) decide(actor Actor, res Resource, action Action, target Record) error {
	_, err := b.Authorize(Request{Actor: actor, Resource: res, Action: action, Target: &target})
	return err
}

// strategies

var unrestricted strategy = func(Request) (Filter, error) {
	return Filter{}, nil
}

var allow = unrestricted

// narrowed passes a requested employee_id through on top of the role scope.
func (s strategy) narrowed() strategy {
	return func(req Request) (Filter, error) {
		f, err := s(req)
		if err != nil {
			return f, err
		}
		if req.Query.EmployeeID != "" {
			f = f.with(Clause{Field: FieldEmployeeID, Op: OpEq, Value: req.Query.EmployeeID})
		}
		return f, nil
	}
}

func eqActor(field Field) strategy {
	return func(req Request) (Filter, error) {
		return Filter{}.with(Clause{Field: field, Op: OpEq, Value: req.Actor.ID}), nil
	}
}

func ownVisibleTodos(req Request) (Filter, error) {
	return Filter{}.with(
		Clause{Field: FieldEmployeeID, Op: OpEq, Value: req.Actor.ID},
		Clause{Field: FieldHiddenForEmployee, Op: OpNotTrue},
	), nil
}

func memberOf(req Request) (Filter, error) {
	return Filter{}.with(Clause{Field: FieldTeamMembers, Op: OpContains, Value: req.Actor.ID}), nil
}

func deny(key string) strategy {
	return func(Request) (Filter, error) {
		return Filter{}, rules.Forbidden(key, "role may never perform this action")
	}
}

func targetOwnedBy(field Field, key string) strategy {
	return func(req Request) (Filter, error) {
		if req.Target == nil {
			return Filter{}, rules.Forbidden(key, "no target record")
		}
		owner := Filter{}.with(Clause{Field: field, Op: OpEq, Value: req.Actor.ID})
		if !owner.Matches(*req.Target) {
			return Filter{}, rules.Forbidden(key, string(field)+" does not match actor")
		}
		return Filter{}, nil
	}
}

func ownLeaveCancellation(req Request) (Filter, error) {
	if _, err := targetOwnedBy(FieldEmployeeID, "leave.only_own")(req); err != nil {
		return Filter{}, err
	}
	if s := req.Target.RequestedStatus; s != "" && s != cancelledLeave {
		return Filter{}, rules.Forbidden("leave.employee_only_cancel", "employees may only cancel a leave")
	}
	return Filter{}, nil
}
