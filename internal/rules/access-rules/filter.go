package access_rules

import "slices"

// Field names a resource attribute that a scope clause can constrain.
type Field string

const (
	FieldEmployeeID        Field = "employee_id"
	FieldAssignedBy        Field = "assigned_by"
	FieldHiddenForEmployee Field = "is_hidden_for_employee"
	FieldTeamMembers       Field = "team_members"
)

type Op uint8

const (
	// OpEq matches when the field equals Value.
	OpEq Op = iota + 1
	// OpNotTrue matches when a boolean field is false or unset.
	OpNotTrue
	// OpContains matches when a set field holds Value.
	OpContains
)

type Clause struct {
	Field Field
	Op    Op
	Value string
}

// Filter is a conjunction of clauses. The zero Filter is unrestricted.
type Filter struct {
	clauses []Clause
}

func (f Filter) with(c ...Clause) Filter {
	out := make([]Clause, 0, len(f.clauses)+len(c))
	out = append(out, f.clauses...)
	out = append(out, c...)
	return Filter{clauses: out}
}

func (f Filter) Clauses() []Clause {
	return slices.Clone(f.clauses)
}

func (f Filter) Unrestricted() bool {
	return len(f.clauses) == 0
}

// Record is the slice of a stored resource that access decisions look at.
type Record struct {
	EmployeeID        string
	AssignedBy        string
	HiddenForEmployee bool
	TeamMembers       []string
	// RequestedStatus is the status a mutation asks for, if any.
	RequestedStatus string
}

// Matches evaluates the filter against a record in memory.
func (f Filter) Matches(r Record) bool {
	for _, c := range f.clauses {
		if !c.matches(r) {
			return false
		}
	}
	return true
}

func (c Clause) matches(r Record) bool {
	switch c.Op {
	case OpEq:
		switch c.Field {
		case FieldEmployeeID:
			return r.EmployeeID == c.Value
		case FieldAssignedBy:
			return r.AssignedBy == c.Value
		}
	case OpNotTrue:
		if c.Field == FieldHiddenForEmployee {
			return !r.HiddenForEmployee
		}
	case OpContains:
		if c.Field == FieldTeamMembers {
			return slices.Contains(r.TeamMembers, c.Value)
		}
	}
	return false
}
