// Package query builds parameterised WHERE clauses for the repos.
package query

import (
	"fmt"
	"strings"

	access_rules "github.com/Xenn-00/personal-meister/internal/rules/access-rules"
)

type Where struct {
	conds []string
	args  []any
}

func New() *Where {
	return &Where{}
}

func (w *Where) next(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// Bind adds an argument without a condition and returns its placeholder.
func (w *Where) Bind(v any) string {
	return w.next(v)
}

// Raw appends a condition. Every %s in cond is replaced by a placeholder bound to the matching arg.
func (w *Where) Raw(cond string, args ...any) *Where {
	ph := make([]any, len(args))
	for i, a := range args {
		ph[i] = w.next(a)
	}
	w.conds = append(w.conds, fmt.Sprintf(cond, ph...))
	return w
}

func (w *Where) Eq(col string, v any) *Where {
	return w.Raw(col+" = %s", v)
}

func (w *Where) Gte(col string, v any) *Where {
	return w.Raw(col+" >= %s", v)
}

func (w *Where) Lte(col string, v any) *Where {
	return w.Raw(col+" <= %s", v)
}

// In matches col against any value of a text array.
func (w *Where) In(col string, vs []string) *Where {
	return w.Raw(col+" = ANY(%s)", vs)
}

// Search matches term case-insensitively as a substring of any of cols.
func (w *Where) Search(term string, cols ...string) *Where {
	term = strings.TrimSpace(term)
	if term == "" || len(cols) == 0 {
		return w
	}
	ph := w.next("%" + escapeLike(term) + "%")
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("%s ILIKE %s", c, ph)
	}
	w.conds = append(w.conds, "("+strings.Join(parts, " OR ")+")")
	return w
}

// Scope compiles an access filter. columns maps each field to its SQL column.
func (w *Where) Scope(f access_rules.Filter, columns map[access_rules.Field]string) error {
	for _, c := range f.Clauses() {
		col, ok := columns[c.Field]
		if !ok {
			return fmt.Errorf("query: no column for field %q", c.Field)
		}
		switch c.Op {
		case access_rules.OpEq:
			w.Eq(col, c.Value)
		case access_rules.OpNotTrue:
			w.conds = append(w.conds, col+" IS NOT TRUE")
		case access_rules.OpContains:
			w.Raw("%s = ANY("+col+")", c.Value)
		default:
			return fmt.Errorf("query: unsupported op %d", c.Op)
		}
	}
	return nil
}

// SQL returns " WHERE ..." or an empty string.
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}

// Page appends LIMIT and OFFSET placeholders and returns the clause.
func (w *Where) Page(page, limit int) string {
	if page < 1 {
		page = 1
	}
	l := w.next(limit)
	o := w.next((page - 1) * limit)
	return fmt.Sprintf(" LIMIT %s OFFSET %s", l, o)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
