// Package query defines the passive description of a query: a bag of
// clauses a consumer assembles in any order. The table executor imposes the
// semantic pipeline order (filter, sort, limit, project) regardless of the
// order clauses were appended.
package query

// WhereClause filters rows by comparing a column against a constant.
// Op is the raw operator symbol (==, !=, <, <=, >, >=) and Value the raw
// host value; both are interpreted at execution time.
type WhereClause struct {
	Column string
	Op     string
	Value  any
}

// SelectClause lists the columns to project, in order.
type SelectClause struct {
	Columns []string
}

// OrderByClause sorts the result by one column.
type OrderByClause struct {
	Column    string
	Ascending bool
}

// LimitClause truncates the result to at most N rows.
type LimitClause struct {
	N int
}

// Query is a passive bag of clauses referencing a single table. Multiple
// Where clauses combine by conjunction in the order they were appended; for
// every other clause kind only the first instance is honored and later ones
// are silently ignored.
type Query struct {
	wheres  []WhereClause
	sel     *SelectClause
	orderBy *OrderByClause
	limit   *LimitClause
}

// New creates an empty query.
func New() *Query {
	return &Query{}
}

// Where appends an equality or ordering filter on a column.
func (q *Query) Where(column, op string, value any) *Query {
	q.wheres = append(q.wheres, WhereClause{Column: column, Op: op, Value: value})
	return q
}

// Select sets the projection. Absent a Select clause, all schema columns are
// projected.
func (q *Query) Select(columns ...string) *Query {
	if q.sel == nil {
		q.sel = &SelectClause{Columns: columns}
	}
	return q
}

// OrderBy sets the sort column and direction.
func (q *Query) OrderBy(column string, ascending bool) *Query {
	if q.orderBy == nil {
		q.orderBy = &OrderByClause{Column: column, Ascending: ascending}
	}
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	if q.limit == nil {
		q.limit = &LimitClause{N: n}
	}
	return q
}

// Wheres returns the filter clauses in the order they were appended.
// A nil query has no clauses.
func (q *Query) Wheres() []WhereClause {
	if q == nil {
		return nil
	}
	return q.wheres
}

// Projection returns the projected columns. The second return is false when
// no Select clause is present.
func (q *Query) Projection() ([]string, bool) {
	if q == nil || q.sel == nil {
		return nil, false
	}
	return q.sel.Columns, true
}

// Ordering returns the order-by clause. The second return is false when no
// OrderBy clause is present.
func (q *Query) Ordering() (OrderByClause, bool) {
	if q == nil || q.orderBy == nil {
		return OrderByClause{}, false
	}
	return *q.orderBy, true
}

// LimitN returns the limit. The second return is false when no Limit clause
// is present.
func (q *Query) LimitN() (int, bool) {
	if q == nil || q.limit == nil {
		return 0, false
	}
	return q.limit.N, true
}
