package query

import (
	"fmt"
	"strings"
)

// ProjectionMap maps view field names to qualified table columns for a single table.
// Columns are emitted in the order they were projected, which is the order scan
// functions must read them in.
type ProjectionMap struct {
	schema  string
	table   string
	alias   string
	columns []string
	lookup  map[string]string
}

// NewProjectionMap creates a ProjectionMap for schema.table aliased as alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		lookup: make(map[string]string),
	}
}

// Project registers column under the view name and returns the map for chaining.
func (p *ProjectionMap) Project(column, view string) *ProjectionMap {
	qualified := fmt.Sprintf("%s.%s", p.alias, column)
	p.columns = append(p.columns, qualified)
	p.lookup[view] = qualified
	return p
}

// Column returns the qualified column for a view name.
// Unknown names are returned unchanged.
func (p *ProjectionMap) Column(view string) string {
	if col, ok := p.lookup[view]; ok {
		return col
	}
	return view
}

// Columns returns the comma-separated qualified columns in projection order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.columns, ", ")
}

// Table returns the aliased table reference, e.g. "public.heroes h".
func (p *ProjectionMap) Table() string {
	return fmt.Sprintf("%s.%s %s", p.schema, p.table, p.alias)
}
