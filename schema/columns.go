package schema

import (
	"fmt"
	"strings"

	"github.com/bqlite/lemonade"
	"github.com/emirpasic/gods/maps/treemap"
)

// --- Columns ---------------------------------------------------------------

// Role tells what a schema does with a column.
type Role int8

// A column is either ignored or modelled with a statistical type.
const (
	Undefined Role = iota
	Ignored
	Modelled
)

func (r Role) String() string {
	switch r {
	case Ignored:
		return "ignored"
	case Modelled:
		return "modelled"
	}
	return "undefined"
}

// Column is a column mentioned in a schema. Column names are compared without
// regard to case, as SQLite does.
type Column struct {
	name     string
	Role     Role
	StatType string        // for modelled columns
	Where    lemonade.Span // first mention in the input
}

// NewColumn creates a new column with an undefined role.
func NewColumn(name string) *Column {
	return &Column{name: name}
}

// WithRole sets the role of a column. Use as
//
//    col := NewColumn("age").WithRole(Modelled)
//
func (c *Column) WithRole(r Role) *Column {
	c.Role = r
	return c
}

// Name gets the column's name as it appeared in the input.
func (c *Column) Name() string {
	return c.name
}

// String is a debug Stringer for columns.
func (c *Column) String() string {
	if c.Role == Modelled {
		return fmt.Sprintf("<column '%s':%s %s>", c.name, c.Role, c.StatType)
	}
	return fmt.Sprintf("<column '%s':%s>", c.name, c.Role)
}

// === Column Tables =========================================================

// ColumnTable stores the columns of a schema (map-like semantics). Iteration
// is in order of column names.
type ColumnTable struct {
	table        *treemap.Map
	createColumn func(string) *Column
}

// NewColumnTable creates an empty column table.
//
func NewColumnTable() *ColumnTable {
	return &ColumnTable{
		table:        treemap.NewWithStringComparator(),
		createColumn: NewColumn,
	}
}

func key(name string) string {
	return strings.ToLower(name)
}

// ResolveColumn checks for a column in the table.
// Returns a column or nil.
//
func (t *ColumnTable) ResolveColumn(name string) *Column {
	if c, found := t.table.Get(key(name)); found {
		return c.(*Column)
	}
	return nil
}

// ResolveOrDefineColumn finds a column in the table, inserts a new one if not
// found. Returns the column and a flag, signalling whether the column has
// already been present.
//
func (t *ColumnTable) ResolveOrDefineColumn(name string) (*Column, bool) {
	if len(name) == 0 {
		return nil, false
	}
	found := true
	col := t.ResolveColumn(name)
	if col == nil {
		col, _ = t.DefineColumn(name)
		found = false
	}
	return col, found
}

// DefineColumn creates a new column to store into the table.
// The column's name may not be empty.
// Overwrites an existing column with this name, if any.
// Returns the new column and the previously stored column (or nil).
//
func (t *ColumnTable) DefineColumn(name string) (*Column, *Column) {
	if len(name) == 0 {
		return nil, nil
	}
	col := t.createColumn(name)
	old := t.InsertColumn(col)
	return col, old
}

// InsertColumn inserts a pre-created column.
func (t *ColumnTable) InsertColumn(col *Column) *Column {
	old := t.ResolveColumn(col.name)
	t.table.Put(key(col.name), col)
	return old
}

// Size counts the columns in a table.
func (t *ColumnTable) Size() int {
	return t.table.Size()
}

// Each iterates over each column in the table, in order of names, executing a
// mapper function.
func (t *ColumnTable) Each(mapper func(string, *Column)) {
	t.table.Each(func(k, v interface{}) {
		mapper(k.(string), v.(*Column))
	})
}

// WithRole returns the names of all columns of a role, in order.
func (t *ColumnTable) WithRole(r Role) []string {
	var names []string
	t.Each(func(_ string, c *Column) {
		if c.Role == r {
			names = append(names, c.name)
		}
	})
	return names
}
