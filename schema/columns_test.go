package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColumnTable(t *testing.T) {
	cols := NewColumnTable()
	if cols == nil || cols.Size() != 0 {
		t.Error("no empty column table created")
	}
}

func TestDefineColumn(t *testing.T) {
	cols := NewColumnTable()
	col, old := cols.DefineColumn("age")
	if col == nil || old != nil {
		t.Fatal("no column created for table")
	}
	if _, old := cols.DefineColumn("age"); old != col {
		t.Error("column should have been replaced")
	}
	if col, _ := cols.DefineColumn(""); col != nil {
		t.Error("column with empty name created")
	}
}

func TestTwoColumnsDistinct(t *testing.T) {
	cols := NewColumnTable()
	c1, _ := cols.DefineColumn("a")
	c2, _ := cols.DefineColumn("b")
	if c1 == c2 || cols.Size() != 2 {
		t.Error("2 columns with equal name")
	}
}

func TestResolveColumnIgnoresCase(t *testing.T) {
	cols := NewColumnTable()
	col, _ := cols.DefineColumn("Income")
	assert.Equal(t, col, cols.ResolveColumn("INCOME"))
	assert.Equal(t, "Income", cols.ResolveColumn("income").Name())
	assert.Nil(t, cols.ResolveColumn("age"))
}

func TestResolveOrDefineColumn(t *testing.T) {
	cols := NewColumnTable()
	col, found := cols.ResolveOrDefineColumn("age")
	assert.False(t, found)
	again, found := cols.ResolveOrDefineColumn("AGE")
	assert.True(t, found)
	assert.Equal(t, col, again)
}

func TestColumnOrderAndRoles(t *testing.T) {
	cols := NewColumnTable()
	cols.InsertColumn(NewColumn("zip").WithRole(Ignored))
	cols.InsertColumn(NewColumn("age").WithRole(Modelled))
	cols.InsertColumn(NewColumn("id").WithRole(Ignored))
	var names []string
	cols.Each(func(k string, c *Column) {
		names = append(names, k)
	})
	assert.Equal(t, []string{"age", "id", "zip"}, names)
	assert.Equal(t, []string{"id", "zip"}, cols.WithRole(Ignored))
	assert.Equal(t, []string{"age"}, cols.WithRole(Modelled))
	assert.Equal(t, "<column 'zip':ignored>", cols.ResolveColumn("zip").String())
}
