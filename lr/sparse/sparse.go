/*
Package sparse implements a simple type for sparse integer matrices.
It is used for collecting parser actions before they are packed into the
combined action table (package lr/pack). Rows are states, columns are grammar
symbols. Every entry is a pair: the effective action and an action it
shadows, if any. A shadowed action is kept for conflict reporting only.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
)

// IntMatrix is a type for a spare matrix of integer values. Construct with
//
//     M := NewIntMatrix(-1)          // parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Shadow(2, 3, 123)            // record a second, shadowed value
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(10, 10)            // returns -1, i.e. the null-value
//
// The matrix grows as values are set. M() and N() report one past the highest
// row and column index set so far.
// Values cannot be deleted, but may be overwritten with the null-value. Space for
// null-values is not re-claimed.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

// Triplet values to store
type triplet struct {
	row, col int
	value    intPair
}

// NewIntMatrix creates a new, empty matrix for int. The argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the effective value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue).
// The second value is the shadowed one.
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return t.value.a, t.value.b
			}
			break
		}
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j). A shadowed value at (i,j) is
// cleared.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	return m.setOrShadow(i, j, value, false)
}

// Shadow records value as the shadowed value at position (i,j). If no effective
// value is present yet, value becomes the effective one.
func (m *IntMatrix) Shadow(i, j int, value int32) *IntMatrix {
	return m.setOrShadow(i, j, value, true)
}

// Each calls f for every position set, row by row, columns ascending.
func (m *IntMatrix) Each(f func(i, j int, value, shadowed int32)) {
	for _, t := range m.values {
		f(t.row, t.col, t.value.a, t.value.b)
	}
}

// Row returns the column indices set in row i, ascending.
func (m *IntMatrix) Row(i int) []int {
	var cols []int
	for _, t := range m.values {
		if t.row > i {
			break
		}
		if t.row == i {
			cols = append(cols, t.col)
		}
	}
	return cols
}

// Conflicts returns the positions holding a shadowed value, formatted as
// "(i,j)=[a,b]".
func (m *IntMatrix) Conflicts() []string {
	var c []string
	for _, t := range m.values {
		if t.value.b != m.nullval {
			c = append(c, fmt.Sprintf("(%d,%d)=%s", t.row, t.col, t.value))
		}
	}
	return c
}

func (m *IntMatrix) setOrShadow(i, j int, value int32, shadow bool) *IntMatrix {
	if i >= m.rowcnt {
		m.rowcnt = i + 1
	}
	if j >= m.colcnt {
		m.colcnt = j + 1
	}
	at := 0 // will be position of new value
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) { // value already present
				if shadow {
					v := m.values[k].value
					m.values[k].value = shadowIntValue(v, value, m.nullval)
				} else {
					m.values[k].value = newIntPair(value, m.nullval) // set new value
				}
				return m // and done
			}
			break // no old value present
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: newIntPair(value, m.nullval)}
	// the following 3 lines have to work for k being the right edge of v or not
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // copy remainder values one index to right
	m.values[at] = tnew                  // if not append-case: insert new triplet
	return m
}

func shadowIntValue(v intPair, n int32, nullval int32) intPair {
	if v.a == nullval {
		v.a = n
	} else if v.b == nullval {
		v.b = n
	}
	// first shadowed value is kept
	return v
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return (t.row == i && t.col == j)
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}

func newIntPair(a, b int32) intPair {
	return intPair{a, b}
}
