package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixGrows(t *testing.T) {
	m := NewIntMatrix(-1)
	assert.Equal(t, 0, m.M())
	m.Set(2, 3, 4711)
	m.Set(0, 7, 1)
	assert.Equal(t, 3, m.M())
	assert.Equal(t, 8, m.N())
	assert.Equal(t, int32(4711), m.Value(2, 3))
	assert.Equal(t, int32(-1), m.Value(10, 10))
	assert.Equal(t, 2, m.ValueCount())
}

func TestMatrixShadow(t *testing.T) {
	m := NewIntMatrix(-1)
	m.Shadow(1, 1, 5) // no value yet => effective
	a, b := m.Values(1, 1)
	assert.Equal(t, int32(5), a)
	assert.Equal(t, int32(-1), b)
	m.Shadow(1, 1, 6)
	m.Shadow(1, 1, 7)
	a, b = m.Values(1, 1)
	assert.Equal(t, int32(5), a)
	assert.Equal(t, int32(6), b)
	assert.Equal(t, []string{"(1,1)=[5,6]"}, m.Conflicts())
	m.Set(1, 1, 9)
	assert.Empty(t, m.Conflicts())
}

func TestMatrixOrder(t *testing.T) {
	m := NewIntMatrix(DefaultNullValue)
	m.Set(1, 4, 14)
	m.Set(0, 2, 2)
	m.Set(1, 0, 10)
	m.Set(2, 1, 21)
	assert.Equal(t, []int{0, 4}, m.Row(1))
	assert.Nil(t, m.Row(3))
	var seen []int32
	m.Each(func(i, j int, v, _ int32) {
		seen = append(seen, v)
	})
	assert.Equal(t, []int32{2, 10, 14, 21}, seen)
}
