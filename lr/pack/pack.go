package pack

import (
	"github.com/bqlite/lemonade/lr"
	"github.com/bqlite/lemonade/lr/sparse"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// actionSet is the set of actions of one state, either for the terminals
// (shift part) or for the non-terminals (goto part).
type actionSet struct {
	state   int
	isTkn   bool
	entries []entry
}

type entry struct {
	la  lr.Symbol
	act int
}

// largestFirst orders action sets by descending size, then by state, shift
// part before goto part.
var largestFirst utils.Comparator = func(a, b interface{}) int {
	s1, s2 := a.(*actionSet), b.(*actionSet)
	if d := len(s2.entries) - len(s1.entries); d != 0 {
		return d
	}
	if d := s1.state - s2.state; d != 0 {
		return d
	}
	if s1.isTkn == s2.isTkn {
		return 0
	}
	if s1.isTkn {
		return -1
	}
	return 1
}

type slot struct {
	la  int // -1 if empty
	act int
}

// packMatrix fills the action, lookahead and offset tables of t from the
// matrix of encoded actions m.
func packMatrix(t *lr.Tables, m *sparse.IntMatrix) {
	sets := treeset.NewWith(largestFirst)
	for state := 0; state < t.NState; state++ {
		tkn := &actionSet{state: state, isTkn: true}
		nt := &actionSet{state: state}
		for _, col := range m.Row(state) {
			e := entry{la: lr.Symbol(col), act: decode(t, int(m.Value(state, col)))}
			if col < t.NTerminal {
				tkn.entries = append(tkn.entries, e)
			} else {
				nt.entries = append(nt.entries, e)
			}
		}
		for _, set := range []*actionSet{tkn, nt} {
			if len(set.entries) > 0 {
				sets.Add(set)
			}
		}
	}
	var slots []slot
	used := make(map[int]bool)
	shiftOfs := make(map[int]int)
	reduceOfs := make(map[int]int)
	it := sets.Iterator()
	for it.Next() {
		set := it.Value().(*actionSet)
		ofs := findOffset(slots, used, set)
		for _, e := range set.entries {
			i := ofs + int(e.la)
			for len(slots) <= i {
				slots = append(slots, slot{la: -1})
			}
			slots[i] = slot{la: int(e.la), act: e.act}
		}
		used[ofs] = true
		kind := "goto"
		if set.isTkn {
			shiftOfs[set.state] = ofs
			kind = "shift"
		} else {
			reduceOfs[set.state] = ofs
		}
		tracer().Debugf("state %d %s: %d actions at offset %d", set.state, kind, len(set.entries), ofs)
	}
	t.Action = make([]int, len(slots))
	t.Lookahead = make([]lr.Symbol, len(slots))
	for i, s := range slots {
		if s.la < 0 {
			t.Action[i] = t.NoAction()
			t.Lookahead[i] = lr.Symbol(t.NSymbol)
			continue
		}
		t.Action[i] = s.act
		t.Lookahead[i] = lr.Symbol(s.la)
	}
	t.ShiftOffset, t.ShiftCount, t.ShiftUnused = offsetTable(t.NState, shiftOfs)
	t.ReduceOffset, t.ReduceCount, t.ReduceUnused = offsetTable(t.NState, reduceOfs)
}

// findOffset returns the smallest offset not yet taken by another action set
// where every entry of set falls into an empty slot. Offsets never go below
// the point where the set's smallest lookahead would index slot 0.
func findOffset(slots []slot, used map[int]bool, set *actionSet) int {
	minLa := int(set.entries[0].la) // entries are ascending
	for ofs := -minLa; ; ofs++ {
		if used[ofs] {
			continue
		}
		fits := true
		for _, e := range set.entries {
			if i := ofs + int(e.la); i < len(slots) && slots[i].la >= 0 {
				fits = false
				break
			}
		}
		if fits {
			return ofs
		}
	}
}

// offsetTable converts the offsets of placed sets into an offset table. States
// without an offset get the unused marker, which is one less than the smallest
// offset. Trailing unused entries are cut off; count is the last state present.
func offsetTable(nstate int, ofs map[int]int) (table []int, count int, unused int) {
	unused = -1
	first := true
	for _, o := range ofs {
		if first || o-1 < unused {
			unused = o - 1
			first = false
		}
	}
	count = -1
	for s := 0; s < nstate; s++ {
		if _, ok := ofs[s]; ok {
			count = s
		}
	}
	table = make([]int, count+1)
	for s := range table {
		if o, ok := ofs[s]; ok {
			table[s] = o
		} else {
			table[s] = unused
		}
	}
	return
}
