package pack

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Spec is a declarative description of a grammar's states, as read from YAML:
//
//    name: expr
//    terminals: [PLUS, NUM]
//    nonterminals: [prog, E, T]
//    rules:
//      - prog ::= E
//      - E ::= E PLUS T
//    states:
//      - shift: { NUM: 3 }
//        goto: { E: 1, T: 2 }
//        accept: prog
//      - shift: { PLUS: 4 }
//        reduce: { $: 0 }
//      - default: reduce 2
//
// Maps go from symbol names to target states (shift, goto) or rule numbers
// (reduce). A state's default is either "error" (the default) or "reduce N".
type Spec struct {
	Name         string            `yaml:"name"`
	Terminals    []string          `yaml:"terminals"`
	Nonterminals []string          `yaml:"nonterminals"`
	Error        string            `yaml:"error,omitempty"`
	Wildcard     string            `yaml:"wildcard,omitempty"`
	Fallback     map[string]string `yaml:"fallback,omitempty"`
	Rules        []string          `yaml:"rules"`
	States       []StateSpec       `yaml:"states"`
}

// StateSpec describes the actions of a single state.
type StateSpec struct {
	Shift   map[string]int `yaml:"shift,omitempty"`
	Reduce  map[string]int `yaml:"reduce,omitempty"`
	Goto    map[string]int `yaml:"goto,omitempty"`
	Accept  string         `yaml:"accept,omitempty"`
	Default string         `yaml:"default,omitempty"`
}

// ReadSpec reads a grammar state description in YAML format. Unknown keys are
// an error.
func ReadSpec(r io.Reader) (*Spec, error) {
	spec := &Spec{}
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	if err := dec.Decode(spec); err != nil {
		return nil, errors.Wrap(err, "cannot read table spec")
	}
	return spec, nil
}

// Builder converts the spec into a Builder. Map entries are entered in the
// order of their keys.
func (spec *Spec) Builder() (*Builder, error) {
	b := NewBuilder(spec.Name)
	b.Terminals(spec.Terminals...)
	b.Nonterminals(spec.Nonterminals...)
	if spec.Error != "" {
		b.ErrorSymbol(spec.Error)
	}
	if spec.Wildcard != "" {
		b.Wildcard(spec.Wildcard)
	}
	for _, from := range sortedKeys(spec.Fallback) {
		b.Fallback(from, spec.Fallback[from])
	}
	for i, r := range spec.Rules {
		lhs, rhs, err := ParseRule(r)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %d", i)
		}
		b.Rule(lhs, rhs...)
	}
	for n, st := range spec.States {
		s := b.State(n)
		for _, sym := range sortedKeys(st.Shift) {
			s.Shift(sym, st.Shift[sym])
		}
		for _, sym := range sortedKeys(st.Reduce) {
			s.Reduce(st.Reduce[sym], sym)
		}
		for _, sym := range sortedKeys(st.Goto) {
			s.Goto(sym, st.Goto[sym])
		}
		if st.Accept != "" {
			s.Accept(st.Accept)
		}
		switch def := strings.Fields(st.Default); {
		case len(def) == 0 || len(def) == 1 && def[0] == "error":
		case len(def) == 2 && def[0] == "reduce":
			rule, err := strconv.Atoi(def[1])
			if err != nil {
				return nil, errors.Wrapf(err, "state %d: default", n)
			}
			s.DefaultReduce(rule)
		default:
			return nil, errors.Errorf("state %d: cannot understand default %q", n, st.Default)
		}
	}
	return b, nil
}

// ParseRule splits a rule of the form "lhs ::= a b c" into its parts.
func ParseRule(rule string) (lhs string, rhs []string, err error) {
	f := strings.Fields(rule)
	if len(f) < 2 || f[1] != "::=" {
		return "", nil, errors.Errorf("malformed rule %q", rule)
	}
	return f[0], f[2:], nil
}

func sortedKeys(m interface{}) []string {
	var keys []string
	switch mm := m.(type) {
	case map[string]int:
		for k := range mm {
			keys = append(keys, k)
		}
	case map[string]string:
		for k := range mm {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
