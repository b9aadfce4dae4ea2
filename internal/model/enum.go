package model

import (
	"fmt"
	"slices"
	"strings"
)

// EnumTable maps the values of a closed enumeration to their wire strings.
// Every enumeration owns its table, so the casing is a per-type contract.
type EnumTable[T ~int] struct {
	name   string
	names  map[T]string
	values map[string]T
}

func NewEnumTable[T ~int](name string, names map[T]string) EnumTable[T] {
	values := make(map[string]T, len(names))
	for v, s := range names {
		if _, ok := values[s]; ok {
			panic(fmt.Sprintf("%s: duplicate wire name %q", name, s))
		}
		values[s] = v
	}
	return EnumTable[T]{
		name:   name,
		names:  names,
		values: values,
	}
}

// String returns the wire name of v or a placeholder for values outside the table.
func (e EnumTable[T]) String(v T) string {
	s, ok := e.names[v]
	if !ok {
		return fmt.Sprintf("%s(%d)", e.name, v)
	}
	return s
}

func (e EnumTable[T]) Marshal(v T) ([]byte, error) {
	s, ok := e.names[v]
	if !ok {
		return nil, fmt.Errorf("%s: unknown value %d", e.name, v)
	}
	return []byte(s), nil
}

func (e EnumTable[T]) Unmarshal(text []byte) (T, error) {
	v, ok := e.values[string(text)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unknown value %q: possible values (%s)", e.name, text, strings.Join(e.Names(), ","))
	}
	return v, nil
}

// Names returns the wire names sorted alphabetically.
func (e EnumTable[T]) Names() []string {
	ret := make([]string, 0, len(e.names))
	for _, s := range e.names {
		ret = append(ret, s)
	}
	slices.Sort(ret)
	return ret
}
