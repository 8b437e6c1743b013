package services

import "slices"

// orderedMap is a map keyed by id that iterates in insertion order.
type orderedMap[T any] struct {
	order []string
	byID  map[string]T
}

func newOrderedMap[T any]() *orderedMap[T] {
	return &orderedMap[T]{byID: make(map[string]T)}
}

func (m *orderedMap[T]) get(id string) (T, bool) {
	v, ok := m.byID[id]
	return v, ok
}

// set replaces an existing entry in place or appends a new one.
func (m *orderedMap[T]) set(id string, v T) {
	if _, ok := m.byID[id]; !ok {
		m.order = append(m.order, id)
	}
	m.byID[id] = v
}

func (m *orderedMap[T]) delete(id string) bool {
	if _, ok := m.byID[id]; !ok {
		return false
	}
	delete(m.byID, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return true
}

func (m *orderedMap[T]) len() int {
	return len(m.order)
}

// values returns the entries in insertion order, each passed through copyFn.
func (m *orderedMap[T]) values(copyFn func(T) T) []T {
	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, copyFn(m.byID[id]))
	}
	return out
}
