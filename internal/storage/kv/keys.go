package kv

import (
	"maps"
	"slices"
)

// sortedKeys gives multi-key writes a stable order.
func sortedKeys(values map[string][]byte) []string {
	return slices.Sorted(maps.Keys(values))
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	return slices.Clone(b)
}
