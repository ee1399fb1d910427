package state

import (
	"reflect"
	"strings"
)

// IsAbsent reports whether v carries no value: nil itself, or a nil
// pointer, map, slice, channel, function, or interface.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// CountElements counts the elements of list-shaped values recursively.
// A non-list value counts as one, an absent value as zero, and a nested
// list contributes the count of its own elements.
func CountElements(v any) int {
	if IsAbsent(v) {
		return 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		total := 0
		for i := 0; i < rv.Len(); i++ {
			total += CountElements(rv.Index(i).Interface())
		}
		return total
	}
	return 1
}

func deepEqual[T any](a, b T) bool {
	return reflect.DeepEqual(a, b)
}

func containsDeep[T any](items []T, item T) bool {
	for _, it := range items {
		if deepEqual(it, item) {
			return true
		}
	}
	return false
}

// containsMatch is exact membership by structural equality; with substring
// set and textual elements it is substring containment on any element.
func containsMatch[T any](items []T, item T, substring bool) bool {
	if substring {
		if needle, ok := any(item).(string); ok {
			for _, it := range items {
				if text, ok := any(it).(string); ok && strings.Contains(text, needle) {
					return true
				}
			}
			return false
		}
	}
	return containsDeep(items, item)
}
