// Package facts holds the flat key/value table that carries collected host
// facts from the module dispatcher to the template renderer.
//
// Keys are plain strings namespaced by module ("cpu_model", "memory_total",
// "custom_weather"). Values are always strings; numbers are formatted by the
// collector that produced them.
package facts

import (
	"sort"
)

// Reader is the read-only view of a Table handed to the renderer.
type Reader interface {
	Get(key string) (string, bool)
}

// Table maps fact keys to values. Writes overwrite silently (last write wins).
// A Table is not safe for concurrent writers; the pipeline fills it on a
// single goroutine before rendering starts.
type Table struct {
	values map[string]string
}

// New returns an empty Table.
func New() *Table {
	return &Table{values: make(map[string]string)}
}

// FromMap builds a Table holding a copy of m.
func FromMap(m map[string]string) *Table {
	t := New()
	for k, v := range m {
		t.values[k] = v
	}
	return t
}

// Set stores value under key, replacing any previous value.
func (t *Table) Set(key, value string) {
	t.values[key] = value
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len is the number of distinct keys.
func (t *Table) Len() int {
	return len(t.values)
}

// Keys returns every key in ascending order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, len(t.values))
	for k := range t.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (t *Table) Map() map[string]string {
	out := make(map[string]string, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into t, overwriting on collision.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		t.values[k] = v
	}
}
