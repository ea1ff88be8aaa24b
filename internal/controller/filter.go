// Package controller implements the list-filter-paginate pattern every admin
// screen is built on: filter state with debounced search, query building,
// paginated fetching with silent refresh, page-scoped stats, and the modal
// state machines for create/edit/delete flows.
package controller

import "strings"

// SearchKey is the one filter whose commits go through the debounce window.
const SearchKey = "search"

// allValue is the dropdown default meaning "no filter".
const allValue = "all"

// IsUnset reports whether a filter value should be treated as "no filter":
// empty after trimming, or the "all" dropdown default.
func IsUnset(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || v == allValue
}

// FilterSet holds a screen's named filter values. It is not goroutine safe;
// the owning List guards access.
type FilterSet struct {
	values   map[string]string
	defaults map[string]string
}

func NewFilterSet(defaults map[string]string) *FilterSet {
	f := &FilterSet{
		values:   make(map[string]string, len(defaults)),
		defaults: make(map[string]string, len(defaults)),
	}
	for k, v := range defaults {
		f.defaults[k] = v
		f.values[k] = v
	}
	return f
}

func (f *FilterSet) Get(key string) string {
	return f.values[key]
}

func (f *FilterSet) Set(key, value string) {
	f.values[key] = value
}

// Reset restores every filter to its mount-time default.
func (f *FilterSet) Reset() {
	f.values = make(map[string]string, len(f.defaults))
	for k, v := range f.defaults {
		f.values[k] = v
	}
}

// Snapshot returns a copy of the current values.
func (f *FilterSet) Snapshot() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}
