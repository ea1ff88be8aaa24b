package controller

import (
	"net/url"
	"strconv"
	"strings"
)

// BuildParams converts filter state into outgoing query parameters. A key is
// included only when its trimmed value is set (non-empty and not the "all"
// default); page and limit are always included. Keys listed in omit are
// client-side-only filters the backend does not recognize.
func BuildParams(filters map[string]string, page, limit int, omit ...string) url.Values {
	skip := make(map[string]bool, len(omit))
	for _, k := range omit {
		skip[k] = true
	}

	params := url.Values{}
	for key, value := range filters {
		if skip[key] {
			continue
		}
		v := strings.TrimSpace(value)
		if IsUnset(v) {
			continue
		}
		params.Set(key, v)
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))
	return params
}
