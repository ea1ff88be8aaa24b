package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PageMeta is the pagination block attached to list responses. It may be
// absent entirely; callers must treat a nil meta as "no pagination UI".
type PageMeta struct {
	TotalRecords int  `json:"total_records"`
	TotalPages   int  `json:"total_pages"`
	Limit        int  `json:"limit"`
	HasPrev      bool `json:"has_prev"`
	HasNext      bool `json:"has_next"`
	CurrentPage  int  `json:"current_page"`
}

// Page is one fetched page of records.
type Page[T any] struct {
	Items []T
	Meta  *PageMeta
}

// envelope is the response wrapper the backend uses inconsistently: some
// endpoints wrap payloads in {data:...}, some double-wrap, some return the
// payload bare.
type envelope struct {
	Success    *bool           `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	Pagination *PageMeta       `json:"pagination"`
}

// decodePage normalizes every list shape the backend emits: a bare array,
// {data:[...], pagination:{...}}, or {data:{data:[...], pagination:{...}}}.
// The result's Items slice is always non-nil.
func decodePage[T any](raw []byte) (Page[T], error) {
	p := Page[T]{Items: []T{}}
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return p, nil
	}

	for depth := 0; depth < 3; depth++ {
		if body[0] == '[' {
			if err := json.Unmarshal(body, &p.Items); err != nil {
				return Page[T]{Items: []T{}}, fmt.Errorf("decode list: %w", err)
			}
			if p.Items == nil {
				p.Items = []T{}
			}
			return p, nil
		}

		var env envelope
		if err := json.Unmarshal(body, &env); err != nil {
			return p, fmt.Errorf("decode list envelope: %w", err)
		}
		if env.Pagination != nil {
			p.Meta = env.Pagination
		}
		inner := bytes.TrimSpace(env.Data)
		if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return p, nil
		}
		body = inner
	}
	return p, fmt.Errorf("decode list: envelope nested too deeply")
}

// decodeObject unwraps a single record from {data:{...}} or a bare object.
func decodeObject[T any](raw []byte) (T, error) {
	var out T
	body := bytes.TrimSpace(raw)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return out, nil
	}

	var env envelope
	if body[0] == '{' && json.Unmarshal(body, &env) == nil {
		inner := bytes.TrimSpace(env.Data)
		if len(inner) > 0 && !bytes.Equal(inner, []byte("null")) {
			body = inner
		}
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode object: %w", err)
	}
	return out, nil
}
