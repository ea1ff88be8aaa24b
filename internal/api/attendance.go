package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magangkita/admin-console-go/internal/domain/attendance"
)

// ListAttendances fetches one page of attendance records.
// Recognized params: page, limit, date_from, date_to, division_id, status,
// work_type, search.
func (c *Client) ListAttendances(ctx context.Context, params url.Values) (Page[attendance.Record], error) {
	return fetchPage[attendance.Record](ctx, c, "/admin/attendances", params)
}

// UpdateAttendance submits edited fields for one attendance record.
func (c *Client) UpdateAttendance(ctx context.Context, id string, fields map[string]any) (attendance.Record, error) {
	return fetchObject[attendance.Record](ctx, c, http.MethodPut, "/admin/attendances/"+id, fields)
}

// DeleteAttendance removes one attendance record.
func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/attendances/"+id)
}
