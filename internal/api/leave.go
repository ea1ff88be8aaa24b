package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magangkita/admin-console-go/internal/domain/leave"
)

// ListLeaveRequests fetches one page of leave requests. The backend keeps the
// legacy route name "izin" for this resource.
// Recognized params: page, limit, start_date, end_date, division_id, status,
// type, search.
func (c *Client) ListLeaveRequests(ctx context.Context, params url.Values) (Page[leave.Record], error) {
	return fetchPage[leave.Record](ctx, c, "/admin/izin", params)
}

// ReviewLeaveRequest approves or rejects one leave request.
func (c *Client) ReviewLeaveRequest(ctx context.Context, id string, status leave.Status, note string) (leave.Record, error) {
	body := map[string]any{"status": status}
	if note != "" {
		body["review_note"] = note
	}
	return fetchObject[leave.Record](ctx, c, http.MethodPut, "/admin/izin/"+id, body)
}
