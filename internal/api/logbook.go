package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/magangkita/admin-console-go/internal/domain/logbook"
)

// ListLogbooks fetches one page of daily logbook entries.
// Recognized params: page, limit, start_date, end_date, division_id, status,
// search.
func (c *Client) ListLogbooks(ctx context.Context, params url.Values) (Page[logbook.Record], error) {
	return fetchPage[logbook.Record](ctx, c, "/admin/logbook", params)
}

// ReviewLogbook records a supervisor review on one logbook entry.
func (c *Client) ReviewLogbook(ctx context.Context, id string, status logbook.Status, feedback string) (logbook.Record, error) {
	body := map[string]any{"status": status}
	if feedback != "" {
		body["feedback"] = feedback
	}
	return fetchObject[logbook.Record](ctx, c, http.MethodPut, "/admin/logbook/"+id, body)
}
