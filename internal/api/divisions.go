package api

import (
	"context"
	"net/http"

	"github.com/magangkita/admin-console-go/internal/domain/division"
)

// ListDivisions fetches every division. This endpoint returns the array
// directly, without the {data:...} wrapper; the shared unwrap copes with both.
func (c *Client) ListDivisions(ctx context.Context) ([]division.Division, error) {
	raw, err := c.get(ctx, "/admin/divisions", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[division.Division](raw)
}

// CreateDivision creates a division from submitted form fields.
func (c *Client) CreateDivision(ctx context.Context, fields map[string]any) (division.Division, error) {
	return fetchObject[division.Division](ctx, c, http.MethodPost, "/admin/divisions", fields)
}

// UpdateDivision submits edited fields for one division.
func (c *Client) UpdateDivision(ctx context.Context, id string, fields map[string]any) (division.Division, error) {
	return fetchObject[division.Division](ctx, c, http.MethodPut, "/admin/divisions/"+id, fields)
}

// DeleteDivision removes one division.
func (c *Client) DeleteDivision(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/divisions/"+id)
}

// AssignUsers replaces the set of users assigned to a division.
func (c *Client) AssignUsers(ctx context.Context, id string, userIDs []string) (division.Division, error) {
	return fetchObject[division.Division](ctx, c, http.MethodPut, "/admin/divisions/"+id+"/assign-users", map[string]any{"user_ids": userIDs})
}
