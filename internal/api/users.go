package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/magangkita/admin-console-go/internal/domain/user"
)

// ImportResult is the backend's answer to a bulk user import. Errors carries
// per-row validation failures when some rows were rejected.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Count int `json:"count"`
	} `json:"data"`
	Errors []RowError `json:"errors,omitempty"`
}

// ListUsers fetches one page of users.
// Recognized params: page, limit, role, division_id, is_active, search.
// Cohort and source filtering is NOT supported server-side; callers filter
// those on the fetched page.
func (c *Client) ListUsers(ctx context.Context, params url.Values) (Page[user.User], error) {
	return fetchPage[user.User](ctx, c, "/admin/users", params)
}

// CreateUser creates a user from submitted form fields.
func (c *Client) CreateUser(ctx context.Context, fields map[string]any) (user.User, error) {
	return fetchObject[user.User](ctx, c, http.MethodPost, "/admin/users", fields)
}

// UpdateUser submits edited fields for one user.
func (c *Client) UpdateUser(ctx context.Context, id string, fields map[string]any) (user.User, error) {
	return fetchObject[user.User](ctx, c, http.MethodPut, "/admin/users/"+id, fields)
}

// DeleteUser removes one user.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/admin/users/"+id)
}

// SetUserActive flips a user's active flag. Fires immediately; the caller
// refetches rather than patching local state.
func (c *Client) SetUserActive(ctx context.Context, id string, active bool) (user.User, error) {
	return fetchObject[user.User](ctx, c, http.MethodPut, "/admin/users/"+id+"/active", map[string]any{"is_active": active})
}

// ResetUserPassword sets a new password for one user.
func (c *Client) ResetUserPassword(ctx context.Context, id, newPassword string) error {
	_, err := c.sendJSON(ctx, http.MethodPost, "/admin/users/"+id+"/reset-password", map[string]any{"new_password": newPassword})
	return err
}

// ListSupervisors fetches the supervisor lookup used by filter dropdowns and
// assignment forms.
func (c *Client) ListSupervisors(ctx context.Context) ([]user.Summary, error) {
	raw, err := c.get(ctx, "/admin/users/supervisors", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[user.Summary](raw)
}

// ListUnassignedUsers fetches users not yet placed in any division.
func (c *Client) ListUnassignedUsers(ctx context.Context) ([]user.Summary, error) {
	raw, err := c.get(ctx, "/admin/users/unassigned", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[user.Summary](raw)
}

// ImportUsers uploads a staged spreadsheet as one multipart request. The
// returned result may carry per-row errors even on a 2xx response.
func (c *Client) ImportUsers(ctx context.Context, filename string, r io.Reader) (ImportResult, error) {
	raw, err := c.upload(ctx, "/admin/users/import", "file", filename, r)
	if err != nil {
		return ImportResult{}, err
	}
	var res ImportResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return ImportResult{}, fmt.Errorf("decode import result: %w", err)
	}
	return res, nil
}

// ExportUsers downloads the filtered user list as a spreadsheet stream.
func (c *Client) ExportUsers(ctx context.Context, params url.Values) ([]byte, error) {
	return c.get(ctx, "/admin/users/export", params)
}

// DownloadUserTemplate downloads the import template workbook.
func (c *Client) DownloadUserTemplate(ctx context.Context) ([]byte, error) {
	return c.get(ctx, "/admin/users/template/download", nil)
}

func decodeList[T any](raw []byte) ([]T, error) {
	p, err := decodePage[T](raw)
	if err != nil {
		return nil, err
	}
	return p.Items, nil
}
