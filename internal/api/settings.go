package api

import (
	"context"
	"net/http"

	"github.com/magangkita/admin-console-go/internal/domain/settings"
)

// GetSettings fetches the system settings. The backend may return a partial
// object; the settings screen merges it over the client-side defaults.
func (c *Client) GetSettings(ctx context.Context) (settings.Partial, error) {
	return fetchObject[settings.Partial](ctx, c, http.MethodGet, "/admin/settings", nil)
}

// UpdateSettings saves the full settings object.
func (c *Client) UpdateSettings(ctx context.Context, s settings.Settings) (settings.Partial, error) {
	return fetchObject[settings.Partial](ctx, c, http.MethodPut, "/admin/settings", s)
}
