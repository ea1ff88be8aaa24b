package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestBackend stands up an authenticated admin API the way the real
// backend is wired: chi router, CORS, request logging, bearer-token
// verification. It returns the server and a valid token for it.
func newTestBackend(t *testing.T, register func(r chi.Router)) (*httptest.Server, string) {
	t.Helper()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	_, token, err := tokenAuth.Encode(map[string]any{
		"user_id": "admin-1",
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:           300,
	}))
	r.Use(httplog.RequestLogger(logger, &httplog.Options{Level: slog.LevelDebug}))
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(jwtauth.Authenticator(tokenAuth))
		register(r)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, token
}

func newTestClient(t *testing.T, srv *httptest.Server, token string) *Client {
	t.Helper()
	c, err := NewClient(srv.URL,
		WithHTTPClient(srv.Client()),
		WithTokenSource(func() string { return token }),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	return c
}

func TestClient_AttachesAuthAndRequestID(t *testing.T) {
	t.Parallel()

	var gotRequestID string
	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/divisions", func(w http.ResponseWriter, req *http.Request) {
			gotRequestID = req.Header.Get("X-Request-ID")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[]`))
		})
	})
	c := newTestClient(t, srv, token)

	_, err := c.ListDivisions(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID, "every request carries a request ID")
}

func TestClient_UnauthenticatedIsRejected(t *testing.T) {
	t.Parallel()

	srv, _ := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/divisions", func(w http.ResponseWriter, req *http.Request) {
			w.Write([]byte(`[]`))
		})
	})
	c := newTestClient(t, srv, "")

	_, err := c.ListDivisions(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestListAttendances_DoubleWrappedEnvelope(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/attendances", func(w http.ResponseWriter, req *http.Request) {
			gotQuery = req.URL.Query()
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"success": true,
				"message": "ok",
				"data": {
					"data": [
						{"id": "a1", "user_id": "u1", "date": "2026-08-29", "status": "late", "work_type": "onsite",
						 "user": {"id": "u1", "name": "Andi", "cohort": "2026-1", "source_of_internship": "campus"}},
						{"id": "a2", "user_id": "u2", "date": "2026-08-29", "status": "present", "work_type": "offsite",
						 "user": {"id": "u2", "name": "Budi", "cohort": "2026-1", "source_of_internship": "public"}}
					],
					"pagination": {"total_records": 37, "total_pages": 4, "limit": 10, "has_prev": false, "has_next": true, "current_page": 1}
				}
			}`))
		})
	})
	c := newTestClient(t, srv, token)

	params := url.Values{}
	params.Set("page", "1")
	params.Set("limit", "10")
	params.Set("status", "late")

	page, err := c.ListAttendances(context.Background(), params)
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, "a1", page.Items[0].ID)
	assert.Equal(t, "Andi", page.Items[0].User.Name)
	require.NotNil(t, page.Meta)
	assert.Equal(t, 37, page.Meta.TotalRecords)
	assert.Equal(t, 4, page.Meta.TotalPages)
	assert.True(t, page.Meta.HasNext)
	assert.Equal(t, "late", gotQuery.Get("status"))
}

func TestListDivisions_BareArray(t *testing.T) {
	t.Parallel()

	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/divisions", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"id": "d1", "name": "Engineering", "member_count": 8}]`))
		})
	})
	c := newTestClient(t, srv, token)

	divisions, err := c.ListDivisions(context.Background())
	require.NoError(t, err)
	require.Len(t, divisions, 1)
	assert.Equal(t, "Engineering", divisions[0].Name)
}

func TestListUsers_SingleWrapWithoutPagination(t *testing.T) {
	t.Parallel()

	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Get("/admin/users", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": [{"id": "u1", "name": "Andi", "is_active": true}], "pagination": null}`))
		})
	})
	c := newTestClient(t, srv, token)

	page, err := c.ListUsers(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.True(t, page.Items[0].Active)
	assert.Nil(t, page.Meta, "missing pagination must not fabricate one")
}

func TestClient_ErrorMessageShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		wantCode string
	}{
		{"top-level message", 409, `{"success": false, "message": "Email already used"}`, "Email already used", ""},
		{"nested error object", 422, `{"error": {"code": "VALIDATION_ERROR", "message": "name is required"}}`, "name is required", "VALIDATION_ERROR"},
		{"empty body", 500, ``, "", ""},
		{"non-json body", 502, `Bad Gateway`, "", ""},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv, token := newTestBackend(t, func(r chi.Router) {
				r.Get("/admin/users", func(w http.ResponseWriter, req *http.Request) {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(tc.status)
					w.Write([]byte(tc.body))
				})
			})
			c := newTestClient(t, srv, token)

			_, err := c.ListUsers(context.Background(), nil)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.Status)
			assert.Equal(t, tc.wantMsg, apiErr.Message)
			assert.Equal(t, tc.wantCode, apiErr.Code)

			if tc.wantMsg != "" {
				assert.Equal(t, tc.wantMsg, Message(err, "fallback"))
			} else {
				assert.Equal(t, "fallback", Message(err, "fallback"))
			}
		})
	}
}

func TestClient_ImportRowErrors(t *testing.T) {
	t.Parallel()

	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Post("/admin/users/import", func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{
				"message": "2 rows failed validation",
				"errors": [
					{"row": 3, "errors": ["email is invalid"]},
					{"row": 7, "errors": ["name is required", "password too short"]}
				]
			}`))
		})
	})
	c := newTestClient(t, srv, token)

	_, err := c.ImportUsers(context.Background(), "interns.xlsx", strings.NewReader("dummy"))
	require.Error(t, err)

	rows := RowErrors(err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].Row)
	assert.Equal(t, []string{"name is required", "password too short"}, rows[1].Errors)
	assert.Equal(t, "2 rows failed validation", Message(err, "Import failed"))
}

func TestImportUsers_SendsMultipartFile(t *testing.T) {
	t.Parallel()

	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Post("/admin/users/import", func(w http.ResponseWriter, req *http.Request) {
			file, header, err := req.FormFile("file")
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			defer file.Close()
			content, _ := io.ReadAll(file)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"message": "imported " + header.Filename,
				"data":    map[string]any{"count": len(content)},
			})
		})
	})
	c := newTestClient(t, srv, token)

	res, err := c.ImportUsers(context.Background(), "interns.xlsx", strings.NewReader("col1,col2"))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "imported interns.xlsx", res.Message)
	assert.Equal(t, len("col1,col2"), res.Data.Count)
}

func TestResetUserPassword_SendsBody(t *testing.T) {
	t.Parallel()

	var gotBody map[string]string
	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Post("/admin/users/{id}/reset-password", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			require.Equal(t, "u1", chi.URLParam(req, "id"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"success": true, "message": "Password reset"}`))
		})
	})
	c := newTestClient(t, srv, token)

	require.NoError(t, c.ResetUserPassword(context.Background(), "u1", "abc123"))
	assert.Equal(t, map[string]string{"new_password": "abc123"}, gotBody)
}

func TestSetUserActive_PutsFlag(t *testing.T) {
	t.Parallel()

	var gotBody map[string]bool
	srv, token := newTestBackend(t, func(r chi.Router) {
		r.Put("/admin/users/{id}/active", func(w http.ResponseWriter, req *http.Request) {
			require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"data": {"id": "u1", "is_active": false}}`))
		})
	})
	c := newTestClient(t, srv, token)

	u, err := c.SetUserActive(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.False(t, u.Active)
	assert.Equal(t, map[string]bool{"is_active": false}, gotBody)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	t.Parallel()

	_, err := NewClient("/not/absolute")
	assert.Error(t, err)
}
