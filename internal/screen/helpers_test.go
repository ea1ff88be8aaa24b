package screen

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/stretchr/testify/require"

	"github.com/magangkita/admin-console-go/internal/api"
)

type noteRec struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (n *noteRec) Success(msg string) {
	n.mu.Lock()
	n.successes = append(n.successes, msg)
	n.mu.Unlock()
}

func (n *noteRec) Error(msg string) {
	n.mu.Lock()
	n.errors = append(n.errors, msg)
	n.mu.Unlock()
}

func (n *noteRec) errorMessages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.errors...)
}

// newBackend stands up a fake admin API and a client pointed at it.
func newBackend(t *testing.T, register func(r chi.Router)) *api.Client {
	t.Helper()

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:3000"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))
	register(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := api.NewClient(srv.URL,
		api.WithHTTPClient(srv.Client()),
		api.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	return c
}

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *counter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func jsonDecode(req *http.Request, out any) error {
	return json.NewDecoder(req.Body).Decode(out)
}
