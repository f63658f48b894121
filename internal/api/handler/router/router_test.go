package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tag(name string, trail *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trail = append(*trail, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter(t *testing.T) {
	var trail []string
	rt := New(WithRoutes(
		Route{
			Path:   "/v1/sessions/:id/messages",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trail = append(trail, "handler")
				w.WriteHeader(http.StatusNoContent)
			}),
			Middlewares: []func(http.Handler) http.Handler{tag("primeiro", &trail), tag("segundo", &trail)},
		},
		Route{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: http.NotFoundHandler(),
		},
	))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantCode   string
	}{
		{name: "rota registrada", method: http.MethodGet, path: "/v1/sessions/abc/messages", wantStatus: http.StatusNoContent},
		{name: "rota inexistente", method: http.MethodGet, path: "/v1/nada", wantStatus: http.StatusNotFound, wantCode: "VAL_004"},
		{name: "método errado", method: http.MethodPut, path: "/v1/sessions/abc/messages", wantStatus: http.StatusMethodNotAllowed, wantCode: "VAL_005"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail = nil
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantCode))
				assert.Empty(t, trail)
				return
			}
			assert.Equal(t, []string{"primeiro", "segundo", "handler"}, trail)
		})
	}

	routes := rt.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/v1/sessions/:id/messages", routes[0].Path)
	assert.Equal(t, "/healthcheck", routes[1].Path)
}
