package router

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jbeshir/feed-ranking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayValidator(t *testing.T) {
	validate := NewGatewayValidator(DefaultGatewayHeader)

	cases := []struct {
		name     string
		headers  []string
		wantID   string
		wantErr  bool
		wantSkip bool
	}{
		{name: "no_header", wantSkip: true},
		{name: "viewer", headers: []string{"alice"}, wantID: "alice"},
		{name: "trimmed", headers: []string{"  alice "}, wantID: "alice"},
		{name: "blank", headers: []string{" "}, wantErr: true},
		{name: "repeated", headers: []string{"alice", "bob"}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for _, h := range tc.headers {
				req.Header.Add(DefaultGatewayHeader, h)
			}

			result, err := validate(req)

			switch {
			case tc.wantSkip:
				assert.Nil(t, result)
				assert.NoError(t, err)
			case tc.wantErr:
				assert.Nil(t, result)
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, result.ViewerID)
				assert.Equal(t, domain.AuthMethodGateway, result.Method)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	skip := func(*http.Request) (*AuthResult, error) { return nil, nil }
	reject := func(*http.Request) (*AuthResult, error) { return nil, errors.New("bad token") }
	accept := func(*http.Request) (*AuthResult, error) {
		return &AuthResult{ViewerID: "alice", Method: domain.AuthMethodAuth0}, nil
	}

	cases := []struct {
		name       string
		validators []AuthValidator
		wantStatus int
		wantViewer string
	}{
		{name: "no_validators_pass_through", wantStatus: http.StatusOK},
		{name: "skipped_validators_pass_through", validators: []AuthValidator{skip, skip}, wantStatus: http.StatusOK},
		{name: "first_applicable_wins", validators: []AuthValidator{skip, accept, reject}, wantStatus: http.StatusOK, wantViewer: "alice"},
		{name: "failed_validation_rejects", validators: []AuthValidator{reject, accept}, wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seenViewer string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenViewer = domain.ViewerIDFromContext(r.Context())
			})

			rec := httptest.NewRecorder()
			NewAuthMiddleware(tc.validators)(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantViewer, seenViewer)
		})
	}
}

func TestAuthMiddleware_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		domain.LoggerFromContext(r.Context()).InfoContext(r.Context(), "handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DefaultGatewayHeader, "alice")
	req = req.WithContext(domain.ContextWithLogger(req.Context(), logger))

	rec := httptest.NewRecorder()
	NewAuthMiddleware([]AuthValidator{NewGatewayValidator(DefaultGatewayHeader)})(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), `"viewer_id":"alice"`)
	assert.Contains(t, buf.String(), `"auth_method":"gateway"`)
}
