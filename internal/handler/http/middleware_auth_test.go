package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ---- Helpers ----

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "valid Bearer token",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "scheme is case-insensitive",
			header:    "bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "missing token part",
			header:  "Bearer",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "blank token part",
			header:  "Bearer    ",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "non-Bearer scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: ErrInvalidAuthorizationHeader,
		},
		{
			name:    "token without scheme",
			header:  "eyJhbGciOiJIUzI1NiJ9",
			wantErr: ErrInvalidAuthorizationHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		authenticateFn func(ctx context.Context, token string) (models.Session, error)
		expectedStatus int
		expectedMsg    string
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    msgTokenRequired,
		},
		{
			name:           "wrong scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    msgTokenRequired,
		},
		{
			name:       "valid token → next called",
			authHeader: "Bearer valid-token",
			authenticateFn: func(_ context.Context, token string) (models.Session, error) {
				return models.Session{IdentityID: "42", Email: "ann@x.com"}, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:       "rejected token → 401",
			authHeader: "Bearer expired-token",
			authenticateFn: func(context.Context, string) (models.Session, error) {
				return models.Session{}, service.ErrUnauthorized
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Invalid or expired token",
		},
		{
			name:       "unexpected failure → 401",
			authHeader: "Bearer some-token",
			authenticateFn: func(context.Context, string) (models.Session, error) {
				return models.Session{}, errors.New("db is down")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    msgAuthenticationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(&fakeAuthService{authenticateFn: tt.authenticateFn}, nil)

			var (
				nextCalled bool
				session    models.Session
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				session, _ = utils.GetSessionFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
			if tt.nextCalled {
				assert.Equal(t, models.Session{IdentityID: "42", Email: "ann@x.com"}, session)
			} else {
				assert.Equal(t, tt.expectedMsg, decodeMessage(t, rr))
			}
		})
	}
}

func TestAuth_PassesTokenToService(t *testing.T) {
	var received string
	h := newTestHandler(&fakeAuthService{
		authenticateFn: func(_ context.Context, token string) (models.Session, error) {
			received = token
			return models.Session{IdentityID: "1"}, nil
		},
	}, nil)

	executeAuth(h, "Bearer  abc.def.ghi ", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	assert.Equal(t, "abc.def.ghi", received)
}
