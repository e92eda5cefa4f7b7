package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	const want = "1.2.3"

	h := NewHandler(&service.Services{AppInfoService: &mockAppInfoService{version: want}}, config.Server{}, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestGetServerVersion_ThroughRouter(t *testing.T) {
	rec := serve(t, newTestHandler(nil, nil), http.MethodGet, "/api/version", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}
