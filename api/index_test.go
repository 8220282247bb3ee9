package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	t.Setenv("LOG_LEVEL", "disabled")

	tests := []struct {
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{http.MethodGet, "/", http.StatusOK, `{"msgs":"Welcome to my api."}`},
		{http.MethodGet, "/api/health", http.StatusOK, `{"status":"healthy"}`},
		{http.MethodGet, "/nope", http.StatusNotFound, `{"detail":"Not Found"}`},
		{http.MethodPost, "/", http.StatusNotFound, `{"detail":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			Handler(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestHandler_ReusesRouter(t *testing.T) {
	t.Setenv("LOG_LEVEL", "disabled")

	Handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	first := router

	Handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotNil(t, first)
	assert.Equal(t, first, router)
}
