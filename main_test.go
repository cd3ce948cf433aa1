package main

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kineticfest/registration-core/config"
	"github.com/stretchr/testify/assert"
)

func testRouter() http.Handler {
	gin.SetMode(gin.TestMode)

	cfg := config.Config{
		Credential: config.Credential{
			AccountEmail:  "bot@project.iam.gserviceaccount.com",
			PrivateKeyPEM: "unused",
			SpreadsheetID: "sheet-123",
		},
		Addr: ":0",
	}
	return newRouter(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPreflight(t *testing.T) {
	r := testRouter()

	for _, target := range []string{"/api/check-registration", "/api/register"} {
		req := httptest.NewRequest(http.MethodOptions, target, nil)
		req.Header.Set("Origin", "https://kineticfest.example")
		req.Header.Set("Access-Control-Request-Method", "POST")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "preflight for %s", target)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestHealthz(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUnknownMethod(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/register", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
