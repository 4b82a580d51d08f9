package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cfg "subtrack/internal/config"
)

func newTestRouter(results chan CallbackResult) *gin.Engine {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return SetupGin(cfg.Config{Env: "local"}, results, log)
}

func TestPing(t *testing.T) {
	router := newTestRouter(make(chan CallbackResult, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestCallback(t *testing.T) {
	t.Run("ok, code delivered", func(t *testing.T) {
		results := make(chan CallbackResult, 1)
		router := newTestRouter(results)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/callback?code=abc123", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Bank forbundet")

		select {
		case res := <-results:
			assert.Equal(t, "abc123", res.Code)
			assert.Empty(t, res.Err)
		default:
			t.Fatal("no result delivered")
		}
	})

	t.Run("ok, bank error delivered with description", func(t *testing.T) {
		results := make(chan CallbackResult, 1)
		router := newTestRouter(results)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/callback?error=access_denied&error_description=user+cancelled", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "mislykkedes")

		res := <-results
		assert.Empty(t, res.Code)
		assert.Equal(t, "access_denied: user cancelled", res.Err)
	})

	t.Run("err, nothing in the query", func(t *testing.T) {
		results := make(chan CallbackResult, 1)
		router := newTestRouter(results)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/callback", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, results)
	})

	t.Run("ok, second redirect does not block", func(t *testing.T) {
		results := make(chan CallbackResult, 1)
		router := newTestRouter(results)

		for range 2 {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/callback?code=abc123", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code)
		}

		res := <-results
		require.Equal(t, "abc123", res.Code)
	})
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(make(chan CallbackResult, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCallbackMethodNotAllowed(t *testing.T) {
	router := newTestRouter(make(chan CallbackResult, 1))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/callback", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
