package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekranoplan/backend/config"
	"github.com/ekranoplan/backend/pkg/errorx"
	"github.com/ekranoplan/backend/pkg/logger"
	"github.com/ekranoplan/backend/pkg/router"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	lines map[string][]string
}

func newRecordLogger() *recordLogger {
	return &recordLogger{lines: map[string][]string{}}
}

func (l *recordLogger) record(level, msg string, a ...any) {
	l.lines[level] = append(l.lines[level], fmt.Sprintf(msg, a...))
}

func (l *recordLogger) Debugf(msg string, a ...any) { l.record("debug", msg, a...) }
func (l *recordLogger) Infof(msg string, a ...any)  { l.record("info", msg, a...) }
func (l *recordLogger) Warnf(msg string, a ...any)  { l.record("warn", msg, a...) }
func (l *recordLogger) Errorf(msg string, a ...any) { l.record("error", msg, a...) }

type pingRequest struct {
	Fail string `form:"fail"`
}

type pingResponse struct{}

func ping(ctx context.Context, req *pingRequest) (*pingResponse, error) {
	switch req.Fail {
	case "typed":
		return nil, errorx.New(errorx.NotFound, "Not found channel")
	case "raw":
		return nil, errors.New("boom")
	}

	return &pingResponse{}, nil
}

func newTestRouter(l logger.Logger) *router.Router {
	cfg := config.Default()
	r := router.New(cfg, logger.NewLogger(logger.SILENCE), nil, nil)
	r.Use(Logger(l), AllowCors([]string{"https://app.ekranoplan.dev"}))
	router.GET(r, "/ping", ping)
	return r
}

func TestLogger(t *testing.T) {
	l := newRecordLogger()
	r := newTestRouter(l)

	for _, target := range []string{"/ping", "/ping?fail=typed", "/ping?fail=raw"} {
		r.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	require.Len(t, l.lines["info"], 1)
	require.Contains(t, l.lines["info"][0], "GET | /ping | 200")
	require.Len(t, l.lines["warn"], 1)
	require.Contains(t, l.lines["warn"][0], fmt.Sprintf("| %d", errorx.NotFound))
	require.Len(t, l.lines["error"], 1)
	require.Contains(t, l.lines["error"][0], "| boom")
}

func TestAllowCors(t *testing.T) {
	r := newTestRouter(newRecordLogger())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://app.ekranoplan.dev")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://app.ekranoplan.dev", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
