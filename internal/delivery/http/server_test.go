package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/winery-map/internal/config"
	httpDelivery "github.com/winery-map/internal/delivery/http"
	"github.com/winery-map/internal/delivery/http/handler"
	"github.com/winery-map/internal/domain"
	"github.com/winery-map/internal/metrics"
	"github.com/winery-map/internal/usecase"
)

type staticRepo struct {
	docs []domain.RawRecord
}

func (r staticRepo) FetchRecords(context.Context, int) ([]domain.RawRecord, error) {
	return r.docs, nil
}

func newServer(t *testing.T) *httpDelivery.Server {
	t.Helper()

	log := zap.NewNop()
	cfg := &config.Config{
		Server:       config.ServerConfig{Host: "127.0.0.1", Port: 0},
		Presentation: config.PresentationConfig{Breakpoint: domain.DefaultBreakpoint, WideMode: "panel"},
	}

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics(reg)

	repo := staticRepo{docs: []domain.RawRecord{
		{"id": "murviedro", "name": "Bodegas Murviedro", "location": []any{-1.0945, 39.4883}},
	}}
	directoryUC := usecase.NewDirectoryUseCase(repo, usecase.NewNormalizer(), m, log, 100)
	directoryUC.Load(context.Background())
	selectionUC := usecase.NewSelectionUseCase(directoryUC, m, log, domain.DefaultBreakpoint, domain.WideModePanel)

	marker := domain.DefaultMarkerStyle()
	pageHandler, err := handler.NewMapPageHandler(cfg, directoryUC, selectionUC, marker, log)
	require.NoError(t, err)

	return httpDelivery.NewServer(cfg, log, reg, pageHandler,
		handler.NewWineryHandler(directoryUC, marker, log),
		handler.NewSelectionHandler(selectionUC, log),
	)
}

func get(t *testing.T, s *httpDelivery.Server, path string) (*http.Response, string) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestServer_Routes(t *testing.T) {
	s := newServer(t)

	resp, body := get(t, s, "/api/v1/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", gjson.Get(body, "status").String())

	resp, body = get(t, s, "/api/v1/wineries")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), gjson.Get(body, "meta.total").Int())

	resp, _ = get(t, s, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Accept-CH"), "Sec-CH-Viewport-Width")
}

func TestServer_Metrics(t *testing.T) {
	s := newServer(t)

	get(t, s, "/api/v1/selection?winery=murviedro&width=390")

	resp, body := get(t, s, "/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `winerymap_record_fetch_total{status="ok"} 1`)
	assert.Contains(t, body, `winerymap_surface_decisions_total{surface="bottom_sheet"} 1`)
}

func TestServer_NotFound(t *testing.T) {
	s := newServer(t)

	resp, body := get(t, s, "/api/v1/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", gjson.Get(body, "error.code").String())
}
