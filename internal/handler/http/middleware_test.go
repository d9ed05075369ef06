package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
	"github.com/MKhiriev/go-nft-keeper/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// withToken
// ─────────────────────────────────────────────────────────────────────────────

func TestWithToken(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", token: "tkn", header: "tkn", wantStatus: http.StatusOK},
		{name: "missing token", token: "tkn", header: "", wantStatus: http.StatusUnauthorized, wantBody: app.MsgMissingToken},
		{name: "wrong token", token: "tkn", header: "nope", wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidToken},
		{name: "check disabled", token: "", header: "", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{token: tt.token, logger: logger.Nop()}
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil)
			if tt.header != "" {
				req.Header.Set(utils.TokenHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.withToken(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRoutes_VersionIsPublic(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := serve(h.Init(), httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestRoutes_APIRequiresToken(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	router := h.Init()

	for _, path := range []string{"/api/v1/nft/a", "/api/v1/collections", "/api/v1/profile/1", "/api/v1/orders/1"} {
		rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// withTraceID / withLogging
// ─────────────────────────────────────────────────────────────────────────────

func TestWithTraceID_GeneratesAndEchoes(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("dev").Times(2)
	router := h.Init()

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/version", nil))
	assert.Len(t, rec.Header().Get(traceIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/version", nil)
	req.Header.Set(traceIDHeader, "caller-trace")
	rec = serve(router, req)
	assert.Equal(t, "caller-trace", rec.Header().Get(traceIDHeader))
}

func TestWithLogging_WritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h, m := newTestHandler(t, newTestLogger(&buf))
	m.nfts.EXPECT().GetNFT(gomock.Any(), models.Identifier("a")).Return(models.NFT{ID: "a"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nft/a", nil)
	req.Header.Set(utils.TokenHeader, testToken)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := serve(h.Init(), req)
	require.Equal(t, http.StatusOK, rec.Code)

	// последняя запись журнала это access-лог
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	assert.Equal(t, "trace-1", entry["trace_id"])
	assert.Equal(t, "/api/v1/nft/a", entry["uri"])
	assert.Equal(t, "GET", entry["method"])
	assert.EqualValues(t, http.StatusOK, entry["status"])
	assert.Greater(t, entry["size"], float64(0))
}

func TestResponseStatus_DefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: newTestLogger(&buf)}
	silent := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	h.withTraceID(h.withLogging(silent)).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), `"status":200`)
}

// ─────────────────────────────────────────────────────────────────────────────
// withMetrics
// ─────────────────────────────────────────────────────────────────────────────

func TestWithMetrics_CountsByRoutePattern(t *testing.T) {
	h, m := newTestHandler(t, nil)
	m.nfts.EXPECT().GetNFT(gomock.Any(), gomock.Any()).Return(models.NFT{}, nil).Times(2)
	router := h.Init()

	do(router, http.MethodGet, "/api/v1/nft/a", nil)
	do(router, http.MethodGet, "/api/v1/nft/b", nil)
	serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/collections", nil))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `nft_keeper_http_requests_total{method="GET",route="/api/v1/nft/{id}",status="200"} 2`)
	assert.Contains(t, string(body), `nft_keeper_http_requests_total{method="GET",route="/api/v1/collections",status="401"} 1`)
	assert.Contains(t, string(body), "nft_keeper_http_request_duration_seconds_bucket")
}

func TestNewHandler_IndependentRegistries(t *testing.T) {
	h1, _ := newTestHandler(t, nil)
	h2, _ := newTestHandler(t, nil)

	assert.NotSame(t, h1.metrics.registry, h2.metrics.registry)
}

// ─────────────────────────────────────────────────────────────────────────────
// CheckHTTPMethod
// ─────────────────────────────────────────────────────────────────────────────

func TestCheckHTTPMethod_WrongMethodIs404(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	router := h.Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodDelete, "/api/v1/version"},
		{http.MethodPost, "/api/v1/profile/1"},
		{http.MethodPut, "/api/v1/nft/a"},
	} {
		rec := do(router, tc.method, tc.path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, fmt.Sprintf("%s %s", tc.method, tc.path))
	}
}

func TestUnknownPathIs404(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := do(h.Init(), http.MethodGet, "/api/v2/nothing", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ─────────────────────────────────────────────────────────────────────────────
// responseFromError
// ─────────────────────────────────────────────────────────────────────────────

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{ErrMissingSetField, http.StatusBadRequest, app.MsgMissingSetField},
		{fmt.Errorf("%w: x", ErrInvalidForm), http.StatusBadRequest, app.MsgInvalidForm},
		{fmt.Errorf("wrap: %w", service.ErrInvalidDataProvided), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{store.ErrNFTNotFound, http.StatusNotFound, app.MsgNFTNotFound},
		{store.ErrProfileNotFound, http.StatusNotFound, app.MsgProfileNotFound},
		{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
		{errors.New("anything"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
