package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/mock"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
)

const testToken = "tkn"

type testMocks struct {
	nfts        *mock.MockNFTService
	collections *mock.MockCollectionService
	membership  *mock.MockMembershipService
	appInfo     *mock.MockAppInfoService
}

// newTestHandler собирает Handler поверх gomock-сервисов
func newTestHandler(t *testing.T, log *logger.Logger) (*Handler, *testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &testMocks{
		nfts:        mock.NewMockNFTService(ctrl),
		collections: mock.NewMockCollectionService(ctrl),
		membership:  mock.NewMockMembershipService(ctrl),
		appInfo:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		NFTService:        m.nfts,
		CollectionService: m.collections,
		MembershipService: m.membership,
		AppInfoService:    m.appInfo,
	}

	if log == nil {
		log = logger.Nop()
	}

	return NewHandler(services, testToken, log), m
}

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

// do выполняет запрос через полный роутер с токеном
func do(h http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(utils.TokenHeader, testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// putForm отправляет url-encoded форму методом PUT
func putForm(h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(utils.TokenHeader, testToken)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
