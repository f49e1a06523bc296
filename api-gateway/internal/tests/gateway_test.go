package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tiffin-finder/api-gateway/internal/gateway"
	"tiffin-finder/api-gateway/internal/mocks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func okResponse(body string) *http.Response {
	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Targets(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantTarget string
	}{
		{name: "nearby kitchens", method: http.MethodGet, path: "/api/kitchens/nearby", wantTarget: "http://kitchen-svc/api/kitchens/nearby"},
		{name: "create kitchen", method: http.MethodPost, path: "/api/kitchens", wantTarget: "http://kitchen-svc/api/kitchens"},
		{name: "sign in", method: http.MethodPost, path: "/api/auth/signin", wantTarget: "http://kitchen-svc/api/auth/signin"},
		{name: "orders with query", method: http.MethodGet, path: "/api/orders?limit=5", wantTarget: "http://kitchen-svc/api/orders?limit=5"},
		{name: "order qr code", method: http.MethodGet, path: "/api/orders/abc/qrcode", wantTarget: "http://kitchen-svc/api/orders/abc/qrcode"},
		{name: "uploaded image", method: http.MethodGet, path: "/uploads/kitchen_1.png", wantTarget: "http://kitchen-svc/uploads/kitchen_1.png"},
		{name: "create review", method: http.MethodPost, path: "/api/kitchens/abc/reviews", wantTarget: "http://rate-svc/api/kitchens/abc/reviews"},
		{name: "review distribution", method: http.MethodGet, path: "/api/kitchens/abc/reviews/distribution", wantTarget: "http://rate-svc/api/kitchens/abc/reviews/distribution"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockClient := mocks.NewHTTPClient(t)
			gw := gateway.NewGateway(gateway.Config{
				KitchenSvcURL: "http://kitchen-svc",
				RateSvcURL:    "http://rate-svc",
			}, mockClient, quietLogger())

			mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == testCase.wantTarget && req.Method == testCase.method
			})).Return(okResponse(`{"ok":true}`), nil).Once()

			req := httptest.NewRequest(testCase.method, testCase.path, strings.NewReader(`{}`))
			req.Header.Set("Authorization", "Bearer token")
			rr := httptest.NewRecorder()

			gw.SetupRoutes().ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), `"ok":true`)
		})
	}
}

func TestGateway_RouteHandler_ForwardsHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{KitchenSvcURL: "http://kitchen-svc"}, mockClient, quietLogger())

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Authorization") == "Bearer abc"
	})).Return(okResponse(`[]`), nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	req.Header.Set("Authorization", "Bearer abc")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil, quietLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		KitchenSvcURL: "http://invalid",
	}, mockClient, quietLogger())

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/kitchens/nearby", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_Realtime(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, r.URL.Path+"?"+r.URL.RawQuery)
	}))
	defer backend.Close()

	t.Run("proxies to kitchen service", func(t *testing.T) {
		gw := gateway.NewGateway(gateway.Config{KitchenSvcURL: backend.URL}, nil, quietLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/realtime/orders/abc?access_token=t", nil)
		rr := httptest.NewRecorder()
		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "/api/realtime/orders/abc?access_token=t", rr.Body.String())
	})

	t.Run("unconfigured backend", func(t *testing.T) {
		gw := gateway.NewGateway(gateway.Config{}, nil, quietLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/realtime/auth", nil)
		rr := httptest.NewRecorder()
		gw.RouteHandler(rr, req)

		assert.Equal(t, http.StatusBadGateway, rr.Code)
	})
}
