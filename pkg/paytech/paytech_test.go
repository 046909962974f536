package paytech

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	btsConfig "gamepay/config"
	"gamepay/pkg/config"
	"gamepay/pkg/logger"
)

func setupTest(t *testing.T) {
	t.Helper()
	btsConfig.Initialize()
	config.InitConfig("testing")
	config.Set("app.env", "testing")
	logger.InitLogger(filepath.Join(t.TempDir(), "logs.log"), 1, 1, 1, false, "single", "debug")
}

func newTestService(t *testing.T, serverURL string) *Service {
	t.Helper()
	svc := NewService(Config{
		BaseURL:   serverURL,
		APIKey:    "test-key",
		APISecret: "test-secret",
		Env:       "test",
	})
	require.NotNil(t, svc)
	return svc
}

func TestNewService_MissingConfig(t *testing.T) {
	assert.Nil(t, NewService(Config{}))
	assert.Nil(t, NewService(Config{BaseURL: "https://paytech.sn/api"}))
}

func TestRequestPayment_Success(t *testing.T) {
	setupTest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/request-payment", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("API_KEY"))
		assert.Equal(t, "test-secret", r.Header.Get("API_SECRET"))

		var req PaymentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "XOF", req.Currency)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":1,"token":"tok_abc","redirect_url":"https://paytech.sn/payment/checkout/tok_abc"}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	resp, err := svc.RequestPayment(context.Background(), &PaymentRequest{
		ItemName:   "Gaming payment",
		ItemPrice:  "1500",
		Currency:   "XOF",
		RefCommand: GenerateReference(),
		Env:        "test",
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, "tok_abc", resp.Token)
	assert.Equal(t, "https://paytech.sn/payment/checkout/tok_abc", resp.RedirectURL)
}

func TestRequestPayment_SemanticFailure(t *testing.T) {
	setupTest(t)

	body := `{"success":0,"errors":["Invalid api key"]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	resp, err := svc.RequestPayment(context.Background(), &PaymentRequest{RefCommand: "GMP-1-1"})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	// 原始响应体保留，供控制器回显
	assert.Equal(t, body, resp.RawBody)
}

func TestRequestPayment_UpstreamHTTPError(t *testing.T) {
	setupTest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"success":0,"message":"Forbidden"}`))
	}))
	defer server.Close()

	svc := newTestService(t, server.URL)

	resp, err := svc.RequestPayment(context.Background(), &PaymentRequest{RefCommand: "GMP-1-2"})
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "Forbidden")
}

func TestRequestPayment_TransportError(t *testing.T) {
	setupTest(t)

	// 指向一个没有监听的端口
	svc := newTestService(t, "http://127.0.0.1:1")

	resp, err := svc.RequestPayment(context.Background(), &PaymentRequest{RefCommand: "GMP-1-3"})
	assert.Nil(t, resp)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}
