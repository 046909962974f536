// Package paytech 封装与 PayTech 支付网关的交互
//
// PayTech 没有官方 Go SDK，这里基于 resty 直接调用其 HTTP API：
// 一个发起支付的出站接口，外加网关异步推送的 IPN 回调（由路由层接收）
package paytech

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"gamepay/pkg/logger"
)

// 请求路径与默认参数
const (
	// requestPaymentPath 发起支付的接口路径
	requestPaymentPath = "/payment/request-payment"
	// DefaultTimeout 默认请求超时时间
	DefaultTimeout = 30 * time.Second
)

// Service PayTech 网关客户端
type Service struct {
	client    *resty.Client
	baseURL   string
	apiKey    string
	apiSecret string
	env       string
}

// NewService 创建网关客户端
func NewService(cfg Config) *Service {
	if cfg.BaseURL == "" || cfg.APIKey == "" {
		return nil
	}

	timeout := DefaultTimeout
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}

	// 网关挂起时不能无限期占住请求，必须设置超时
	client := resty.New().
		SetTimeout(timeout)

	return &Service{
		client:    client,
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		env:       cfg.Env,
	}
}

// Env 返回配置的网关环境标识
func (s *Service) Env() string {
	return s.env
}

// RequestPayment 向网关发起支付请求
//
// 错误分三类：
//   - 网络层失败：返回包装后的 error
//   - 网关返回非 2xx：返回 *APIError，保留上游状态码和响应体
//   - 2xx 但语义失败（无 success/redirect_url）：正常返回响应，
//     由调用方检查 IsSuccess 并回显 RawBody
func (s *Service) RequestPayment(ctx context.Context, req *PaymentRequest) (*PaymentResponse, error) {
	start := time.Now()

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("API_KEY", s.apiKey).
		SetHeader("API_SECRET", s.apiSecret).
		SetBody(req).
		Post(s.baseURL + requestPaymentPath)

	if err != nil {
		logger.ErrorString("PayTech", "Request", fmt.Sprintf(
			"请求失败 ref:%s 错误:%v", req.RefCommand, err))
		return nil, fmt.Errorf("failed to call paytech api: %w", err)
	}

	logger.InfoString("PayTech", "Response", fmt.Sprintf(
		"请求完成 ref:%s 状态:%d 耗时:%v", req.RefCommand, resp.StatusCode(), time.Since(start)))

	if resp.IsError() {
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}

	var payResp PaymentResponse
	if err := json.Unmarshal(resp.Body(), &payResp); err != nil {
		// 响应体不是合法 JSON 也按语义失败处理，保留原文供回显
		logger.WarnString("PayTech", "Response", "响应解析失败: "+err.Error())
	}
	payResp.RawBody = resp.String()

	return &payResp, nil
}
