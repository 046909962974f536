package paytech

import "fmt"

// Config PayTech 客户端配置
type Config struct {
	BaseURL   string // API 地址，如 https://paytech.sn/api
	APIKey    string
	APISecret string
	Env       string // 网关环境标识："test" 或 "prod"
	Timeout   int    // 请求超时，单位秒
}

// PaymentRequest 发起支付的请求载荷
//
// 金额 ItemPrice 保持字符串透传，网关负责校验数值合法性
type PaymentRequest struct {
	ItemName    string `json:"item_name"`
	ItemPrice   string `json:"item_price"`
	Currency    string `json:"currency"`
	RefCommand  string `json:"ref_command"`
	CommandName string `json:"command_name"`
	Env         string `json:"env"`
	IpnURL      string `json:"ipn_url"`
	SuccessURL  string `json:"success_url"`
	CancelURL   string `json:"cancel_url"`
	CustomField string `json:"custom_field"`
}

// PaymentResponse 网关响应
//
// PayTech 成功时返回 success=1、跳转地址和一个不透明 token。
// RawBody 保留原始响应内容，网关语义失败时原样回显给调用方
type PaymentResponse struct {
	Success     int    `json:"success"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`

	RawBody string `json:"-"`
}

// IsSuccess 网关是否接受了支付请求
func (r *PaymentResponse) IsSuccess() bool {
	return r.Success == 1 && r.RedirectURL != ""
}

// CustomField 通过网关透传的业务关联信息
// 发起时写入，回调通知时原样带回，用于回填场次/订阅状态
type CustomField struct {
	Name           string `json:"name,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SessionID      string `json:"session_id,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

// APIError 网关返回了非 2xx 响应
// 保留上游状态码和响应体，供调用方透传诊断信息
type APIError struct {
	StatusCode int
	Body       string
}

// Error 实现 error 接口
func (e *APIError) Error() string {
	return fmt.Sprintf("paytech api error: status=%d body=%s", e.StatusCode, e.Body)
}
