// Package payment 支付发起与回调控制器
package payment

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamepay/app/models/payment"
	"gamepay/app/models/session"
	"gamepay/app/models/subscription"
	"gamepay/app/repositories"
	"gamepay/app/requests"
	"gamepay/pkg/config"
	"gamepay/pkg/logger"
	"gamepay/pkg/paytech"
	"gamepay/pkg/phone"
	"gamepay/pkg/response"
)

// PaymentController 支付控制器
type PaymentController struct {
	gateway       *paytech.Service
	payments      *repositories.PaymentRepository
	sessions      *repositories.SessionRepository
	subscriptions *repositories.SubscriptionRepository
}

// NewPaymentController 创建支付控制器
func NewPaymentController(
	gateway *paytech.Service,
	payments *repositories.PaymentRepository,
	sessions *repositories.SessionRepository,
	subscriptions *repositories.SubscriptionRepository,
) *PaymentController {
	return &PaymentController{
		gateway:       gateway,
		payments:      payments,
		sessions:      sessions,
		subscriptions: subscriptions,
	}
}

// PayWithWave 发起 Wave 支付
//
// 主流程是对网关的一次出站调用；支付成功后的 pending 记录落库
// 是次要写入，失败只记日志，绝不影响给客户端的响应
func (pc *PaymentController) PayWithWave(c *gin.Context) {
	// 网关未配置时直接拒绝，读接口不受影响
	if pc.gateway == nil {
		response.Abort500(c, "Payment gateway is not configured")
		return
	}

	// 1. 请求验证：只要求 name、phone、amount 非空
	req, err := requests.ValidatePayWithWave(c)
	if err != nil {
		response.BadRequest(c, err, "Missing required fields: name, phone and amount are required")
		return
	}

	// 2. 手机号规范化 + 生成支付引用号
	normalizedPhone := phone.Normalize(req.Phone)
	reference := paytech.GenerateReference()

	// 3. 构建网关载荷
	payload := pc.buildPayload(c, req, reference, normalizedPhone)

	// 4. 调用网关
	resp, err := pc.gateway.RequestPayment(c.Request.Context(), payload)
	if err != nil {
		// 上游给了 HTTP 响应的话，把状态码和响应体透传给调用方
		var apiErr *paytech.APIError
		if errors.As(err, &apiErr) {
			response.ErrorWithStatus(c, apiErr.StatusCode, apiErr.Body, "Payment gateway rejected the request")
			return
		}
		response.ServerError(c, err, "Payment processing failed")
		return
	}

	// 5. 网关语义失败：回显原始响应体
	if !resp.IsSuccess() {
		response.ErrorWithStatus(c, http.StatusInternalServerError, resp.RawBody, "Payment gateway error")
		return
	}

	// 6. 尽力而为的 pending 支付记录，结果不影响主流程
	if req.SessionID != "" || req.SubscriptionID != "" {
		pc.recordPendingPayment(c, req, reference)
	}

	response.JSON(c, gin.H{
		"success":     true,
		"message":     "Payment initialized successfully",
		"payment_url": resp.RedirectURL,
		"token":       resp.Token,
	})
}

// buildPayload 构建 PayTech 的支付请求载荷
func (pc *PaymentController) buildPayload(c *gin.Context, req *requests.PayWithWaveRequest, reference, normalizedPhone string) *paytech.PaymentRequest {
	itemName := req.ItemName
	if itemName == "" {
		itemName = "Gaming payment"
	}

	commandName := req.Description
	if commandName == "" {
		commandName = fmt.Sprintf("Payment for %s", req.Name)
	}

	// 透传的业务关联信息，回调时原样带回
	customField, err := json.Marshal(paytech.CustomField{
		Name:           req.Name,
		Phone:          normalizedPhone,
		SessionID:      req.SessionID,
		SubscriptionID: req.SubscriptionID,
	})
	logger.LogIf(err)

	baseURL := config.Get("app.url", "http://localhost:3000")

	return &paytech.PaymentRequest{
		ItemName:    itemName,
		ItemPrice:   req.Amount,
		Currency:    payment.CurrencyXOF,
		RefCommand:  reference,
		CommandName: commandName,
		Env:         pc.gateway.Env(),
		IpnURL:      ipnURL(c),
		SuccessURL:  baseURL + "/payment/success",
		CancelURL:   baseURL + "/payment/cancel",
		CustomField: string(customField),
	}
}

// ipnURL 用当前请求自身的 host 拼出回调地址
func ipnURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/api/payment-callback", scheme, c.Request.Host)
}

// recordPendingPayment 写入 pending 支付记录
// 归属用户通过场次/订阅反查，查不到同样按空值落库
func (pc *PaymentController) recordPendingPayment(c *gin.Context, req *requests.PayWithWaveRequest, reference string) {
	ctx := c.Request.Context()

	var userID string
	if req.SessionID != "" {
		userID = pc.sessions.GetUserID(ctx, req.SessionID)
	} else if req.SubscriptionID != "" {
		userID = pc.subscriptions.GetUserID(ctx, req.SubscriptionID)
	}

	p := &payment.Payment{
		UserID:         userID,
		Amount:         req.Amount,
		Currency:       payment.CurrencyXOF,
		PaymentMethod:  string(payment.MethodWave),
		Status:         string(payment.StatusPending),
		Reference:      reference,
		SessionID:      req.SessionID,
		SubscriptionID: req.SubscriptionID,
	}

	if err := pc.payments.Create(ctx, p); err != nil {
		logger.ErrorString("支付", "记录创建", "reference="+reference+" err="+err.Error())
	}
}

// CallbackRequest 网关 IPN 推送的通知体
type CallbackRequest struct {
	Token       string `json:"token"`
	Status      string `json:"status"`
	Reference   string `json:"reference"`
	CustomField string `json:"custom_field"`
}

// Callback 处理网关异步通知
//
// 必填字段检查之后永远回 200：网关的重推由网关自己负责，
// 这里的内部失败不向网关暴露
func (pc *PaymentController) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err, "Invalid callback body")
		return
	}

	if req.Token == "" || req.Status == "" {
		response.Abort400(c, "Missing token or status")
		return
	}

	ctx := c.Request.Context()

	// custom_field 解析失败按空处理，不中断流程
	var custom paytech.CustomField
	if req.CustomField != "" {
		if err := json.Unmarshal([]byte(req.CustomField), &custom); err != nil {
			logger.WarnString("支付", "回调", "custom_field 解析失败: "+err.Error())
			custom = paytech.CustomField{}
		}
	}

	// 有引用号则更新对应支付记录的状态
	if req.Reference != "" {
		pc.payments.UpdateStatusByReference(ctx, req.Reference, payment.StatusForGateway(req.Status))
	}

	// 支付完成时回填业务状态，场次优先，只激活一个分支
	if req.Status == string(payment.StatusCompleted) {
		if custom.SessionID != "" {
			pc.sessions.UpdateStatus(ctx, custom.SessionID, session.StatusConfirmed)
		} else if custom.SubscriptionID != "" {
			pc.subscriptions.UpdateStatus(ctx, custom.SubscriptionID, subscription.StatusActive)
		}
	}

	response.Success(c, "Callback processed")
}
