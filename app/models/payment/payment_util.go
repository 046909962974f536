package payment

// Method 支付方式
type Method string

const (
	MethodWave Method = "wave" // Wave 移动钱包
)

// Status 支付状态
type Status string

const (
	StatusPending   Status = "pending"   // 待支付
	StatusCompleted Status = "completed" // 支付完成
	StatusFailed    Status = "failed"    // 支付失败
)

// CurrencyXOF 西非法郎，PayTech Wave 渠道的固定币种
const CurrencyXOF = "XOF"

// IsCompleted 检查支付是否完成
func (p *Payment) IsCompleted() bool {
	return p.Status == string(StatusCompleted)
}

// IsPending 检查是否待支付
func (p *Payment) IsPending() bool {
	return p.Status == string(StatusPending)
}

// IsFailed 检查是否支付失败
func (p *Payment) IsFailed() bool {
	return p.Status == string(StatusFailed)
}

// StatusForGateway 根据网关回调的状态映射支付记录状态
// 网关返回 completed 记为完成，其余一律记为失败
func StatusForGateway(gatewayStatus string) Status {
	if gatewayStatus == string(StatusCompleted) {
		return StatusCompleted
	}
	return StatusFailed
}
