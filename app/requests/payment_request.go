package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// PayWithWaveRequest 发起 Wave 支付的请求体
//
// 只校验 name、phone、amount 三个必填项。amount 保持字符串：
// 历史行为是不做数值校验，畸形金额原样透传给网关处理
type PayWithWaveRequest struct {
	Name           string `json:"name" valid:"name"`
	Phone          string `json:"phone" valid:"phone"`
	Amount         string `json:"amount" valid:"amount"`
	ItemName       string `json:"item_name"`
	Description    string `json:"description"`
	SessionID      string `json:"session_id"`
	SubscriptionID string `json:"subscription_id"`
}

// ValidatePayWithWave 解析并验证支付发起请求
func ValidatePayWithWave(c *gin.Context) (*PayWithWaveRequest, error) {
	var req PayWithWaveRequest

	// 1. 首先绑定 JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	// 2. 验证规则
	rules := govalidator.MapData{
		"name":   []string{"required"},
		"phone":  []string{"required"},
		"amount": []string{"required"},
	}

	// 3. 验证消息
	messages := govalidator.MapData{
		"name": []string{
			"required:Name is required",
		},
		"phone": []string{
			"required:Phone number is required",
		},
		"amount": []string{
			"required:Amount is required",
		},
	}

	// 4. 开始验证
	if err := ValidateStruct(&req, rules, messages); err != nil {
		return nil, err
	}

	return &req, nil
}
