// Package routes 注册路由
package routes

import (
	"github.com/gin-gonic/gin"

	"gamepay/app/http/controllers/api/payment"
	"gamepay/app/http/controllers/api/session"
	"gamepay/app/http/controllers/api/subscription"
	"gamepay/app/http/middlewares"
	"gamepay/app/repositories"
	"gamepay/pkg/paytech"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每 IP 30000 请求
	GlobalRateLimit = "30000-H"
	// 💳 发起支付限流：每小时每 IP 100 请求
	PayRateLimit = "100-H"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine, gateway *paytech.Service) {
	api := r.Group("/api")

	api.Use(
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	paymentRepo := repositories.NewPaymentRepository()
	sessionRepo := repositories.NewSessionRepository()
	subscriptionRepo := repositories.NewSubscriptionRepository()

	// 💳 支付相关路由
	pc := payment.NewPaymentController(gateway, paymentRepo, sessionRepo, subscriptionRepo)

	// 发起 Wave 支付
	// POST /api/pay-with-wave
	// 请求频率：每小时每 IP 最多 100 次
	api.POST("/pay-with-wave",
		middlewares.LimitPerRoute(PayRateLimit),
		pc.PayWithWave,
	)

	// 网关 IPN 回调，由 PayTech 推送，不做客户端限流
	// POST /api/payment-callback
	api.POST("/payment-callback", pc.Callback)

	// 🎮 场次列表（无需鉴权）
	// GET /api/sessions
	sc := session.NewSessionController(sessionRepo)
	api.GET("/sessions", sc.Index)

	// 📋 用户订阅列表（Bearer 令牌）
	// GET /api/subscriptions/:userId
	subc := subscription.NewSubscriptionController(subscriptionRepo)
	api.GET("/subscriptions/:userId",
		middlewares.AuthJWT(),
		subc.Index,
	)
}
