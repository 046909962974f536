package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"golang.org/x/time/rate"

	"gamepay/pkg/app"
	"gamepay/pkg/limiter"
	"gamepay/pkg/logger"
	"gamepay/pkg/response"
)

const (
	// DefaultBurst 本地令牌桶的默认突发请求数量
	DefaultBurst = 100
)

// 本地令牌桶缓存，按限流键存放
var limiters sync.Map

// LimitIP 全局限流中间件，针对 IP 进行限流，计数存储在 Redis
//
// 支持的限流格式:
// - 5 reqs/second:   "5-S"
// - 10 reqs/minute:  "10-M"
// - 1000 reqs/hour:  "1000-H"
// - 2000 reqs/day:   "2000-D"
func LimitIP(limit string) gin.HandlerFunc {
	// 测试环境使用较大限制
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return func(c *gin.Context) {
		// 针对 IP 限流
		key := limiter.GetKeyIP(c)
		if ok := limitHandler(c, key, limit); !ok {
			return
		}
		c.Next()
	}
}

// limitHandler Redis 计数限流处理
func limitHandler(c *gin.Context, key string, limit string) bool {

	// 获取超额的情况
	rate, err := limiter.CheckRate(c, key, limit)
	if err != nil {
		logger.LogIf(err)
		// 降级处理：限流存储不可用时放行请求
		return true
	}

	// 设置标准的 RateLimit 响应头
	c.Header("X-RateLimit-Limit", cast.ToString(rate.Limit))
	c.Header("X-RateLimit-Remaining", cast.ToString(rate.Remaining))
	c.Header("X-RateLimit-Reset", cast.ToString(rate.Reset))

	// 超额
	if rate.Reached {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
			Success: false,
			Message: "Too many requests, please try again later",
		})
		return false
	}

	return true
}

// LimitPerRoute 针对单个路由的限流中间件，使用进程内令牌桶
//
// 支付发起这类低频路由用本地桶即可，不必每次请求都打一次 Redis
func LimitPerRoute(limit string) gin.HandlerFunc {
	if app.IsTesting() {
		limit = "1000000-H"
	}

	return func(c *gin.Context) {
		key := limiter.GetKeyRouteWithIP(c)

		lim, err := getLimiter(key, limit)
		if err != nil {
			logger.ErrorString("限流器", "创建失败", err.Error())
			// 降级处理：允许请求通过
			c.Next()
			return
		}

		// 尝试获取令牌
		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Response{
				Success: false,
				Message: "Too many requests, please try again later",
			})
			return
		}

		// 设置 RateLimit 相关响应头
		c.Header("X-RateLimit-Limit", cast.ToString(lim.Limit()))
		c.Header("X-RateLimit-Remaining", cast.ToString(lim.Tokens()))
		c.Header("X-RateLimit-Reset", cast.ToString(time.Now().Add(time.Second).Unix()))

		c.Next()
	}
}

// getLimiter 获取或创建本地令牌桶
func getLimiter(key string, limit string) (*rate.Limiter, error) {
	// 尝试从缓存获取限流器
	if lim, exists := limiters.Load(key); exists {
		return lim.(*rate.Limiter), nil
	}

	// 解析限流配置
	r, err := limiter.ParseLimit(limit)
	if err != nil {
		return nil, err
	}

	// 创建新的限流器，并发安全地存储
	lim := rate.NewLimiter(rate.Limit(r.Rate), DefaultBurst)
	actual, _ := limiters.LoadOrStore(key, lim)
	return actual.(*rate.Limiter), nil
}
