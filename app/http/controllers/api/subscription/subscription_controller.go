// Package subscription 订阅控制器
package subscription

import (
	"github.com/gin-gonic/gin"

	"gamepay/app/repositories"
	"gamepay/pkg/response"
)

// SubscriptionController 订阅控制器
type SubscriptionController struct {
	subscriptions *repositories.SubscriptionRepository
}

// NewSubscriptionController 创建订阅控制器
func NewSubscriptionController(subscriptions *repositories.SubscriptionRepository) *SubscriptionController {
	return &SubscriptionController{subscriptions: subscriptions}
}

// Index 获取指定用户的订阅，按创建时间降序
//
// 访问控制：令牌的 subject 必须等于路径里的用户 ID，或者令牌携带
// 管理员标记。更细的角色范围控制由账号系统演进，这里不扩大范围
func (sc *SubscriptionController) Index(c *gin.Context) {
	requestedUserID := c.Param("userId")

	tokenUserID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	if tokenUserID != requestedUserID && !isAdmin {
		response.Abort403(c, "You can only access your own subscriptions")
		return
	}

	subs, err := sc.subscriptions.ListByUser(c.Request.Context(), requestedUserID)
	if err != nil {
		response.ServerError(c, err, "Failed to fetch subscriptions")
		return
	}

	response.Data(c, subs)
}
