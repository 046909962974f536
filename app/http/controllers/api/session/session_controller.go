// Package session 游戏场次控制器
package session

import (
	"github.com/gin-gonic/gin"

	"gamepay/app/repositories"
	"gamepay/pkg/response"
)

// SessionController 场次控制器
type SessionController struct {
	sessions *repositories.SessionRepository
}

// NewSessionController 创建场次控制器
func NewSessionController(sessions *repositories.SessionRepository) *SessionController {
	return &SessionController{sessions: sessions}
}

// Index 获取全部场次，按开始时间升序
func (sc *SessionController) Index(c *gin.Context) {
	sessions, err := sc.sessions.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err, "Failed to fetch sessions")
		return
	}

	response.Data(c, sessions)
}
