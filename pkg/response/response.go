// Package response 提供统一的 HTTP 响应处理
package response

import (
	"net/http"

	"gamepay/pkg/logger"

	"github.com/gin-gonic/gin"
)

/* 标准响应结构
{
    "success": true,
    "message": "",  // 提示信息
    "data": {},     // 成功时返回的数据
    "error": "",    // 错误时返回的信息
}
*/

// Response 统一响应结构体
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ------------------ 🎯 成功响应系列 ------------------

// Data 响应 200 和数据
func Data(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// Success 响应 200 和提示信息
func Success(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: msg,
	})
}

// JSON 直接返回 JSON 数据
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

//  ------------------ 错误响应系列 ------------------

// Abort400 响应 400 错误
func Abort400(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Success: false,
		Message: getMsg("Invalid request parameters", msg...),
	})
}

// Abort401 响应 401 错误
func Abort401(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Response{
		Success: false,
		Message: getMsg("Authentication required", msg...),
	})
}

// Abort403 响应 403 错误
func Abort403(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusForbidden, Response{
		Success: false,
		Message: getMsg("Access denied", msg...),
	})
}

// Abort404 响应 404 错误
func Abort404(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusNotFound, Response{
		Success: false,
		Message: getMsg("Resource not found", msg...),
	})
}

// Abort500 响应 500 错误
func Abort500(c *gin.Context, msg ...string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: getMsg("Internal server error", msg...),
	})
}

// BadRequest 响应 400 错误（带错误信息）
func BadRequest(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Success: false,
		Message: getMsg("Invalid request", msg...),
		Error:   err.Error(),
	})
}

// ServerError 响应 500 错误（带错误信息）
func ServerError(c *gin.Context, err error, msg ...string) {
	logger.LogIf(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Success: false,
		Message: getMsg("Internal server error", msg...),
		Error:   err.Error(),
	})
}

// ErrorWithStatus 按指定状态码响应错误，用于透传上游网关的诊断信息
func ErrorWithStatus(c *gin.Context, status int, errBody interface{}, msg ...string) {
	c.AbortWithStatusJSON(status, Response{
		Success: false,
		Message: getMsg("Payment processing failed", msg...),
		Error:   errBody,
	})
}

// getMsg 获取消息内容
func getMsg(defaultMsg string, msg ...string) string {
	if len(msg) > 0 {
		return msg[0]
	}
	return defaultMsg
}
