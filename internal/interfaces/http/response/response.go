package response

import "github.com/gin-gonic/gin"

// ErrorResponse 错误响应
// 成功路径直接返回实体或数组，由契约决定，不使用统一包装
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errCode int, message string) {
	c.JSON(httpCode, ErrorResponse{
		Code:    errCode,
		Message: message,
	})
}
