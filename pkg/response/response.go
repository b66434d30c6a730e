package response

import (
    "net/http"

    "github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
    Code    int         `json:"code"`
    Message string      `json:"message"`
    Data    interface{} `json:"data,omitempty"`
}

// Success 请求成功
func Success(c *gin.Context, data interface{}) {
    c.JSON(http.StatusOK, Response{Code: 0, Message: "ok", Data: data})
}

// BadRequest 参数错误
func BadRequest(c *gin.Context, msg string) {
    c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Message: msg})
}

// Unauthorized 未登录
func Unauthorized(c *gin.Context, msg string) {
    c.JSON(http.StatusUnauthorized, Response{Code: http.StatusUnauthorized, Message: msg})
}

// Forbidden 无权限
func Forbidden(c *gin.Context, msg string) {
    c.JSON(http.StatusForbidden, Response{Code: http.StatusForbidden, Message: msg})
}

// NotFound 资源不存在
func NotFound(c *gin.Context, msg string) {
    c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Message: msg})
}

// Conflict 资源冲突（唯一约束等）
func Conflict(c *gin.Context, msg string) {
    c.JSON(http.StatusConflict, Response{Code: http.StatusConflict, Message: msg})
}

// InternalError 服务内部错误
func InternalError(c *gin.Context, err error) {
    c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Message: err.Error()})
}
