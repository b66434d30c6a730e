package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// CtxUserID gin context 里当前用户 ID 的键；未登录为空串
const CtxUserID = "user_id"

func bearerToken(c *gin.Context) string {
    h := c.GetHeader("Authorization")
    if h == "" {
        return ""
    }
    parts := strings.SplitN(h, " ", 2)
    if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
        return ""
    }
    return parts[1]
}

// Auth 强制登录；token 无效直接 401
func Auth(auth service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        token := bearerToken(c)
        if token == "" {
            response.Unauthorized(c, "authentication required")
            c.Abort()
            return
        }
        userID, err := auth.ParseToken(token)
        if err != nil {
            response.Unauthorized(c, "invalid or expired token")
            c.Abort()
            return
        }
        c.Set(CtxUserID, userID)
        c.Next()
    }
}

// OptionalAuth 能解析就带上用户 ID，解析不了当匿名
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
    return func(c *gin.Context) {
        if token := bearerToken(c); token != "" {
            if userID, err := auth.ParseToken(token); err == nil {
                c.Set(CtxUserID, userID)
            }
        }
        c.Next()
    }
}

// UserID 读取当前用户 ID，匿名为空串
func UserID(c *gin.Context) string {
    return c.GetString(CtxUserID)
}
