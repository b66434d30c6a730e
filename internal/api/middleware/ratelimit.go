package middleware

import (
    "net/http"

    "github.com/gin-gonic/gin"
    "golang.org/x/time/rate"

    "github.com/d60-Lab/feedback-board/pkg/response"
)

// RateLimit 全局令牌桶限流
func RateLimit(rps float64, burst int) gin.HandlerFunc {
    limiter := rate.NewLimiter(rate.Limit(rps), burst)
    return func(c *gin.Context) {
        if !limiter.Allow() {
            c.JSON(http.StatusTooManyRequests, response.Response{
                Code:    http.StatusTooManyRequests,
                Message: "too many requests",
            })
            c.Abort()
            return
        }
        c.Next()
    }
}
