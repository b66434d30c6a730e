package middleware

import (
    "errors"
    "fmt"
    "net/http"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/feedback-board/pkg/logger"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// Recovery panic 兜底：上报 sentry、记日志、返回 500
func Recovery() gin.HandlerFunc {
    return func(c *gin.Context) {
        defer func() {
            if r := recover(); r != nil {
                err, ok := r.(error)
                if !ok {
                    err = errors.New(fmt.Sprint(r))
                }
                sentry.CaptureException(err)
                logger.Error("panic recovered",
                    zap.String("path", c.Request.URL.Path),
                    zap.Any("panic", r),
                )
                c.AbortWithStatusJSON(http.StatusInternalServerError, response.Response{
                    Code:    http.StatusInternalServerError,
                    Message: "internal server error",
                })
            }
        }()
        c.Next()
    }
}
