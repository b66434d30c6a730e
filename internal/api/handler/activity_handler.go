package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// ListActivity 动态页
// @Summary 他人对我帖子的最近投票与评论
// @Tags 用户
// @Param limit query int false "条数" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/activity [get]
func (h *Handler) ListActivity(c *gin.Context) {
    limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
    items, err := h.activity.List(c.Request.Context(), middleware.UserID(c), limit)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": items})
}
