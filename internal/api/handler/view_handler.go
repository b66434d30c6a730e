package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// 浏览打点接口全部尽力而为：不向调用方返回业务错误，
// 失败只记日志，绝不阻塞前端导航。

// BeginView 开始浏览会话
// @Summary 开始浏览打点（满停留阈值才计浏览）
// @Tags 打点
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{id}/views [post]
func (h *Handler) BeginView(c *gin.Context) {
    sessionID := h.views.BeginView(c.Param("id"), middleware.UserID(c))
    response.Success(c, gin.H{"session_id": sessionID})
}

// EndView 结束浏览会话
// @Summary 结束打点并写入停留时长
// @Tags 打点
// @Param session_id path string true "会话ID"
// @Success 200 {object} response.Response
// @Router /api/v1/views/{session_id}/end [post]
func (h *Handler) EndView(c *gin.Context) {
    h.views.EndView(c.Request.Context(), c.Param("session_id"))
    response.Success(c, nil)
}

// RecordClick 点击归因
// @Summary 记录点击进入详情页
// @Tags 打点
// @Param session_id path string true "会话ID"
// @Success 200 {object} response.Response
// @Router /api/v1/views/{session_id}/click [post]
func (h *Handler) RecordClick(c *gin.Context) {
    h.views.RecordClick(c.Request.Context(), c.Param("session_id"))
    response.Success(c, nil)
}
