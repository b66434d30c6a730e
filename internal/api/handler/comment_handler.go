package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

type createCommentRequest struct {
    Content string `json:"content" binding:"required"`
}

// CreateComment 评论
// @Summary 发表评论（计数原子 +1）
// @Tags 评论
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body createCommentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/posts/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
    var req createCommentRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    comment, err := h.comments.Create(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Content)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, comment)
}

// ListComments 评论列表
// @Summary 帖子评论（按时间倒序）
// @Tags 评论
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Router /api/v1/posts/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
    comments, err := h.comments.ListByPost(c.Request.Context(), c.Param("id"))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": comments})
}
