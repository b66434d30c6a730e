package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

type voteRequest struct {
    VoteType string `json:"vote_type" binding:"required,oneof=up down"`
}

// CastVote 投票
// @Summary 投票（同向撤票，反向改票）
// @Tags 投票
// @Accept json
// @Produce json
// @Param id path string true "帖子ID"
// @Param request body voteRequest true "投票方向"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id}/vote [post]
func (h *Handler) CastVote(c *gin.Context) {
    var req voteRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    delta, err := h.votes.Cast(c.Request.Context(), middleware.UserID(c), c.Param("id"), req.VoteType)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"delta": delta})
}
