package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// GetProfile 用户主页
// @Summary 用户资料与其帖子
// @Tags 用户
// @Param username path string true "用户名"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/profiles/{username} [get]
func (h *Handler) GetProfile(c *gin.Context) {
    profile, err := h.profiles.GetByUsername(c.Request.Context(), c.Param("username"))
    if err != nil {
        fail(c, err)
        return
    }
    posts, err := h.posts.ListByAuthor(c.Request.Context(), profile.ID, 20)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"profile": profile, "posts": posts})
}

type updateProfileRequest struct {
    Username  string `json:"username" binding:"required,max=64"`
    FullName  string `json:"full_name" binding:"max=128"`
    AvatarURL string `json:"avatar_url" binding:"omitempty,url,max=512"`
    Bio       string `json:"bio" binding:"max=2000"`
}

// UpdateProfile 更新当前用户资料
// @Summary 修改用户名、姓名、头像与简介
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body updateProfileRequest true "资料字段"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/profiles/me [put]
func (h *Handler) UpdateProfile(c *gin.Context) {
    var req updateProfileRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    profile, err := h.profiles.Update(c.Request.Context(), middleware.UserID(c), service.ProfileUpdateInput{
        Username:  req.Username,
        FullName:  req.FullName,
        AvatarURL: req.AvatarURL,
        Bio:       req.Bio,
    })
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, profile)
}
