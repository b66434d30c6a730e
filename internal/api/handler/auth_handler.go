package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

type registerRequest struct {
    Username string `json:"username" binding:"required,min=2,max=64"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=8"`
}

type loginRequest struct {
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required"`
}

// Register 注册
// @Summary 注册新用户
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body registerRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
    var req registerRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    profile, token, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrConflict) {
            response.Conflict(c, "username or email already registered")
            return
        }
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"profile": profile, "token": token})
}

// Login 登录
// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body loginRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    profile, token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
    if err != nil {
        if errors.Is(err, service.ErrInvalidCredentials) {
            response.Unauthorized(c, err.Error())
            return
        }
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"profile": profile, "token": token})
}
