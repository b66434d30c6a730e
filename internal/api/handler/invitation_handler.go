package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// companyBySlug 路由里的公司用 slug 表示，这里解析成 ID
func (h *Handler) companyBySlug(c *gin.Context) (string, bool) {
    company, err := h.companies.GetBySlug(c.Request.Context(), c.Param("slug"))
    if err != nil {
        fail(c, err)
        return "", false
    }
    return company.ID, true
}

type inviteRequest struct {
    Email string `json:"email" binding:"required,email"`
    Role  string `json:"role" binding:"required,oneof=admin member viewer"`
}

// Invite 邀请成员
// @Summary 发出成员邀请（owner/admin）
// @Tags 成员
// @Accept json
// @Produce json
// @Param slug path string true "公司 slug"
// @Param request body inviteRequest true "邀请信息"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/companies/{slug}/invitations [post]
func (h *Handler) Invite(c *gin.Context) {
    var req inviteRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    companyID, ok := h.companyBySlug(c)
    if !ok {
        return
    }
    inv, err := h.invitations.Invite(c.Request.Context(), companyID, req.Email, req.Role, middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, inv)
}

// ListInvitations 待处理邀请
// @Summary 公司的待处理邀请（owner/admin）
// @Tags 成员
// @Param slug path string true "公司 slug"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/companies/{slug}/invitations [get]
func (h *Handler) ListInvitations(c *gin.Context) {
    companyID, ok := h.companyBySlug(c)
    if !ok {
        return
    }
    list, err := h.invitations.ListPending(c.Request.Context(), companyID, middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": list})
}

// CancelInvitation 撤销邀请
// @Summary 撤销待处理邀请
// @Tags 成员
// @Param id path string true "邀请ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/invitations/{id} [delete]
func (h *Handler) CancelInvitation(c *gin.Context) {
    if err := h.invitations.Cancel(c.Request.Context(), c.Param("id"), middleware.UserID(c)); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, nil)
}

// ResolveInvitation 按 token 查看邀请
// @Summary 查看邀请（落地页）
// @Tags 成员
// @Param token path string true "邀请 token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/invite/{token} [get]
func (h *Handler) ResolveInvitation(c *gin.Context) {
    inv, err := h.invitations.ResolveByToken(c.Request.Context(), c.Param("token"))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, inv)
}

// AcceptInvitation 接受邀请
// @Summary 接受邀请并加入公司
// @Tags 成员
// @Param token path string true "邀请 token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/invite/{token}/accept [post]
func (h *Handler) AcceptInvitation(c *gin.Context) {
    inv, err := h.invitations.ResolveByToken(c.Request.Context(), c.Param("token"))
    if err != nil {
        fail(c, err)
        return
    }
    member, err := h.invitations.Accept(c.Request.Context(), inv.ID, middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, member)
}

// DeclineInvitation 拒绝邀请
// @Summary 拒绝邀请
// @Tags 成员
// @Param token path string true "邀请 token"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/invite/{token}/decline [post]
func (h *Handler) DeclineInvitation(c *gin.Context) {
    inv, err := h.invitations.ResolveByToken(c.Request.Context(), c.Param("token"))
    if err != nil {
        fail(c, err)
        return
    }
    if err := h.invitations.Decline(c.Request.Context(), inv.ID); err != nil {
        fail(c, err)
        return
    }
    response.Success(c, nil)
}

// ListMembers 成员列表
// @Summary 公司成员（按加入时间倒序）
// @Tags 成员
// @Param slug path string true "公司 slug"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/companies/{slug}/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
    companyID, ok := h.companyBySlug(c)
    if !ok {
        return
    }
    list, err := h.invitations.ListMembers(c.Request.Context(), companyID, middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": list})
}

// RemoveMember 移除成员
// @Summary 移除成员（owner 不可移除）
// @Tags 成员
// @Param slug path string true "公司 slug"
// @Param member_id path string true "成员ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/companies/{slug}/members/{member_id} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
    companyID, ok := h.companyBySlug(c)
    if !ok {
        return
    }
    err := h.invitations.RemoveMember(c.Request.Context(), companyID, c.Param("member_id"), middleware.UserID(c))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, nil)
}
