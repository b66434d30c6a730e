package handler

import (
    "errors"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// Handler 聚合全部业务服务
type Handler struct {
    auth        service.AuthService
    posts       service.PostService
    votes       service.VoteService
    comments    service.CommentService
    companies   service.CompanyService
    invitations service.InvitationService
    bookmarks   service.BookmarkService
    follows     service.FollowService
    feed        service.FeedService
    profiles    service.ProfileService
    activity    service.ActivityService
    views       *service.ViewTracker
}

func New(
    auth service.AuthService,
    posts service.PostService,
    votes service.VoteService,
    comments service.CommentService,
    companies service.CompanyService,
    invitations service.InvitationService,
    bookmarks service.BookmarkService,
    follows service.FollowService,
    feed service.FeedService,
    profiles service.ProfileService,
    activity service.ActivityService,
    views *service.ViewTracker,
) *Handler {
    return &Handler{
        auth:        auth,
        posts:       posts,
        votes:       votes,
        comments:    comments,
        companies:   companies,
        invitations: invitations,
        bookmarks:   bookmarks,
        follows:     follows,
        feed:        feed,
        profiles:    profiles,
        activity:    activity,
        views:       views,
    }
}

// Auth 暴露给路由装配鉴权中间件
func (h *Handler) Auth() service.AuthService { return h.auth }

// fail 业务错误到 HTTP 状态码的唯一映射点
func fail(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrAuthRequired):
        response.Unauthorized(c, "authentication required")
    case errors.Is(err, service.ErrForbidden):
        response.Forbidden(c, "permission denied")
    case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrExpired):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrConflict):
        response.Conflict(c, err.Error())
    default:
        response.InternalError(c, err)
    }
}
