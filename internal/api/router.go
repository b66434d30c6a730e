package api

import (
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/feedback-board/config"
    "github.com/d60-Lab/feedback-board/internal/api/handler"
    "github.com/d60-Lab/feedback-board/internal/api/middleware"
)

// NewRouter 装配全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)
    r := gin.New()
    r.Use(gin.Logger())
    r.Use(middleware.Recovery())
    r.Use(gzip.Gzip(gzip.DefaultCompression))
    r.Use(otelgin.Middleware("feedback-board"))
    r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
    r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

    required := middleware.Auth(h.Auth())
    optional := middleware.OptionalAuth(h.Auth())

    v1 := r.Group("/api/v1")
    {
        v1.POST("/auth/register", h.Register)
        v1.POST("/auth/login", h.Login)

        v1.GET("/posts", optional, h.Feed)
        v1.POST("/posts", required, h.CreatePost)
        v1.GET("/posts/:id", optional, h.GetPost)
        v1.POST("/posts/:id/vote", required, h.CastVote)
        v1.GET("/posts/:id/comments", h.ListComments)
        v1.POST("/posts/:id/comments", required, h.CreateComment)
        v1.POST("/posts/:id/bookmark", required, h.ToggleBookmark)
        v1.POST("/posts/:id/views", optional, h.BeginView)

        v1.POST("/views/:session_id/end", optional, h.EndView)
        v1.POST("/views/:session_id/click", optional, h.RecordClick)

        v1.GET("/search", h.SearchPosts)
        v1.GET("/bookmarks", required, h.ListBookmarks)
        v1.GET("/activity", required, h.ListActivity)
        v1.GET("/profiles/:username", h.GetProfile)
        v1.PUT("/profiles/me", required, h.UpdateProfile)

        v1.GET("/companies", h.ListCompanies)
        v1.POST("/companies", required, h.CreateCompany)
        v1.GET("/companies/:slug", optional, h.GetCompany)
        v1.POST("/companies/:slug/follow", required, h.ToggleFollow)

        // 成员管理按公司 ID 操作
        v1.GET("/companies/:slug/members", required, h.ListMembers)
        v1.DELETE("/companies/:slug/members/:member_id", required, h.RemoveMember)
        v1.GET("/companies/:slug/invitations", required, h.ListInvitations)
        v1.POST("/companies/:slug/invitations", required, h.Invite)
        v1.DELETE("/invitations/:id", required, h.CancelInvitation)

        v1.GET("/invite/:token", h.ResolveInvitation)
        v1.POST("/invite/:token/accept", required, h.AcceptInvitation)
        v1.POST("/invite/:token/decline", optional, h.DeclineInvitation)
    }
    return r
}
