package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

type createPostRequest struct {
    CompanyID   string   `json:"company_id" binding:"required"`
    Type        string   `json:"type" binding:"required"`
    Title       string   `json:"title" binding:"required,max=255"`
    Description string   `json:"description"`
    Images      []string `json:"images" binding:"max=4,dive,url"`
}

// CreatePost 发帖
// @Summary 发布反馈
// @Tags 帖子
// @Accept json
// @Produce json
// @Param request body createPostRequest true "帖子内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
    var req createPostRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    post, err := h.posts.Create(c.Request.Context(), middleware.UserID(c), service.CreatePostInput{
        CompanyID:   req.CompanyID,
        Type:        req.Type,
        Title:       req.Title,
        Description: req.Description,
        Images:      req.Images,
    })
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, post)
}

// GetPost 帖子详情
// @Summary 帖子详情（含作者与公司）
// @Tags 帖子
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/posts/{id} [get]
func (h *Handler) GetPost(c *gin.Context) {
    post, err := h.posts.GetByID(c.Request.Context(), c.Param("id"))
    if err != nil {
        fail(c, err)
        return
    }
    userVote, err := h.votes.Current(c.Request.Context(), middleware.UserID(c), post.ID)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"post": post, "user_vote": userVote})
}

// Feed 信息流
// @Summary 信息流（类型过滤 + 排序）
// @Tags 帖子
// @Param type query string false "类型过滤" default(all)
// @Param sort query string false "recent/popular/discussed/hot/controversial" default(recent)
// @Param limit query int false "条数" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/posts [get]
func (h *Handler) Feed(c *gin.Context) {
    typeFilter := c.DefaultQuery("type", service.TypeFilterAll)
    sortMode := c.DefaultQuery("sort", service.SortRecent)
    limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
    posts, err := h.feed.Compose(c.Request.Context(), typeFilter, sortMode, limit)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": posts})
}

// SearchPosts 搜索
// @Summary 子串搜索帖子
// @Tags 帖子
// @Param q query string true "关键词"
// @Param limit query int false "条数" default(20)
// @Success 200 {object} response.Response
// @Router /api/v1/search [get]
func (h *Handler) SearchPosts(c *gin.Context) {
    limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
    posts, err := h.posts.Search(c.Request.Context(), c.Query("q"), limit)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": posts})
}
