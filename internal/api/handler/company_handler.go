package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/internal/service"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

type createCompanyRequest struct {
    Name        string `json:"name" binding:"required,max=128"`
    Color       string `json:"color"`
    Description string `json:"description"`
    Website     string `json:"website"`
    Email       string `json:"email"`
    LogoURL     string `json:"logo_url"`
}

// CreateCompany 建司
// @Summary 创建公司（创建者为唯一 owner）
// @Tags 公司
// @Accept json
// @Produce json
// @Param request body createCompanyRequest true "公司信息"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/v1/companies [post]
func (h *Handler) CreateCompany(c *gin.Context) {
    var req createCompanyRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    company, err := h.companies.Create(c.Request.Context(), middleware.UserID(c), service.CreateCompanyInput{
        Name:        req.Name,
        Color:       req.Color,
        Description: req.Description,
        Website:     req.Website,
        Email:       req.Email,
        LogoURL:     req.LogoURL,
    })
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, company)
}

// GetCompany 公司主页数据
// @Summary 公司详情（含关注数与最近帖子）
// @Tags 公司
// @Param slug path string true "公司 slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/companies/{slug} [get]
func (h *Handler) GetCompany(c *gin.Context) {
    company, err := h.companies.GetBySlug(c.Request.Context(), c.Param("slug"))
    if err != nil {
        fail(c, err)
        return
    }
    followers, err := h.companies.FollowersCount(c.Request.Context(), company.ID)
    if err != nil {
        fail(c, err)
        return
    }
    following, err := h.follows.IsFollowing(c.Request.Context(), middleware.UserID(c), company.ID)
    if err != nil {
        fail(c, err)
        return
    }
    posts, err := h.posts.ListByCompany(c.Request.Context(), company.ID, 20)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{
        "company":   company,
        "followers": followers,
        "following": following,
        "posts":     posts,
    })
}

// ListCompanies 公司列表
// @Summary 公司列表（可按名称搜索）
// @Tags 公司
// @Param q query string false "名称关键词"
// @Param limit query int false "条数" default(50)
// @Success 200 {object} response.Response
// @Router /api/v1/companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
    limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
    companies, err := h.companies.List(c.Request.Context(), c.Query("q"), limit)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"list": companies})
}

// ToggleFollow 关注/取关公司
// @Summary 切换关注
// @Tags 公司
// @Param slug path string true "公司 slug"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/companies/{slug}/follow [post]
func (h *Handler) ToggleFollow(c *gin.Context) {
    company, err := h.companies.GetBySlug(c.Request.Context(), c.Param("slug"))
    if err != nil {
        fail(c, err)
        return
    }
    following, err := h.follows.Toggle(c.Request.Context(), middleware.UserID(c), company.ID)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"following": following})
}
