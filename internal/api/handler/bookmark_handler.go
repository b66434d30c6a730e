package handler

import (
    "strconv"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/feedback-board/internal/api/middleware"
    "github.com/d60-Lab/feedback-board/pkg/response"
)

// ToggleBookmark 收藏/取消收藏
// @Summary 切换收藏
// @Tags 收藏
// @Param id path string true "帖子ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/posts/{id}/bookmark [post]
func (h *Handler) ToggleBookmark(c *gin.Context) {
    bookmarked, err := h.bookmarks.Toggle(c.Request.Context(), middleware.UserID(c), c.Param("id"))
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"bookmarked": bookmarked})
}

// ListBookmarks 我的收藏
// @Summary 收藏列表（按收藏时间倒序）
// @Tags 收藏
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/v1/bookmarks [get]
func (h *Handler) ListBookmarks(c *gin.Context) {
    page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
    pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
    posts, err := h.bookmarks.ListPosts(c.Request.Context(), middleware.UserID(c), page, pageSize)
    if err != nil {
        fail(c, err)
        return
    }
    response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": posts})
}
