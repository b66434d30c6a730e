package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type CommentRepository interface {
    ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
    // ListOnPostsOf 他人在 ownerID 帖子上的最近评论，动态页使用
    ListOnPostsOf(ctx context.Context, ownerID string, limit int) ([]*model.Comment, error)
}

type commentRepository struct {
    db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository { return &commentRepository{db: db} }

func (r *commentRepository) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
    var res []*model.Comment
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Where("post_id = ?", postID).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *commentRepository) ListOnPostsOf(ctx context.Context, ownerID string, limit int) ([]*model.Comment, error) {
    var res []*model.Comment
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Post").
        Joins("JOIN posts ON posts.id = comments.post_id").
        Where("posts.user_id = ? AND comments.user_id <> ?", ownerID, ownerID).
        Order("comments.created_at DESC").
        Limit(limit).
        Find(&res).Error
    return res, err
}
