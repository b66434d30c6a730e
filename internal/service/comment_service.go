package service

import (
    "context"
    "errors"
    "strings"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

type CommentService interface {
    // Create 发表评论，comments_count 在同一事务内原子 +1。
    // 没有删除评论的入口，计数也没有递减路径。
    Create(ctx context.Context, userID, postID, content string) (*model.Comment, error)
    ListByPost(ctx context.Context, postID string) ([]*model.Comment, error)
}

type commentService struct {
    db          *gorm.DB
    postRepo    repository.PostRepository
    commentRepo repository.CommentRepository
}

func NewCommentService(db *gorm.DB, postRepo repository.PostRepository, commentRepo repository.CommentRepository) CommentService {
    return &commentService{db: db, postRepo: postRepo, commentRepo: commentRepo}
}

func (s *commentService) Create(ctx context.Context, userID, postID, content string) (*model.Comment, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    content = strings.TrimSpace(content)
    if content == "" {
        return nil, errors.New("comment content is required")
    }

    now := time.Now()
    c := &model.Comment{
        ID:        uuid.New().String(),
        PostID:    postID,
        UserID:    userID,
        Content:   content,
        CreatedAt: now,
        UpdatedAt: now,
    }
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.Post{}).Where("id = ?", postID).Count(&cnt).Error; err != nil {
            return err
        }
        if cnt == 0 {
            return ErrNotFound
        }
        if err := tx.Create(c).Error; err != nil {
            return err
        }
        return s.postRepo.IncrementComments(ctx, tx, postID)
    })
    if err != nil {
        return nil, err
    }
    return c, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID string) ([]*model.Comment, error) {
    return s.commentRepo.ListByPost(ctx, postID)
}
