package service

import (
    "context"
    "errors"
    "strings"
    "time"

    "github.com/google/uuid"
    "go.uber.org/zap"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/cache"
    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/pkg/logger"
)

// CreatePostInput 发帖参数
type CreatePostInput struct {
    CompanyID   string
    Type        string
    Title       string
    Description string
    Images      []string
}

type PostService interface {
    Create(ctx context.Context, userID string, in CreatePostInput) (*model.Post, error)
    GetByID(ctx context.Context, id string) (*model.Post, error)
    ListByCompany(ctx context.Context, companyID string, limit int) ([]*model.Post, error)
    ListByAuthor(ctx context.Context, userID string, limit int) ([]*model.Post, error)
    // Search 标题/描述子串匹配，不做相关度排序
    Search(ctx context.Context, q string, limit int) ([]*model.Post, error)
}

type postService struct {
    db        *gorm.DB
    postRepo  repository.PostRepository
    feedCache *cache.FeedCache // 可为 nil
}

func NewPostService(db *gorm.DB, postRepo repository.PostRepository, feedCache *cache.FeedCache) PostService {
    return &postService{db: db, postRepo: postRepo, feedCache: feedCache}
}

func (s *postService) Create(ctx context.Context, userID string, in CreatePostInput) (*model.Post, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    if !model.ValidPostType(in.Type) {
        return nil, errors.New("invalid post type")
    }
    if strings.TrimSpace(in.Title) == "" {
        return nil, errors.New("title is required")
    }
    if len(in.Images) > model.MaxPostImages {
        return nil, errors.New("too many images")
    }

    now := time.Now()
    post := &model.Post{
        ID:          uuid.New().String(),
        UserID:      userID,
        CompanyID:   in.CompanyID,
        Type:        in.Type,
        Title:       strings.TrimSpace(in.Title),
        Description: in.Description,
        Images:      in.Images,
        CreatedAt:   now,
        UpdatedAt:   now,
    }
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.Company{}).Where("id = ?", in.CompanyID).Count(&cnt).Error; err != nil {
            return err
        }
        if cnt == 0 {
            return ErrNotFound
        }
        return tx.Create(post).Error
    })
    if err != nil {
        return nil, err
    }

    if s.feedCache != nil {
        if err := s.feedCache.Invalidate(ctx); err != nil {
            logger.Warn("feed cache invalidate failed", zap.Error(err))
        }
    }
    return post, nil
}

func (s *postService) GetByID(ctx context.Context, id string) (*model.Post, error) {
    p, err := s.postRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return p, nil
}

func (s *postService) ListByCompany(ctx context.Context, companyID string, limit int) ([]*model.Post, error) {
    if limit <= 0 {
        limit = 20
    }
    return s.postRepo.ListByCompany(ctx, companyID, limit)
}

func (s *postService) ListByAuthor(ctx context.Context, userID string, limit int) ([]*model.Post, error) {
    if limit <= 0 {
        limit = 20
    }
    return s.postRepo.ListByAuthor(ctx, userID, limit)
}

func (s *postService) Search(ctx context.Context, q string, limit int) ([]*model.Post, error) {
    q = strings.TrimSpace(q)
    if q == "" {
        return nil, nil
    }
    if limit <= 0 {
        limit = 20
    }
    return s.postRepo.Search(ctx, q, limit)
}
