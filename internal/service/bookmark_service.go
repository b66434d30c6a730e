package service

import (
    "context"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

type BookmarkService interface {
    // Toggle 切换收藏，返回切换后的收藏状态
    Toggle(ctx context.Context, userID, postID string) (bool, error)
    ListPosts(ctx context.Context, userID string, page, pageSize int) ([]*model.Post, error)
}

type bookmarkService struct {
    bookmarkRepo repository.BookmarkRepository
    postRepo     repository.PostRepository
}

func NewBookmarkService(bookmarkRepo repository.BookmarkRepository, postRepo repository.PostRepository) BookmarkService {
    return &bookmarkService{bookmarkRepo: bookmarkRepo, postRepo: postRepo}
}

func (s *bookmarkService) Toggle(ctx context.Context, userID, postID string) (bool, error) {
    if userID == "" {
        return false, ErrAuthRequired
    }
    exists, err := s.bookmarkRepo.Exists(ctx, userID, postID)
    if err != nil {
        return false, err
    }
    if exists {
        if err := s.bookmarkRepo.Delete(ctx, userID, postID); err != nil {
            return true, err
        }
        return false, nil
    }
    ok, err := s.postRepo.Exists(ctx, postID)
    if err != nil {
        return false, err
    }
    if !ok {
        return false, ErrNotFound
    }
    if err := s.bookmarkRepo.Create(ctx, userID, postID); err != nil {
        return false, err
    }
    return true, nil
}

func (s *bookmarkService) ListPosts(ctx context.Context, userID string, page, pageSize int) ([]*model.Post, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    ids, err := s.bookmarkRepo.ListPostIDs(ctx, userID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    posts, err := s.postRepo.ListByIDs(ctx, ids)
    if err != nil {
        return nil, err
    }
    // 保持收藏时间倒序
    byID := make(map[string]*model.Post, len(posts))
    for _, p := range posts {
        byID[p.ID] = p
    }
    ordered := make([]*model.Post, 0, len(ids))
    for _, id := range ids {
        if p, ok := byID[id]; ok {
            ordered = append(ordered, p)
        }
    }
    return ordered, nil
}
