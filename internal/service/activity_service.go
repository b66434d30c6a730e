package service

import (
    "context"
    "sort"
    "time"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

// 动态条目类型
const (
    ActivityVote    = "vote"
    ActivityComment = "comment"
)

// ActivityItem 他人对当前用户帖子的一次互动
type ActivityItem struct {
    ID        string         `json:"id"`
    Type      string         `json:"type"`
    VoteType  string         `json:"vote_type,omitempty"`
    User      *model.Profile `json:"user"`
    Post      *model.Post    `json:"post"`
    CreatedAt time.Time      `json:"created_at"`
}

// ActivityService 动态页：他人在我帖子上的投票和评论，合并后按时间倒序
type ActivityService interface {
    List(ctx context.Context, userID string, limit int) ([]*ActivityItem, error)
}

type activityService struct {
    voteRepo    repository.VoteRepository
    commentRepo repository.CommentRepository
    pageSize    int
}

func NewActivityService(voteRepo repository.VoteRepository, commentRepo repository.CommentRepository, pageSize int) ActivityService {
    if pageSize <= 0 {
        pageSize = 20
    }
    return &activityService{voteRepo: voteRepo, commentRepo: commentRepo, pageSize: pageSize}
}

func (s *activityService) List(ctx context.Context, userID string, limit int) ([]*ActivityItem, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    if limit <= 0 || limit > s.pageSize {
        limit = s.pageSize
    }

    votes, err := s.voteRepo.ListOnPostsOf(ctx, userID, limit)
    if err != nil {
        return nil, err
    }
    comments, err := s.commentRepo.ListOnPostsOf(ctx, userID, limit)
    if err != nil {
        return nil, err
    }

    items := make([]*ActivityItem, 0, len(votes)+len(comments))
    for _, v := range votes {
        items = append(items, &ActivityItem{
            ID:        v.ID,
            Type:      ActivityVote,
            VoteType:  v.VoteType,
            User:      v.Profile,
            Post:      v.Post,
            CreatedAt: v.CreatedAt,
        })
    }
    for _, c := range comments {
        items = append(items, &ActivityItem{
            ID:        c.ID,
            Type:      ActivityComment,
            User:      c.Profile,
            Post:      c.Post,
            CreatedAt: c.CreatedAt,
        })
    }
    sort.SliceStable(items, func(i, j int) bool {
        return items[i].CreatedAt.After(items[j].CreatedAt)
    })
    if len(items) > limit {
        items = items[:limit]
    }
    return items, nil
}
