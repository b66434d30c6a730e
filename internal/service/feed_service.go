package service

import (
    "context"
    "errors"
    "math"
    "sort"
    "time"

    "go.uber.org/zap"

    "github.com/d60-Lab/feedback-board/internal/cache"
    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
    "github.com/d60-Lab/feedback-board/pkg/logger"
)

// 排序模式
const (
    SortRecent        = "recent"
    SortPopular       = "popular"
    SortDiscussed     = "discussed"
    SortHot           = "hot"
    SortControversial = "controversial"
)

// TypeFilterAll 不过滤类型
const TypeFilterAll = "all"

// FeedService 信息流：类型等值过滤 + 五种排序
type FeedService interface {
    Compose(ctx context.Context, typeFilter, sortMode string, limit int) ([]*model.Post, error)
}

type feedService struct {
    postRepo  repository.PostRepository
    voteRepo  repository.VoteRepository
    feedCache *cache.FeedCache // 可为 nil
    pageSize  int
    window    int
}

func NewFeedService(postRepo repository.PostRepository, voteRepo repository.VoteRepository, feedCache *cache.FeedCache, pageSize, candidateWindow int) FeedService {
    if pageSize <= 0 {
        pageSize = 20
    }
    if candidateWindow <= 0 {
        candidateWindow = 200
    }
    return &feedService{postRepo: postRepo, voteRepo: voteRepo, feedCache: feedCache, pageSize: pageSize, window: candidateWindow}
}

func (s *feedService) Compose(ctx context.Context, typeFilter, sortMode string, limit int) ([]*model.Post, error) {
    if limit <= 0 || limit > s.pageSize {
        limit = s.pageSize
    }
    if typeFilter != TypeFilterAll && typeFilter != "" && !model.ValidPostType(typeFilter) {
        return nil, errors.New("invalid type filter")
    }
    switch sortMode {
    case SortRecent, SortPopular, SortDiscussed, SortHot, SortControversial:
    default:
        // 未知模式直接拒绝，不悄悄退回 recent
        return nil, errors.New("invalid sort mode")
    }
    filter := typeFilter
    if filter == TypeFilterAll {
        filter = ""
    }

    if s.feedCache != nil {
        if posts, ok := s.feedCache.Get(ctx, typeFilter, sortMode, limit); ok {
            return posts, nil
        }
    }

    var (
        posts []*model.Post
        err   error
    )
    switch sortMode {
    case SortPopular:
        posts, err = s.postRepo.List(ctx, repository.PostQuery{Type: filter, OrderBy: "votes_count DESC, created_at DESC", Limit: limit})
    case SortDiscussed:
        posts, err = s.postRepo.List(ctx, repository.PostQuery{Type: filter, OrderBy: "comments_count DESC, created_at DESC", Limit: limit})
    case SortHot:
        posts, err = s.composeHot(ctx, filter, limit)
    case SortControversial:
        posts, err = s.composeControversial(ctx, filter, limit)
    default:
        posts, err = s.postRepo.List(ctx, repository.PostQuery{Type: filter, OrderBy: "created_at DESC", Limit: limit})
    }
    if err != nil {
        return nil, err
    }

    if s.feedCache != nil {
        if err := s.feedCache.Set(ctx, typeFilter, sortMode, limit, posts); err != nil {
            logger.Warn("feed cache set failed", zap.Error(err))
        }
    }
    return posts, nil
}

// hotScore 票数按时效衰减：score = votes / (age_hours + 2)^1.5
func hotScore(p *model.Post, now time.Time) float64 {
    age := now.Sub(p.CreatedAt).Hours()
    if age < 0 {
        age = 0
    }
    return float64(p.VotesCount) / math.Pow(age+2, 1.5)
}

func (s *feedService) composeHot(ctx context.Context, filter string, limit int) ([]*model.Post, error) {
    // 候选集取最近窗口，再在进程内按热度排序
    posts, err := s.postRepo.List(ctx, repository.PostQuery{Type: filter, OrderBy: "created_at DESC", Limit: s.window})
    if err != nil {
        return nil, err
    }
    now := time.Now()
    sort.SliceStable(posts, func(i, j int) bool {
        si, sj := hotScore(posts[i], now), hotScore(posts[j], now)
        if si != sj {
            return si > sj
        }
        return posts[i].CreatedAt.After(posts[j].CreatedAt)
    })
    if len(posts) > limit {
        posts = posts[:limit]
    }
    return posts, nil
}

// controversyScore 两个方向都有票才有争议度：总量 * min/max 接近度
func controversyScore(b repository.VoteBreakdown) float64 {
    if b.Ups == 0 || b.Downs == 0 {
        return 0
    }
    total := float64(b.Ups + b.Downs)
    lo, hi := float64(b.Ups), float64(b.Downs)
    if lo > hi {
        lo, hi = hi, lo
    }
    return total * (lo / hi)
}

func (s *feedService) composeControversial(ctx context.Context, filter string, limit int) ([]*model.Post, error) {
    posts, err := s.postRepo.List(ctx, repository.PostQuery{Type: filter, OrderBy: "created_at DESC", Limit: s.window})
    if err != nil {
        return nil, err
    }
    ids := make([]string, len(posts))
    for i, p := range posts {
        ids[i] = p.ID
    }
    breakdown, err := s.voteRepo.Breakdown(ctx, ids)
    if err != nil {
        return nil, err
    }
    sort.SliceStable(posts, func(i, j int) bool {
        si := controversyScore(breakdown[posts[i].ID])
        sj := controversyScore(breakdown[posts[j].ID])
        if si != sj {
            return si > sj
        }
        return posts[i].CreatedAt.After(posts[j].CreatedAt)
    })
    if len(posts) > limit {
        posts = posts[:limit]
    }
    return posts, nil
}
