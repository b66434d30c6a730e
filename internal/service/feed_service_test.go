package service

import (
    "context"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/google/uuid"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/cache"
    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func seedFeedPost(t *testing.T, db *gorm.DB, postType, title string, votes, comments int64, age time.Duration) *model.Post {
    t.Helper()
    p := &model.Post{
        ID:            uuid.New().String(),
        UserID:        "author",
        CompanyID:     "company",
        Type:          postType,
        Title:         title,
        VotesCount:    votes,
        CommentsCount: comments,
        CreatedAt:     time.Now().Add(-age),
    }
    require.NoError(t, db.Create(p).Error)
    return p
}

func seedVoteRow(t *testing.T, db *gorm.DB, postID, voteType string, n int) {
    t.Helper()
    for i := 0; i < n; i++ {
        v := &model.Vote{
            ID:       uuid.New().String(),
            PostID:   postID,
            UserID:   uuid.New().String(),
            VoteType: voteType,
        }
        require.NoError(t, db.Create(v).Error)
    }
}

func titles(posts []*model.Post) []string {
    out := make([]string, len(posts))
    for i, p := range posts {
        out[i] = p.Title
    }
    return out
}

func newFeed(db *gorm.DB, pageSize, window int) FeedService {
    return NewFeedService(repository.NewPostRepository(db), repository.NewVoteRepository(db), nil, pageSize, window)
}

func TestFeedSortModes(t *testing.T) {
    db := setupTestDB(t)
    seedFeedPost(t, db, model.PostTypeBug, "old-popular", 50, 1, 48*time.Hour)
    seedFeedPost(t, db, model.PostTypeBug, "fresh-modest", 5, 2, time.Hour)
    seedFeedPost(t, db, model.PostTypeFeature, "newest", 0, 9, 10*time.Minute)

    feed := newFeed(db, 20, 200)
    ctx := context.Background()

    recent, err := feed.Compose(ctx, TypeFilterAll, SortRecent, 20)
    require.NoError(t, err)
    require.Equal(t, []string{"newest", "fresh-modest", "old-popular"}, titles(recent))

    popular, err := feed.Compose(ctx, TypeFilterAll, SortPopular, 20)
    require.NoError(t, err)
    require.Equal(t, []string{"old-popular", "fresh-modest", "newest"}, titles(popular))

    discussed, err := feed.Compose(ctx, TypeFilterAll, SortDiscussed, 20)
    require.NoError(t, err)
    require.Equal(t, []string{"newest", "fresh-modest", "old-popular"}, titles(discussed))

    // 热度按时效衰减：新鲜的中等票数压过两天前的高票
    hot, err := feed.Compose(ctx, TypeFilterAll, SortHot, 20)
    require.NoError(t, err)
    require.Equal(t, "fresh-modest", hot[0].Title)
}

func TestFeedTypeFilterAndLimit(t *testing.T) {
    db := setupTestDB(t)
    for i := 0; i < 5; i++ {
        seedFeedPost(t, db, model.PostTypeBug, "bug", 0, 0, time.Duration(i)*time.Minute)
    }
    seedFeedPost(t, db, model.PostTypeFeature, "feature", 0, 0, time.Minute)

    feed := newFeed(db, 3, 200)
    ctx := context.Background()

    // limit 超过页大小按页大小截断
    out, err := feed.Compose(ctx, model.PostTypeBug, SortRecent, 100)
    require.NoError(t, err)
    require.Len(t, out, 3)
    for _, p := range out {
        require.Equal(t, model.PostTypeBug, p.Type)
    }

    _, err = feed.Compose(ctx, "nonsense", SortRecent, 10)
    require.Error(t, err)

    // 未知排序模式拒绝而非退回 recent
    _, err = feed.Compose(ctx, TypeFilterAll, "newest", 10)
    require.Error(t, err)
    _, err = feed.Compose(ctx, TypeFilterAll, "", 10)
    require.Error(t, err)
}

func TestFeedControversial(t *testing.T) {
    db := setupTestDB(t)
    // 一边倒：争议度为 0
    onesided := seedFeedPost(t, db, model.PostTypeBug, "onesided", 10, 0, time.Hour)
    seedVoteRow(t, db, onesided.ID, model.VoteUp, 10)
    // 两边对半：争议度最高
    split := seedFeedPost(t, db, model.PostTypeBug, "split", 0, 0, 2*time.Hour)
    seedVoteRow(t, db, split.ID, model.VoteUp, 5)
    seedVoteRow(t, db, split.ID, model.VoteDown, 5)
    // 偏斜
    skewed := seedFeedPost(t, db, model.PostTypeBug, "skewed", 6, 0, 3*time.Hour)
    seedVoteRow(t, db, skewed.ID, model.VoteUp, 8)
    seedVoteRow(t, db, skewed.ID, model.VoteDown, 2)

    feed := newFeed(db, 20, 200)
    out, err := feed.Compose(context.Background(), TypeFilterAll, SortControversial, 20)
    require.NoError(t, err)
    require.Equal(t, []string{"split", "skewed", "onesided"}, titles(out))
}

func TestFeedControversialScore(t *testing.T) {
    require.Zero(t, controversyScore(repository.VoteBreakdown{Ups: 7, Downs: 0}))
    require.Zero(t, controversyScore(repository.VoteBreakdown{}))
    // 对半 10 票 = 10.0；方向交换不影响
    require.InDelta(t, 10.0, controversyScore(repository.VoteBreakdown{Ups: 5, Downs: 5}), 1e-9)
    require.InDelta(t,
        controversyScore(repository.VoteBreakdown{Ups: 8, Downs: 2}),
        controversyScore(repository.VoteBreakdown{Ups: 2, Downs: 8}), 1e-9)
}

func TestFeedCacheHit(t *testing.T) {
    db := setupTestDB(t)
    seedFeedPost(t, db, model.PostTypeBug, "only", 1, 0, time.Hour)

    mr := miniredis.RunT(t)
    fc := cache.NewFeedCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
    feed := NewFeedService(repository.NewPostRepository(db), repository.NewVoteRepository(db), fc, 20, 200)
    ctx := context.Background()

    first, err := feed.Compose(ctx, TypeFilterAll, SortRecent, 20)
    require.NoError(t, err)
    require.Len(t, first, 1)

    // 命中缓存：库里清掉也还能拿到同一页
    require.NoError(t, db.Exec("DELETE FROM posts").Error)
    second, err := feed.Compose(ctx, TypeFilterAll, SortRecent, 20)
    require.NoError(t, err)
    require.Len(t, second, 1)
    require.Equal(t, "only", second[0].Title)
}

func TestHotScoreDecay(t *testing.T) {
    now := time.Now()
    fresh := &model.Post{VotesCount: 10, CreatedAt: now}
    day := &model.Post{VotesCount: 10, CreatedAt: now.Add(-24 * time.Hour)}
    require.Greater(t, hotScore(fresh, now), hotScore(day, now))
    // 未来时间戳按 0 龄处理
    future := &model.Post{VotesCount: 10, CreatedAt: now.Add(time.Hour)}
    require.InDelta(t, hotScore(fresh, now), hotScore(future, now), 1e-9)
}
