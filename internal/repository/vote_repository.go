package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

// VoteBreakdown 单帖的方向计数
type VoteBreakdown struct {
    PostID string
    Ups    int64
    Downs  int64
}

type VoteRepository interface {
    // Breakdown 聚合一批帖子的 up/down 计数，controversial 排序使用
    Breakdown(ctx context.Context, postIDs []string) (map[string]VoteBreakdown, error)
    // ListOnPostsOf 他人在 ownerID 帖子上的最近投票，动态页使用
    ListOnPostsOf(ctx context.Context, ownerID string, limit int) ([]*model.Vote, error)
}

type voteRepository struct {
    db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository { return &voteRepository{db: db} }

func (r *voteRepository) ListOnPostsOf(ctx context.Context, ownerID string, limit int) ([]*model.Vote, error) {
    var res []*model.Vote
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Post").
        Joins("JOIN posts ON posts.id = votes.post_id").
        Where("posts.user_id = ? AND votes.user_id <> ?", ownerID, ownerID).
        Order("votes.created_at DESC").
        Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *voteRepository) Breakdown(ctx context.Context, postIDs []string) (map[string]VoteBreakdown, error) {
    out := make(map[string]VoteBreakdown, len(postIDs))
    if len(postIDs) == 0 {
        return out, nil
    }
    type row struct {
        PostID   string
        VoteType string
        Cnt      int64
    }
    var rows []row
    if err := r.db.WithContext(ctx).
        Model(&model.Vote{}).
        Select("post_id, vote_type, COUNT(*) AS cnt").
        Where("post_id IN ?", postIDs).
        Group("post_id, vote_type").
        Scan(&rows).Error; err != nil {
        return nil, err
    }
    for _, rw := range rows {
        b := out[rw.PostID]
        b.PostID = rw.PostID
        if rw.VoteType == model.VoteUp {
            b.Ups = rw.Cnt
        } else {
            b.Downs = rw.Cnt
        }
        out[rw.PostID] = b
    }
    return out, nil
}
