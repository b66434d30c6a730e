package service

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

// VoteService 投票引擎：单用户单帖至多一票，票数通过原子自增维护
type VoteService interface {
    // Cast 投票并返回对 votes_count 的增量。
    // 同向重复点击撤票，反向点击改票。
    Cast(ctx context.Context, userID, postID, voteType string) (int64, error)
    // Current 查询用户在该帖上的现存投票方向，没有则返回空串
    Current(ctx context.Context, userID, postID string) (string, error)
}

type voteService struct {
    db       *gorm.DB
    postRepo repository.PostRepository
}

func NewVoteService(db *gorm.DB, postRepo repository.PostRepository) VoteService {
    return &voteService{db: db, postRepo: postRepo}
}

func (s *voteService) Cast(ctx context.Context, userID, postID, voteType string) (int64, error) {
    if userID == "" {
        return 0, ErrAuthRequired
    }
    if voteType != model.VoteUp && voteType != model.VoteDown {
        return 0, errors.New("invalid vote type")
    }

    var delta int64
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var post model.Post
        if err := tx.Select("id").Where("id = ?", postID).First(&post).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrNotFound
            }
            return err
        }

        var existing model.Vote
        err := tx.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
        switch {
        case errors.Is(err, gorm.ErrRecordNotFound):
            // 首次投票
            v := model.Vote{
                ID:        uuid.New().String(),
                PostID:    postID,
                UserID:    userID,
                VoteType:  voteType,
                CreatedAt: time.Now(),
            }
            if err := tx.Create(&v).Error; err != nil {
                return err
            }
            delta = v.Delta()
        case err != nil:
            return err
        case existing.VoteType == voteType:
            // 同向重复点击 = 撤票，反向抵消原贡献
            if err := tx.Delete(&model.Vote{}, "id = ?", existing.ID).Error; err != nil {
                return err
            }
            delta = -existing.Delta()
        default:
            // 改票：贡献从 ±1 变为 ∓1
            if err := tx.Model(&model.Vote{}).
                Where("id = ?", existing.ID).
                Update("vote_type", voteType).Error; err != nil {
                return err
            }
            if voteType == model.VoteUp {
                delta = 2
            } else {
                delta = -2
            }
        }

        // 计数只走仓储入口，自增在同一事务内
        return s.postRepo.IncrementVotes(ctx, tx, postID, delta)
    })
    if err != nil {
        return 0, err
    }
    return delta, nil
}

func (s *voteService) Current(ctx context.Context, userID, postID string) (string, error) {
    if userID == "" {
        return "", nil
    }
    var v model.Vote
    err := s.db.WithContext(ctx).
        Where("post_id = ? AND user_id = ?", postID, userID).
        First(&v).Error
    if errors.Is(err, gorm.ErrRecordNotFound) {
        return "", nil
    }
    if err != nil {
        return "", err
    }
    return v.VoteType, nil
}
