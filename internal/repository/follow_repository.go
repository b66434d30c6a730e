package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"
    "gorm.io/gorm/clause"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type FollowRepository interface {
    Create(ctx context.Context, userID, companyID string) error
    Delete(ctx context.Context, userID, companyID string) error
    Exists(ctx context.Context, userID, companyID string) (bool, error)
    CountByCompany(ctx context.Context, companyID string) (int64, error)
    ListCompanyIDs(ctx context.Context, userID string, offset, limit int) ([]string, error)
}

type followRepository struct {
    db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository { return &followRepository{db: db} }

func (r *followRepository) Create(ctx context.Context, userID, companyID string) error {
    f := &model.Follow{ID: uuid.New().String(), UserID: userID, CompanyID: companyID}
    // 幂等：重复关注不报错
    return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(f).Error
}

func (r *followRepository) Delete(ctx context.Context, userID, companyID string) error {
    return r.db.WithContext(ctx).
        Where("user_id = ? AND company_id = ?", userID, companyID).
        Delete(&model.Follow{}).Error
}

func (r *followRepository) Exists(ctx context.Context, userID, companyID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("user_id = ? AND company_id = ?", userID, companyID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followRepository) CountByCompany(ctx context.Context, companyID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("company_id = ?", companyID).
        Count(&cnt).Error
    return cnt, err
}

func (r *followRepository) ListCompanyIDs(ctx context.Context, userID string, offset, limit int) ([]string, error) {
    var ids []string
    err := r.db.WithContext(ctx).
        Model(&model.Follow{}).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Pluck("company_id", &ids).Error
    return ids, err
}
