package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type MemberRepository interface {
    Get(ctx context.Context, companyID, userID string) (*model.CompanyMember, error)
    GetByID(ctx context.Context, id string) (*model.CompanyMember, error)
    ListByCompany(ctx context.Context, companyID string) ([]*model.CompanyMember, error)
    Delete(ctx context.Context, id string) error
}

type memberRepository struct {
    db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository { return &memberRepository{db: db} }

func (r *memberRepository) Get(ctx context.Context, companyID, userID string) (*model.CompanyMember, error) {
    var m model.CompanyMember
    if err := r.db.WithContext(ctx).
        Where("company_id = ? AND user_id = ?", companyID, userID).
        First(&m).Error; err != nil {
        return nil, err
    }
    return &m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*model.CompanyMember, error) {
    var m model.CompanyMember
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
        return nil, err
    }
    return &m, nil
}

func (r *memberRepository) ListByCompany(ctx context.Context, companyID string) ([]*model.CompanyMember, error) {
    var res []*model.CompanyMember
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Where("company_id = ?", companyID).
        Order("joined_at DESC").
        Find(&res).Error
    return res, err
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CompanyMember{}).Error
}
