package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type InvitationRepository interface {
    GetByID(ctx context.Context, id string) (*model.CompanyInvitation, error)
    // GetPendingByToken 只匹配 status=pending 的行
    GetPendingByToken(ctx context.Context, token string) (*model.CompanyInvitation, error)
    PendingExists(ctx context.Context, companyID, email string) (bool, error)
    ListPendingByCompany(ctx context.Context, companyID string) ([]*model.CompanyInvitation, error)
}

type invitationRepository struct {
    db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
    return &invitationRepository{db: db}
}

func (r *invitationRepository) GetByID(ctx context.Context, id string) (*model.CompanyInvitation, error) {
    var inv model.CompanyInvitation
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&inv).Error; err != nil {
        return nil, err
    }
    return &inv, nil
}

func (r *invitationRepository) GetPendingByToken(ctx context.Context, token string) (*model.CompanyInvitation, error) {
    var inv model.CompanyInvitation
    if err := r.db.WithContext(ctx).
        Preload("Company").
        Where("token = ? AND status = ?", token, model.InvitationPending).
        First(&inv).Error; err != nil {
        return nil, err
    }
    return &inv, nil
}

func (r *invitationRepository) PendingExists(ctx context.Context, companyID, email string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.CompanyInvitation{}).
        Where("company_id = ? AND email = ? AND status = ?", companyID, email, model.InvitationPending).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *invitationRepository) ListPendingByCompany(ctx context.Context, companyID string) ([]*model.CompanyInvitation, error) {
    var res []*model.CompanyInvitation
    err := r.db.WithContext(ctx).
        Where("company_id = ? AND status = ?", companyID, model.InvitationPending).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}
