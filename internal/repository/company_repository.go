package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type CompanyRepository interface {
    GetByID(ctx context.Context, id string) (*model.Company, error)
    GetBySlug(ctx context.Context, slug string) (*model.Company, error)
    List(ctx context.Context, offset, limit int) ([]*model.Company, error)
    SearchByName(ctx context.Context, q string, limit int) ([]*model.Company, error)
}

type companyRepository struct {
    db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository { return &companyRepository{db: db} }

func (r *companyRepository) GetByID(ctx context.Context, id string) (*model.Company, error) {
    var c model.Company
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *companyRepository) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
    var c model.Company
    if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
        return nil, err
    }
    return &c, nil
}

func (r *companyRepository) List(ctx context.Context, offset, limit int) ([]*model.Company, error) {
    var res []*model.Company
    err := r.db.WithContext(ctx).
        Order("created_at DESC").
        Offset(offset).Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *companyRepository) SearchByName(ctx context.Context, q string, limit int) ([]*model.Company, error) {
    var res []*model.Company
    err := r.db.WithContext(ctx).
        Where("name LIKE ?", "%"+q+"%").
        Order("name").
        Limit(limit).
        Find(&res).Error
    return res, err
}
