package repository

import (
    "context"
    "errors"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type ProfileRepository interface {
    GetByID(ctx context.Context, id string) (*model.Profile, error)
    GetByUsername(ctx context.Context, username string) (*model.Profile, error)
    GetByEmail(ctx context.Context, email string) (*model.Profile, error)
    // Update 整组覆盖可编辑字段，空串同样写入
    Update(ctx context.Context, p *model.Profile) error
}

type profileRepository struct {
    db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepository{db: db} }

func (r *profileRepository) GetByID(ctx context.Context, id string) (*model.Profile, error) {
    var p model.Profile
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
    var p model.Profile
    if err := r.db.WithContext(ctx).Where("username = ?", username).First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *profileRepository) GetByEmail(ctx context.Context, email string) (*model.Profile, error) {
    var p model.Profile
    if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *model.Profile) error {
    return r.db.WithContext(ctx).
        Model(p).
        Select("username", "full_name", "avatar_url", "bio", "updated_at").
        Updates(p).Error
}

// IsNotFound 判断是否为未找到
func IsNotFound(err error) bool { return errors.Is(err, gorm.ErrRecordNotFound) }
