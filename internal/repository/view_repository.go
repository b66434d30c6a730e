package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

type ViewRepository interface {
    Create(ctx context.Context, v *model.PostView) error
    // SetDuration 仅在 view_duration 尚未写入时生效，返回是否真正更新
    SetDuration(ctx context.Context, id string, seconds int64) (bool, error)
    // MarkClicked 幂等置位
    MarkClicked(ctx context.Context, id string) error
}

type viewRepository struct {
    db *gorm.DB
}

func NewViewRepository(db *gorm.DB) ViewRepository { return &viewRepository{db: db} }

func (r *viewRepository) Create(ctx context.Context, v *model.PostView) error {
    return r.db.WithContext(ctx).Create(v).Error
}

func (r *viewRepository) SetDuration(ctx context.Context, id string, seconds int64) (bool, error) {
    res := r.db.WithContext(ctx).
        Model(&model.PostView{}).
        Where("id = ? AND view_duration IS NULL", id).
        UpdateColumn("view_duration", seconds)
    return res.RowsAffected > 0, res.Error
}

func (r *viewRepository) MarkClicked(ctx context.Context, id string) error {
    return r.db.WithContext(ctx).
        Model(&model.PostView{}).
        Where("id = ?", id).
        UpdateColumn("clicked", true).Error
}
