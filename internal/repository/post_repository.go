package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
)

// PostQuery 信息流查询条件
type PostQuery struct {
    Type    string // 空串表示不过滤
    OrderBy string // SQL 排序子句
    Limit   int
}

// PostRepository 帖子仓储。IncrementVotes / IncrementComments 是冗余计数的
// 唯一合法修改入口，内部使用原子自增，并发下不丢更新；
// tx 传调用方事务句柄即在该事务内生效，传 nil 落在仓储自身连接上。
type PostRepository interface {
    Create(ctx context.Context, p *model.Post) error
    GetByID(ctx context.Context, id string) (*model.Post, error)
    Exists(ctx context.Context, id string) (bool, error)
    List(ctx context.Context, q PostQuery) ([]*model.Post, error)
    ListByIDs(ctx context.Context, ids []string) ([]*model.Post, error)
    ListByCompany(ctx context.Context, companyID string, limit int) ([]*model.Post, error)
    ListByAuthor(ctx context.Context, userID string, limit int) ([]*model.Post, error)
    Search(ctx context.Context, q string, limit int) ([]*model.Post, error)
    IncrementVotes(ctx context.Context, tx *gorm.DB, postID string, delta int64) error
    IncrementComments(ctx context.Context, tx *gorm.DB, postID string) error
    // RecalculateEngagement 由存储侧计算互动分：浏览量、平均停留、点击率加权
    RecalculateEngagement(ctx context.Context, postID string) error
}

type postRepository struct {
    db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository { return &postRepository{db: db} }

func (r *postRepository) Create(ctx context.Context, p *model.Post) error {
    return r.db.WithContext(ctx).Create(p).Error
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*model.Post, error) {
    var p model.Post
    if err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Company").
        Where("id = ?", id).
        First(&p).Error; err != nil {
        return nil, err
    }
    return &p, nil
}

func (r *postRepository) Exists(ctx context.Context, id string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", id).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *postRepository) List(ctx context.Context, q PostQuery) ([]*model.Post, error) {
    tx := r.db.WithContext(ctx).Preload("Profile").Preload("Company")
    if q.Type != "" {
        tx = tx.Where("type = ?", q.Type)
    }
    if q.OrderBy != "" {
        tx = tx.Order(q.OrderBy)
    }
    if q.Limit > 0 {
        tx = tx.Limit(q.Limit)
    }
    var res []*model.Post
    err := tx.Find(&res).Error
    return res, err
}

func (r *postRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.Post, error) {
    if len(ids) == 0 {
        return nil, nil
    }
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Company").
        Where("id IN ?", ids).
        Find(&res).Error
    return res, err
}

func (r *postRepository) ListByCompany(ctx context.Context, companyID string, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Company").
        Where("company_id = ?", companyID).
        Order("created_at DESC").
        Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) ListByAuthor(ctx context.Context, userID string, limit int) ([]*model.Post, error) {
    var res []*model.Post
    err := r.db.WithContext(ctx).
        Preload("Company").
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) Search(ctx context.Context, q string, limit int) ([]*model.Post, error) {
    var res []*model.Post
    like := "%" + q + "%"
    err := r.db.WithContext(ctx).
        Preload("Profile").
        Preload("Company").
        Where("title LIKE ? OR description LIKE ?", like, like).
        Order("created_at DESC").
        Limit(limit).
        Find(&res).Error
    return res, err
}

func (r *postRepository) IncrementVotes(ctx context.Context, tx *gorm.DB, postID string, delta int64) error {
    if tx == nil {
        tx = r.db
    }
    return tx.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", postID).
        UpdateColumn("votes_count", gorm.Expr("votes_count + ?", delta)).Error
}

func (r *postRepository) IncrementComments(ctx context.Context, tx *gorm.DB, postID string) error {
    if tx == nil {
        tx = r.db
    }
    return tx.WithContext(ctx).
        Model(&model.Post{}).
        Where("id = ?", postID).
        UpdateColumn("comments_count", gorm.Expr("comments_count + 1")).Error
}

func (r *postRepository) RecalculateEngagement(ctx context.Context, postID string) error {
    // 单条 UPDATE，公式归属存储侧：浏览数 + 平均停留(秒) + 点击数*5
    return r.db.WithContext(ctx).Exec(`
        UPDATE posts SET engagement_score =
            COALESCE((SELECT COUNT(*) FROM post_views WHERE post_views.post_id = posts.id), 0)
          + COALESCE((SELECT AVG(view_duration) FROM post_views WHERE post_views.post_id = posts.id AND view_duration IS NOT NULL), 0)
          + COALESCE((SELECT COUNT(*) FROM post_views WHERE post_views.post_id = posts.id AND clicked), 0) * 5
        WHERE posts.id = ?`, postID).Error
}
