package service

import (
    "context"
    "errors"
    "regexp"
    "strings"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 公司名 -> slug
func Slugify(name string) string {
    s := strings.ToLower(strings.TrimSpace(name))
    s = slugPattern.ReplaceAllString(s, "-")
    return strings.Trim(s, "-")
}

// CreateCompanyInput 建司参数
type CreateCompanyInput struct {
    Name        string
    Color       string
    Description string
    Website     string
    Email       string
    LogoURL     string
}

type CompanyService interface {
    // Create 创建公司，创建者即唯一 owner 成员
    Create(ctx context.Context, userID string, in CreateCompanyInput) (*model.Company, error)
    GetBySlug(ctx context.Context, slug string) (*model.Company, error)
    // List 按创建时间倒序；q 非空时改为名称子串匹配
    List(ctx context.Context, q string, limit int) ([]*model.Company, error)
    FollowersCount(ctx context.Context, companyID string) (int64, error)
}

type companyService struct {
    db          *gorm.DB
    companyRepo repository.CompanyRepository
    followRepo  repository.FollowRepository
}

func NewCompanyService(db *gorm.DB, companyRepo repository.CompanyRepository, followRepo repository.FollowRepository) CompanyService {
    return &companyService{db: db, companyRepo: companyRepo, followRepo: followRepo}
}

func (s *companyService) Create(ctx context.Context, userID string, in CreateCompanyInput) (*model.Company, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    name := strings.TrimSpace(in.Name)
    if name == "" {
        return nil, errors.New("company name is required")
    }
    slug := Slugify(name)
    if slug == "" {
        return nil, errors.New("company name yields empty slug")
    }

    now := time.Now()
    company := &model.Company{
        ID:          uuid.New().String(),
        Name:        name,
        Slug:        slug,
        Color:       in.Color,
        LogoURL:     in.LogoURL,
        Description: in.Description,
        Website:     in.Website,
        Email:       in.Email,
        OwnerID:     userID,
        CreatedBy:   userID,
        CreatedAt:   now,
    }
    // 公司与 owner 成员行在同一事务内写入，保证 owner 恰好一条
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.Company{}).Where("slug = ?", slug).Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrConflict
        }
        if err := tx.Create(company).Error; err != nil {
            return err
        }
        owner := &model.CompanyMember{
            ID:        uuid.New().String(),
            CompanyID: company.ID,
            UserID:    userID,
            Role:      model.RoleOwner,
            JoinedAt:  now,
        }
        return tx.Create(owner).Error
    })
    if err != nil {
        return nil, err
    }
    return company, nil
}

func (s *companyService) GetBySlug(ctx context.Context, slug string) (*model.Company, error) {
    c, err := s.companyRepo.GetBySlug(ctx, slug)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return c, nil
}

func (s *companyService) List(ctx context.Context, q string, limit int) ([]*model.Company, error) {
    if limit <= 0 {
        limit = 50
    }
    if q = strings.TrimSpace(q); q != "" {
        return s.companyRepo.SearchByName(ctx, q, limit)
    }
    return s.companyRepo.List(ctx, 0, limit)
}

func (s *companyService) FollowersCount(ctx context.Context, companyID string) (int64, error) {
    return s.followRepo.CountByCompany(ctx, companyID)
}
