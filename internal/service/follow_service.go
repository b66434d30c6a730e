package service

import (
    "context"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

// FollowService 用户关注公司
type FollowService interface {
    // Toggle 切换关注，返回切换后的关注状态
    Toggle(ctx context.Context, userID, companyID string) (bool, error)
    IsFollowing(ctx context.Context, userID, companyID string) (bool, error)
    ListCompanies(ctx context.Context, userID string, page, pageSize int) ([]*model.Company, error)
}

type followService struct {
    followRepo  repository.FollowRepository
    companyRepo repository.CompanyRepository
}

func NewFollowService(followRepo repository.FollowRepository, companyRepo repository.CompanyRepository) FollowService {
    return &followService{followRepo: followRepo, companyRepo: companyRepo}
}

func (s *followService) Toggle(ctx context.Context, userID, companyID string) (bool, error) {
    if userID == "" {
        return false, ErrAuthRequired
    }
    exists, err := s.followRepo.Exists(ctx, userID, companyID)
    if err != nil {
        return false, err
    }
    if exists {
        if err := s.followRepo.Delete(ctx, userID, companyID); err != nil {
            return true, err
        }
        return false, nil
    }
    if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
        if repository.IsNotFound(err) {
            return false, ErrNotFound
        }
        return false, err
    }
    if err := s.followRepo.Create(ctx, userID, companyID); err != nil {
        return false, err
    }
    return true, nil
}

func (s *followService) IsFollowing(ctx context.Context, userID, companyID string) (bool, error) {
    if userID == "" {
        return false, nil
    }
    return s.followRepo.Exists(ctx, userID, companyID)
}

func (s *followService) ListCompanies(ctx context.Context, userID string, page, pageSize int) ([]*model.Company, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    if page < 1 {
        page = 1
    }
    if pageSize < 1 {
        pageSize = 20
    }
    ids, err := s.followRepo.ListCompanyIDs(ctx, userID, (page-1)*pageSize, pageSize)
    if err != nil {
        return nil, err
    }
    res := make([]*model.Company, 0, len(ids))
    for _, id := range ids {
        c, err := s.companyRepo.GetByID(ctx, id)
        if err != nil {
            if repository.IsNotFound(err) {
                continue
            }
            return nil, err
        }
        res = append(res, c)
    }
    return res, nil
}
