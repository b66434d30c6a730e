package service

import (
    "context"
    "errors"
    "strings"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

// ProfileUpdateInput 资料可编辑字段，整组覆盖写入
type ProfileUpdateInput struct {
    Username  string
    FullName  string
    AvatarURL string
    Bio       string
}

type ProfileService interface {
    GetByUsername(ctx context.Context, username string) (*model.Profile, error)
    GetByID(ctx context.Context, id string) (*model.Profile, error)
    // Update 修改当前用户资料，用户名冲突返回 ErrConflict
    Update(ctx context.Context, userID string, in ProfileUpdateInput) (*model.Profile, error)
}

type profileService struct {
    profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) ProfileService {
    return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetByUsername(ctx context.Context, username string) (*model.Profile, error) {
    p, err := s.profileRepo.GetByUsername(ctx, username)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return p, nil
}

func (s *profileService) GetByID(ctx context.Context, id string) (*model.Profile, error) {
    p, err := s.profileRepo.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return p, nil
}

func (s *profileService) Update(ctx context.Context, userID string, in ProfileUpdateInput) (*model.Profile, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    username := strings.TrimSpace(in.Username)
    if username == "" {
        return nil, errors.New("username is required")
    }

    p, err := s.profileRepo.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }

    if username != p.Username {
        other, err := s.profileRepo.GetByUsername(ctx, username)
        if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, err
        }
        if other != nil && other.ID != userID {
            return nil, ErrConflict
        }
    }

    p.Username = username
    p.FullName = strings.TrimSpace(in.FullName)
    p.AvatarURL = strings.TrimSpace(in.AvatarURL)
    p.Bio = strings.TrimSpace(in.Bio)
    p.UpdatedAt = time.Now()
    if err := s.profileRepo.Update(ctx, p); err != nil {
        return nil, err
    }
    return p, nil
}
