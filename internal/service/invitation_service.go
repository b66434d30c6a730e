package service

import (
    "context"
    "errors"
    "strings"
    "time"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

// InvitationService 邀请生命周期：pending -> accepted / declined / expired，终态不可再变
type InvitationService interface {
    Invite(ctx context.Context, companyID, email, role, inviterID string) (*model.CompanyInvitation, error)
    // ResolveByToken 读取可接受的邀请；过期为读时判定
    ResolveByToken(ctx context.Context, token string) (*model.CompanyInvitation, error)
    Accept(ctx context.Context, invitationID, userID string) (*model.CompanyMember, error)
    Decline(ctx context.Context, invitationID string) error
    // Cancel 由邀请人或公司 owner/admin 撤销，状态置为 expired
    Cancel(ctx context.Context, invitationID, actorID string) error
    ListPending(ctx context.Context, companyID, actorID string) ([]*model.CompanyInvitation, error)
    ListMembers(ctx context.Context, companyID, actorID string) ([]*model.CompanyMember, error)
    RemoveMember(ctx context.Context, companyID, memberID, actorID string) error
}

type invitationService struct {
    db      *gorm.DB
    invRepo repository.InvitationRepository
    memRepo repository.MemberRepository
    ttl     time.Duration
}

func NewInvitationService(db *gorm.DB, invRepo repository.InvitationRepository, memRepo repository.MemberRepository, ttl time.Duration) InvitationService {
    if ttl <= 0 {
        ttl = 7 * 24 * time.Hour
    }
    return &invitationService{db: db, invRepo: invRepo, memRepo: memRepo, ttl: ttl}
}

// requireManager 校验 actor 是该公司 owner/admin
func (s *invitationService) requireManager(ctx context.Context, companyID, actorID string) (*model.CompanyMember, error) {
    if actorID == "" {
        return nil, ErrAuthRequired
    }
    m, err := s.memRepo.Get(ctx, companyID, actorID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrForbidden
        }
        return nil, err
    }
    if !m.CanManage() {
        return nil, ErrForbidden
    }
    return m, nil
}

func (s *invitationService) Invite(ctx context.Context, companyID, email, role, inviterID string) (*model.CompanyInvitation, error) {
    if _, err := s.requireManager(ctx, companyID, inviterID); err != nil {
        return nil, err
    }
    if role != model.RoleAdmin && role != model.RoleMember && role != model.RoleViewer {
        return nil, errors.New("invalid invitation role")
    }
    email = strings.ToLower(strings.TrimSpace(email))

    // 快速失败；事务内还会再查一次
    if exists, err := s.invRepo.PendingExists(ctx, companyID, email); err != nil {
        return nil, err
    } else if exists {
        return nil, ErrConflict
    }

    now := time.Now()
    inv := &model.CompanyInvitation{
        ID:        uuid.New().String(),
        CompanyID: companyID,
        Email:     email,
        Role:      role,
        InvitedBy: inviterID,
        Token:     uuid.New().String(),
        Status:    model.InvitationPending,
        ExpiresAt: now.Add(s.ttl),
        CreatedAt: now,
    }
    // 事务内查重 + 插入，(company, email, pending) 至多一条
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var cnt int64
        if err := tx.Model(&model.CompanyInvitation{}).
            Where("company_id = ? AND email = ? AND status = ?", companyID, email, model.InvitationPending).
            Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrConflict
        }
        return tx.Create(inv).Error
    })
    if err != nil {
        return nil, err
    }
    return inv, nil
}

func (s *invitationService) ResolveByToken(ctx context.Context, token string) (*model.CompanyInvitation, error) {
    inv, err := s.invRepo.GetPendingByToken(ctx, token)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    if inv.Expired(time.Now()) {
        return nil, ErrExpired
    }
    return inv, nil
}

func (s *invitationService) Accept(ctx context.Context, invitationID, userID string) (*model.CompanyMember, error) {
    if userID == "" {
        return nil, ErrAuthRequired
    }
    var member *model.CompanyMember
    err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
        var inv model.CompanyInvitation
        if err := tx.Where("id = ?", invitationID).First(&inv).Error; err != nil {
            if errors.Is(err, gorm.ErrRecordNotFound) {
                return ErrNotFound
            }
            return err
        }
        if inv.Status != model.InvitationPending {
            return ErrNotFound
        }
        if inv.Expired(time.Now()) {
            return ErrExpired
        }

        var cnt int64
        if err := tx.Model(&model.CompanyMember{}).
            Where("company_id = ? AND user_id = ?", inv.CompanyID, userID).
            Count(&cnt).Error; err != nil {
            return err
        }
        if cnt > 0 {
            return ErrConflict
        }

        member = &model.CompanyMember{
            ID:        uuid.New().String(),
            CompanyID: inv.CompanyID,
            UserID:    userID,
            Role:      inv.Role,
            InvitedBy: inv.InvitedBy,
            JoinedAt:  time.Now(),
        }
        if err := tx.Create(member).Error; err != nil {
            return err
        }
        return tx.Model(&model.CompanyInvitation{}).
            Where("id = ?", inv.ID).
            Update("status", model.InvitationAccepted).Error
    })
    if err != nil {
        return nil, err
    }
    return member, nil
}

func (s *invitationService) Decline(ctx context.Context, invitationID string) error {
    return s.transition(ctx, invitationID, model.InvitationDeclined)
}

func (s *invitationService) Cancel(ctx context.Context, invitationID, actorID string) error {
    inv, err := s.invRepo.GetByID(ctx, invitationID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        return err
    }
    if actorID != inv.InvitedBy {
        if _, err := s.requireManager(ctx, inv.CompanyID, actorID); err != nil {
            return err
        }
    }
    return s.transition(ctx, invitationID, model.InvitationExpired)
}

// transition 仅允许从 pending 出发的单次状态迁移
func (s *invitationService) transition(ctx context.Context, invitationID, to string) error {
    res := s.db.WithContext(ctx).
        Model(&model.CompanyInvitation{}).
        Where("id = ? AND status = ?", invitationID, model.InvitationPending).
        Update("status", to)
    if res.Error != nil {
        return res.Error
    }
    if res.RowsAffected == 0 {
        return ErrNotFound
    }
    return nil
}

func (s *invitationService) ListPending(ctx context.Context, companyID, actorID string) ([]*model.CompanyInvitation, error) {
    if _, err := s.requireManager(ctx, companyID, actorID); err != nil {
        return nil, err
    }
    return s.invRepo.ListPendingByCompany(ctx, companyID)
}

func (s *invitationService) ListMembers(ctx context.Context, companyID, actorID string) ([]*model.CompanyMember, error) {
    if actorID == "" {
        return nil, ErrAuthRequired
    }
    if _, err := s.memRepo.Get(ctx, companyID, actorID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrForbidden
        }
        return nil, err
    }
    return s.memRepo.ListByCompany(ctx, companyID)
}

func (s *invitationService) RemoveMember(ctx context.Context, companyID, memberID, actorID string) error {
    if _, err := s.requireManager(ctx, companyID, actorID); err != nil {
        return err
    }
    target, err := s.memRepo.GetByID(ctx, memberID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrNotFound
        }
        return err
    }
    if target.CompanyID != companyID {
        return ErrNotFound
    }
    // owner 不可被移除，无论操作者是谁
    if target.Role == model.RoleOwner {
        return ErrForbidden
    }
    return s.memRepo.Delete(ctx, memberID)
}
