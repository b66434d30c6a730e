package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func TestInviteLifecycle(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    invitee := seedProfile(t, db, "newhire")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)

    svc := NewInvitationService(db, repository.NewInvitationRepository(db), repository.NewMemberRepository(db), 7*24*time.Hour)
    ctx := context.Background()

    inv, err := svc.Invite(ctx, company.ID, "NewHire@Example.com ", model.RoleMember, owner.ID)
    require.NoError(t, err)
    require.Equal(t, model.InvitationPending, inv.Status)
    require.Equal(t, "newhire@example.com", inv.Email)
    require.NotEmpty(t, inv.Token)

    // token 可解析
    got, err := svc.ResolveByToken(ctx, inv.Token)
    require.NoError(t, err)
    require.Equal(t, inv.ID, got.ID)

    // 接受：成员落库 + 状态翻转，一个事务完成
    member, err := svc.Accept(ctx, inv.ID, invitee.ID)
    require.NoError(t, err)
    require.Equal(t, model.RoleMember, member.Role)
    require.Equal(t, company.ID, member.CompanyID)

    var reloaded model.CompanyInvitation
    require.NoError(t, db.Where("id = ?", inv.ID).First(&reloaded).Error)
    require.Equal(t, model.InvitationAccepted, reloaded.Status)

    // 二次接受是 NotFound：token 一次性
    _, err = svc.Accept(ctx, inv.ID, invitee.ID)
    require.ErrorIs(t, err, ErrNotFound)

    var cnt int64
    require.NoError(t, db.Model(&model.CompanyMember{}).Where("company_id = ? AND user_id = ?", company.ID, invitee.ID).Count(&cnt).Error)
    require.EqualValues(t, 1, cnt)
}

func TestInvitePendingUniqueness(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)

    svc := NewInvitationService(db, repository.NewInvitationRepository(db), repository.NewMemberRepository(db), time.Hour)
    ctx := context.Background()

    inv, err := svc.Invite(ctx, company.ID, "dup@example.com", model.RoleMember, owner.ID)
    require.NoError(t, err)

    // 同一 (company, email) 的 pending 至多一条
    _, err = svc.Invite(ctx, company.ID, "dup@example.com", model.RoleAdmin, owner.ID)
    require.ErrorIs(t, err, ErrConflict)

    // 拒绝后可以重新邀请
    require.NoError(t, svc.Decline(ctx, inv.ID))
    _, err = svc.Invite(ctx, company.ID, "dup@example.com", model.RoleMember, owner.ID)
    require.NoError(t, err)
}

func TestInviteExpiry(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    invitee := seedProfile(t, db, "late")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)

    svc := NewInvitationService(db, repository.NewInvitationRepository(db), repository.NewMemberRepository(db), time.Hour)
    ctx := context.Background()

    inv, err := svc.Invite(ctx, company.ID, "late@example.com", model.RoleMember, owner.ID)
    require.NoError(t, err)

    // 把过期时间拨到过去：status 仍是 pending，过期为读时判定
    require.NoError(t, db.Model(&model.CompanyInvitation{}).
        Where("id = ?", inv.ID).
        Update("expires_at", time.Now().Add(-time.Minute)).Error)

    _, err = svc.ResolveByToken(ctx, inv.Token)
    require.ErrorIs(t, err, ErrExpired)

    _, err = svc.Accept(ctx, inv.ID, invitee.ID)
    require.ErrorIs(t, err, ErrExpired)
}

func TestInviteAuthz(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    plain := seedProfile(t, db, "plain")
    outsider := seedProfile(t, db, "outsider")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)
    seedMember(t, db, company.ID, plain.ID, model.RoleMember)

    svc := NewInvitationService(db, repository.NewInvitationRepository(db), repository.NewMemberRepository(db), time.Hour)
    ctx := context.Background()

    // 非 owner/admin 不能发邀请
    _, err := svc.Invite(ctx, company.ID, "x@example.com", model.RoleMember, plain.ID)
    require.ErrorIs(t, err, ErrForbidden)
    _, err = svc.Invite(ctx, company.ID, "x@example.com", model.RoleMember, outsider.ID)
    require.ErrorIs(t, err, ErrForbidden)
    _, err = svc.Invite(ctx, company.ID, "x@example.com", model.RoleMember, "")
    require.ErrorIs(t, err, ErrAuthRequired)

    // owner 角色不可被邀请
    _, err = svc.Invite(ctx, company.ID, "x@example.com", model.RoleOwner, owner.ID)
    require.Error(t, err)

    inv, err := svc.Invite(ctx, company.ID, "x@example.com", model.RoleMember, owner.ID)
    require.NoError(t, err)

    // 无关成员不能撤销，邀请人可以
    require.ErrorIs(t, svc.Cancel(ctx, inv.ID, plain.ID), ErrForbidden)
    require.NoError(t, svc.Cancel(ctx, inv.ID, owner.ID))

    var reloaded model.CompanyInvitation
    require.NoError(t, db.Where("id = ?", inv.ID).First(&reloaded).Error)
    require.Equal(t, model.InvitationExpired, reloaded.Status)

    // 撤销后 token 不可用
    _, err = svc.ResolveByToken(ctx, inv.Token)
    require.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveMember(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    admin := seedProfile(t, db, "admin")
    plain := seedProfile(t, db, "plain")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)
    adminRow := seedMember(t, db, company.ID, admin.ID, model.RoleAdmin)
    plainRow := seedMember(t, db, company.ID, plain.ID, model.RoleMember)

    svc := NewInvitationService(db, repository.NewInvitationRepository(db), repository.NewMemberRepository(db), time.Hour)
    ctx := context.Background()

    // owner 不可被移除，无论操作者是谁
    var ownerRow model.CompanyMember
    require.NoError(t, db.Where("company_id = ? AND user_id = ?", company.ID, owner.ID).First(&ownerRow).Error)
    require.ErrorIs(t, svc.RemoveMember(ctx, company.ID, ownerRow.ID, admin.ID), ErrForbidden)
    require.ErrorIs(t, svc.RemoveMember(ctx, company.ID, ownerRow.ID, owner.ID), ErrForbidden)

    // 普通成员无权移除
    require.ErrorIs(t, svc.RemoveMember(ctx, company.ID, adminRow.ID, plain.ID), ErrForbidden)

    // admin 可移除普通成员
    require.NoError(t, svc.RemoveMember(ctx, company.ID, plainRow.ID, admin.ID))
    var cnt int64
    require.NoError(t, db.Model(&model.CompanyMember{}).Where("id = ?", plainRow.ID).Count(&cnt).Error)
    require.EqualValues(t, 0, cnt)
}
