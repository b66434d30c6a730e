package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func TestSlugify(t *testing.T) {
    require.Equal(t, "acme-corp", Slugify("  Acme Corp  "))
    require.Equal(t, "a-b-c", Slugify("A&B/C"))
    require.Equal(t, "", Slugify("!!!"))
}

func TestCompanyCreate(t *testing.T) {
    db := setupTestDB(t)
    founder := seedProfile(t, db, "founder")

    svc := NewCompanyService(db, repository.NewCompanyRepository(db), repository.NewFollowRepository(db))
    ctx := context.Background()

    c, err := svc.Create(ctx, founder.ID, CreateCompanyInput{Name: "Acme Corp"})
    require.NoError(t, err)
    require.Equal(t, "acme-corp", c.Slug)
    require.Equal(t, founder.ID, c.OwnerID)

    // 创建者即唯一 owner 成员
    var members []model.CompanyMember
    require.NoError(t, db.Where("company_id = ?", c.ID).Find(&members).Error)
    require.Len(t, members, 1)
    require.Equal(t, model.RoleOwner, members[0].Role)
    require.Equal(t, founder.ID, members[0].UserID)

    // slug 冲突
    _, err = svc.Create(ctx, founder.ID, CreateCompanyInput{Name: "acme corp"})
    require.ErrorIs(t, err, ErrConflict)

    got, err := svc.GetBySlug(ctx, "acme-corp")
    require.NoError(t, err)
    require.Equal(t, c.ID, got.ID)

    _, err = svc.GetBySlug(ctx, "nobody")
    require.ErrorIs(t, err, ErrNotFound)

    _, err = svc.Create(ctx, "", CreateCompanyInput{Name: "X"})
    require.ErrorIs(t, err, ErrAuthRequired)
}

func TestFollowToggle(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    fan := seedProfile(t, db, "fan")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)

    followRepo := repository.NewFollowRepository(db)
    svc := NewFollowService(followRepo, repository.NewCompanyRepository(db))
    companySvc := NewCompanyService(db, repository.NewCompanyRepository(db), followRepo)
    ctx := context.Background()

    on, err := svc.Toggle(ctx, fan.ID, company.ID)
    require.NoError(t, err)
    require.True(t, on)

    following, err := svc.IsFollowing(ctx, fan.ID, company.ID)
    require.NoError(t, err)
    require.True(t, following)

    n, err := companySvc.FollowersCount(ctx, company.ID)
    require.NoError(t, err)
    require.EqualValues(t, 1, n)

    // 再次切换 = 取关
    on, err = svc.Toggle(ctx, fan.ID, company.ID)
    require.NoError(t, err)
    require.False(t, on)

    n, err = companySvc.FollowersCount(ctx, company.ID)
    require.NoError(t, err)
    require.EqualValues(t, 0, n)

    _, err = svc.Toggle(ctx, fan.ID, "missing-company")
    require.ErrorIs(t, err, ErrNotFound)
    _, err = svc.Toggle(ctx, "", company.ID)
    require.ErrorIs(t, err, ErrAuthRequired)

    // 匿名视角恒为未关注
    following, err = svc.IsFollowing(ctx, "", company.ID)
    require.NoError(t, err)
    require.False(t, following)
}

func TestFollowListCompanies(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    fan := seedProfile(t, db, "fan")
    c1 := seedCompany(t, db, "One", "one", owner.ID)
    c2 := seedCompany(t, db, "Two", "two", owner.ID)

    svc := NewFollowService(repository.NewFollowRepository(db), repository.NewCompanyRepository(db))
    ctx := context.Background()

    _, err := svc.Toggle(ctx, fan.ID, c1.ID)
    require.NoError(t, err)
    _, err = svc.Toggle(ctx, fan.ID, c2.ID)
    require.NoError(t, err)

    list, err := svc.ListCompanies(ctx, fan.ID, 1, 10)
    require.NoError(t, err)
    require.Len(t, list, 2)
}
