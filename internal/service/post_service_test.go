package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func TestPostCreate(t *testing.T) {
    db := setupTestDB(t)
    author := seedProfile(t, db, "author")
    company := seedCompany(t, db, "Acme", "acme", author.ID)

    svc := NewPostService(db, repository.NewPostRepository(db), nil)
    ctx := context.Background()

    p, err := svc.Create(ctx, author.ID, CreatePostInput{
        CompanyID:   company.ID,
        Type:        model.PostTypeBug,
        Title:       "  login crashes  ",
        Description: "stack trace attached",
        Images:      []string{"a.png", "b.png"},
    })
    require.NoError(t, err)
    require.Equal(t, "login crashes", p.Title)
    require.Len(t, p.Images, 2)

    got, err := svc.GetByID(ctx, p.ID)
    require.NoError(t, err)
    require.Equal(t, p.Title, got.Title)
    require.Equal(t, []string{"a.png", "b.png"}, []string(got.Images))

    byCompany, err := svc.ListByCompany(ctx, company.ID, 10)
    require.NoError(t, err)
    require.Len(t, byCompany, 1)

    byAuthor, err := svc.ListByAuthor(ctx, author.ID, 10)
    require.NoError(t, err)
    require.Len(t, byAuthor, 1)
}

func TestPostCreateValidation(t *testing.T) {
    db := setupTestDB(t)
    author := seedProfile(t, db, "author")
    company := seedCompany(t, db, "Acme", "acme", author.ID)

    svc := NewPostService(db, repository.NewPostRepository(db), nil)
    ctx := context.Background()

    _, err := svc.Create(ctx, "", CreatePostInput{CompanyID: company.ID, Type: model.PostTypeBug, Title: "x"})
    require.ErrorIs(t, err, ErrAuthRequired)

    _, err = svc.Create(ctx, author.ID, CreatePostInput{CompanyID: company.ID, Type: "rant", Title: "x"})
    require.Error(t, err)

    _, err = svc.Create(ctx, author.ID, CreatePostInput{CompanyID: company.ID, Type: model.PostTypeBug, Title: "   "})
    require.Error(t, err)

    _, err = svc.Create(ctx, author.ID, CreatePostInput{
        CompanyID: company.ID, Type: model.PostTypeBug, Title: "x",
        Images: []string{"1", "2", "3", "4", "5"},
    })
    require.Error(t, err)

    _, err = svc.Create(ctx, author.ID, CreatePostInput{CompanyID: "missing", Type: model.PostTypeBug, Title: "x"})
    require.ErrorIs(t, err, ErrNotFound)

    _, err = svc.GetByID(ctx, "missing")
    require.ErrorIs(t, err, ErrNotFound)
}

func TestPostSearch(t *testing.T) {
    db := setupTestDB(t)
    author := seedProfile(t, db, "author")
    company := seedCompany(t, db, "Acme", "acme", author.ID)
    seedPost(t, db, author.ID, company.ID, model.PostTypeBug, "payment fails on checkout")
    seedPost(t, db, author.ID, company.ID, model.PostTypeFeature, "faster checkout flow")
    seedPost(t, db, author.ID, company.ID, model.PostTypeBug, "unrelated")

    svc := NewPostService(db, repository.NewPostRepository(db), nil)
    ctx := context.Background()

    out, err := svc.Search(ctx, "checkout", 10)
    require.NoError(t, err)
    require.Len(t, out, 2)

    // 空查询直接返回空
    out, err = svc.Search(ctx, "   ", 10)
    require.NoError(t, err)
    require.Empty(t, out)
}

func TestBookmarkToggleAndList(t *testing.T) {
    db := setupTestDB(t)
    author := seedProfile(t, db, "author")
    reader := seedProfile(t, db, "reader")
    company := seedCompany(t, db, "Acme", "acme", author.ID)
    p1 := seedPost(t, db, author.ID, company.ID, model.PostTypeBug, "first")
    p2 := seedPost(t, db, author.ID, company.ID, model.PostTypeBug, "second")

    svc := NewBookmarkService(repository.NewBookmarkRepository(db), repository.NewPostRepository(db))
    ctx := context.Background()

    on, err := svc.Toggle(ctx, reader.ID, p1.ID)
    require.NoError(t, err)
    require.True(t, on)
    time.Sleep(2 * time.Millisecond) // created_at 区分收藏先后
    on, err = svc.Toggle(ctx, reader.ID, p2.ID)
    require.NoError(t, err)
    require.True(t, on)

    list, err := svc.ListPosts(ctx, reader.ID, 1, 10)
    require.NoError(t, err)
    require.Len(t, list, 2)
    // 最近收藏在前
    require.Equal(t, p2.ID, list[0].ID)

    on, err = svc.Toggle(ctx, reader.ID, p1.ID)
    require.NoError(t, err)
    require.False(t, on)

    list, err = svc.ListPosts(ctx, reader.ID, 1, 10)
    require.NoError(t, err)
    require.Len(t, list, 1)

    _, err = svc.Toggle(ctx, reader.ID, "missing-post")
    require.ErrorIs(t, err, ErrNotFound)
    _, err = svc.Toggle(ctx, "", p1.ID)
    require.ErrorIs(t, err, ErrAuthRequired)
}
