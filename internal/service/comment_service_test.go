package service

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func TestCommentCreate(t *testing.T) {
    db := setupTestDB(t)
    author := seedProfile(t, db, "author")
    commenter := seedProfile(t, db, "commenter")
    company := seedCompany(t, db, "Acme", "acme", author.ID)
    post := seedPost(t, db, author.ID, company.ID, model.PostTypeBug, "bug")

    svc := NewCommentService(db, repository.NewPostRepository(db), repository.NewCommentRepository(db))
    ctx := context.Background()

    c, err := svc.Create(ctx, commenter.ID, post.ID, "  me too  ")
    require.NoError(t, err)
    require.Equal(t, "me too", c.Content)

    // 计数与评论行在同一事务内同步
    var p model.Post
    require.NoError(t, db.Where("id = ?", post.ID).First(&p).Error)
    require.EqualValues(t, 1, p.CommentsCount)

    _, err = svc.Create(ctx, commenter.ID, post.ID, "again")
    require.NoError(t, err)
    require.NoError(t, db.Where("id = ?", post.ID).First(&p).Error)
    require.EqualValues(t, 2, p.CommentsCount)

    list, err := svc.ListByPost(ctx, post.ID)
    require.NoError(t, err)
    require.Len(t, list, 2)
}

func TestCommentCreateErrors(t *testing.T) {
    db := setupTestDB(t)
    u := seedProfile(t, db, "u")
    svc := NewCommentService(db, repository.NewPostRepository(db), repository.NewCommentRepository(db))
    ctx := context.Background()

    _, err := svc.Create(ctx, "", "post", "hi")
    require.ErrorIs(t, err, ErrAuthRequired)

    _, err = svc.Create(ctx, u.ID, "missing-post", "hi")
    require.ErrorIs(t, err, ErrNotFound)

    _, err = svc.Create(ctx, u.ID, "missing-post", "   ")
    require.Error(t, err)
}
