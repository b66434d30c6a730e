package service

import (
    "context"
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/require"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/internal/repository"
)

func seedVoteAt(t *testing.T, db *gorm.DB, postID, userID, voteType string, at time.Time) *model.Vote {
    t.Helper()
    v := &model.Vote{
        ID:        uuid.New().String(),
        PostID:    postID,
        UserID:    userID,
        VoteType:  voteType,
        CreatedAt: at,
    }
    require.NoError(t, db.Create(v).Error)
    return v
}

func seedCommentAt(t *testing.T, db *gorm.DB, postID, userID, content string, at time.Time) *model.Comment {
    t.Helper()
    c := &model.Comment{
        ID:        uuid.New().String(),
        PostID:    postID,
        UserID:    userID,
        Content:   content,
        CreatedAt: at,
        UpdatedAt: at,
    }
    require.NoError(t, db.Create(c).Error)
    return c
}

func TestActivityList(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    fan := seedProfile(t, db, "fan")
    critic := seedProfile(t, db, "critic")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)
    post := seedPost(t, db, owner.ID, company.ID, model.PostTypeBug, "crash on login")
    // 别人的帖子上的互动不属于 owner 的动态
    otherPost := seedPost(t, db, fan.ID, company.ID, model.PostTypeFeature, "dark mode")

    now := time.Now()
    seedVoteAt(t, db, post.ID, fan.ID, model.VoteUp, now.Add(-3*time.Minute))
    seedCommentAt(t, db, post.ID, critic.ID, "repro steps?", now.Add(-2*time.Minute))
    seedVoteAt(t, db, post.ID, critic.ID, model.VoteDown, now.Add(-1*time.Minute))
    // 自己的投票和评论不出现在动态里
    seedVoteAt(t, db, post.ID, owner.ID, model.VoteUp, now)
    seedCommentAt(t, db, post.ID, owner.ID, "fixed in next release", now)
    seedVoteAt(t, db, otherPost.ID, critic.ID, model.VoteUp, now)

    svc := NewActivityService(repository.NewVoteRepository(db), repository.NewCommentRepository(db), 20)
    ctx := context.Background()

    items, err := svc.List(ctx, owner.ID, 20)
    require.NoError(t, err)
    require.Len(t, items, 3)

    // 时间倒序，投票和评论混排
    require.Equal(t, ActivityVote, items[0].Type)
    require.Equal(t, model.VoteDown, items[0].VoteType)
    require.Equal(t, "critic", items[0].User.Username)
    require.Equal(t, post.ID, items[0].Post.ID)

    require.Equal(t, ActivityComment, items[1].Type)
    require.Equal(t, "critic", items[1].User.Username)

    require.Equal(t, ActivityVote, items[2].Type)
    require.Equal(t, "fan", items[2].User.Username)
}

func TestActivityListLimitAndAuth(t *testing.T) {
    db := setupTestDB(t)
    owner := seedProfile(t, db, "owner")
    company := seedCompany(t, db, "Acme", "acme", owner.ID)
    post := seedPost(t, db, owner.ID, company.ID, model.PostTypeBug, "crash")

    now := time.Now()
    for i := 0; i < 4; i++ {
        voter := seedProfile(t, db, "voter"+uuid.New().String()[:8])
        seedVoteAt(t, db, post.ID, voter.ID, model.VoteUp, now.Add(time.Duration(i)*time.Second))
    }

    svc := NewActivityService(repository.NewVoteRepository(db), repository.NewCommentRepository(db), 20)
    ctx := context.Background()

    items, err := svc.List(ctx, owner.ID, 2)
    require.NoError(t, err)
    require.Len(t, items, 2)
    require.True(t, !items[0].CreatedAt.Before(items[1].CreatedAt))

    _, err = svc.List(ctx, "", 10)
    require.ErrorIs(t, err, ErrAuthRequired)

    // 没有任何互动时返回空列表
    loner := seedProfile(t, db, "loner")
    items, err = svc.List(ctx, loner.ID, 10)
    require.NoError(t, err)
    require.Empty(t, items)
}
