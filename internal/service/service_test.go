package service

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"

    "github.com/d60-Lab/feedback-board/internal/model"
    "github.com/d60-Lab/feedback-board/pkg/database"
)

func setupTestDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
    if err != nil {
        t.Fatalf("open db: %v", err)
    }
    // :memory: 每个连接是独立库，收敛到单连接
    if sqlDB, err := db.DB(); err == nil {
        sqlDB.SetMaxOpenConns(1)
    }
    if err := database.Migrate(db); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    return db
}

func seedProfile(t *testing.T, db *gorm.DB, username string) *model.Profile {
    t.Helper()
    p := &model.Profile{
        ID:       uuid.New().String(),
        Username: username,
        Email:    username + "@example.com",
        Password: "p",
    }
    if err := db.Create(p).Error; err != nil {
        t.Fatalf("seed profile: %v", err)
    }
    return p
}

func seedCompany(t *testing.T, db *gorm.DB, name, slug, ownerID string) *model.Company {
    t.Helper()
    c := &model.Company{ID: uuid.New().String(), Name: name, Slug: slug, OwnerID: ownerID}
    if err := db.Create(c).Error; err != nil {
        t.Fatalf("seed company: %v", err)
    }
    if ownerID != "" {
        m := &model.CompanyMember{
            ID:        uuid.New().String(),
            CompanyID: c.ID,
            UserID:    ownerID,
            Role:      model.RoleOwner,
            JoinedAt:  time.Now(),
        }
        if err := db.Create(m).Error; err != nil {
            t.Fatalf("seed owner member: %v", err)
        }
    }
    return c
}

func seedMember(t *testing.T, db *gorm.DB, companyID, userID, role string) *model.CompanyMember {
    t.Helper()
    m := &model.CompanyMember{
        ID:        uuid.New().String(),
        CompanyID: companyID,
        UserID:    userID,
        Role:      role,
        JoinedAt:  time.Now(),
    }
    if err := db.Create(m).Error; err != nil {
        t.Fatalf("seed member: %v", err)
    }
    return m
}

func seedPost(t *testing.T, db *gorm.DB, authorID, companyID, postType, title string) *model.Post {
    t.Helper()
    p := &model.Post{
        ID:        uuid.New().String(),
        UserID:    authorID,
        CompanyID: companyID,
        Type:      postType,
        Title:     title,
        CreatedAt: time.Now(),
    }
    if err := db.Create(p).Error; err != nil {
        t.Fatalf("seed post: %v", err)
    }
    return p
}

func postVotes(t *testing.T, db *gorm.DB, postID string) int64 {
    t.Helper()
    var p model.Post
    if err := db.Where("id = ?", postID).First(&p).Error; err != nil {
        t.Fatalf("reload post: %v", err)
    }
    return p.VotesCount
}
