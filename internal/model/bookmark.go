package model

import "time"

// Bookmark 收藏关系，仅存在性
// idx_bookmark_pair = (user_id, post_id)
type Bookmark struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36);index:idx_bookmark_user;index:idx_bookmark_pair,unique;not null"`
    PostID    string    `json:"post_id" gorm:"type:varchar(36);not null;index:idx_bookmark_pair,unique"`
    CreatedAt time.Time `json:"created_at"`
}

func (Bookmark) TableName() string { return "bookmarks" }
