package model

import "time"

// PostView 单次浏览记录；user_id 为空表示匿名
// view_duration 仅在会话结束时写入一次
type PostView struct {
    ID           string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
    PostID       string     `json:"post_id" gorm:"type:varchar(36);index:idx_view_post;not null"`
    UserID       string     `json:"user_id" gorm:"type:varchar(36);index"`
    ViewedAt     time.Time  `json:"viewed_at" gorm:"not null"`
    ViewDuration *int64     `json:"view_duration"` // 秒；NULL 表示会话未结束
    Clicked      bool       `json:"clicked" gorm:"not null;default:false"`
}

func (PostView) TableName() string { return "post_views" }
