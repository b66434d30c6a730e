package model

import "time"

// Profile 用户资料（同时承载登录凭证）
type Profile struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    Username  string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
    Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
    Password  string    `json:"-" gorm:"type:varchar(128);not null"`
    FullName  string    `json:"full_name" gorm:"type:varchar(128)"`
    AvatarURL string    `json:"avatar_url" gorm:"type:varchar(512)"`
    Bio       string    `json:"bio" gorm:"type:text"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
