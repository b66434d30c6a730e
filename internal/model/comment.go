package model

import "time"

// Comment 帖子评论
type Comment struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    PostID    string    `json:"post_id" gorm:"type:varchar(36);index:idx_comment_post;not null"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36);not null"`
    Content   string    `json:"content" gorm:"type:text;not null"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`

    Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
    Post    *Post    `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID"`
}

func (Comment) TableName() string { return "comments" }
