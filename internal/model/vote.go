package model

import "time"

// 投票方向
const (
    VoteUp   = "up"
    VoteDown = "down"
)

// Vote 单用户对单帖的投票，至多一条
// idx_vote_pair = (post_id, user_id)
type Vote struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    PostID    string    `json:"post_id" gorm:"type:varchar(36);index:idx_vote_post;index:idx_vote_pair,unique;not null"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index:idx_vote_pair,unique"`
    VoteType  string    `json:"vote_type" gorm:"type:varchar(8);not null"`
    CreatedAt time.Time `json:"created_at"`

    Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
    Post    *Post    `json:"post,omitempty" gorm:"foreignKey:PostID;references:ID"`
}

func (Vote) TableName() string { return "votes" }

// Delta 该票对 votes_count 的贡献
func (v *Vote) Delta() int64 {
    if v.VoteType == VoteUp {
        return 1
    }
    return -1
}
