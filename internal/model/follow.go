package model

import "time"

// Follow 用户关注公司
// idx_follow_pair = (user_id, company_id)
type Follow struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36);index:idx_follow_user;index:idx_follow_pair,unique;not null"`
    CompanyID string    `json:"company_id" gorm:"type:varchar(36);not null;index:idx_follow_pair,unique;index:idx_follow_company"`
    CreatedAt time.Time `json:"created_at"`
}

func (Follow) TableName() string { return "follows" }
