package model

import "time"

// Company 被反馈的公司主体
type Company struct {
    ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    Name        string    `json:"name" gorm:"type:varchar(128);not null"`
    Slug        string    `json:"slug" gorm:"type:varchar(128);uniqueIndex;not null"`
    Color       string    `json:"color" gorm:"type:varchar(16)"`
    LogoURL     string    `json:"logo_url" gorm:"type:varchar(512)"`
    Description string    `json:"description" gorm:"type:text"`
    Website     string    `json:"website" gorm:"type:varchar(255)"`
    Email       string    `json:"email" gorm:"type:varchar(255)"`
    OwnerID     string    `json:"owner_id" gorm:"type:varchar(36);index"`
    CreatedBy   string    `json:"created_by" gorm:"type:varchar(36)"`
    Verified    bool      `json:"verified" gorm:"default:false"`
    CreatedAt   time.Time `json:"created_at"`
}

func (Company) TableName() string { return "companies" }
