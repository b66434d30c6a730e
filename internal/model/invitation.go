package model

import "time"

// 邀请状态；pending 之外均为终态
const (
    InvitationPending  = "pending"
    InvitationAccepted = "accepted"
    InvitationDeclined = "declined"
    InvitationExpired  = "expired"
)

// CompanyInvitation 公司成员邀请，token 一次性使用
type CompanyInvitation struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    CompanyID string    `json:"company_id" gorm:"type:varchar(36);index:idx_invitation_company;not null"`
    Email     string    `json:"email" gorm:"type:varchar(255);not null;index:idx_invitation_email"`
    Role      string    `json:"role" gorm:"type:varchar(16);not null"` // owner 不可被邀请
    InvitedBy string    `json:"invited_by" gorm:"type:varchar(36);not null"`
    Token     string    `json:"token" gorm:"type:varchar(36);uniqueIndex;not null"`
    Status    string    `json:"status" gorm:"type:varchar(16);not null;index"`
    ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
    CreatedAt time.Time `json:"created_at"`

    Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
}

func (CompanyInvitation) TableName() string { return "company_invitations" }

// Expired 读时判定过期：status 不会因时间流逝自动翻转
func (i *CompanyInvitation) Expired(now time.Time) bool {
    return now.After(i.ExpiresAt)
}
