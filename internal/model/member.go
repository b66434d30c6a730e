package model

import "time"

// 成员角色
const (
    RoleOwner  = "owner"
    RoleAdmin  = "admin"
    RoleMember = "member"
    RoleViewer = "viewer"
)

// CompanyMember 公司成员关系
// idx_member_pair = (company_id, user_id)
type CompanyMember struct {
    ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    CompanyID string    `json:"company_id" gorm:"type:varchar(36);index:idx_member_company;index:idx_member_pair,unique;not null"`
    UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index:idx_member_pair,unique"`
    Role      string    `json:"role" gorm:"type:varchar(16);not null"`
    InvitedBy string    `json:"invited_by" gorm:"type:varchar(36)"`
    JoinedAt  time.Time `json:"joined_at"`

    Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

func (CompanyMember) TableName() string { return "company_members" }

// CanManage owner/admin 可管理成员与邀请
func (m *CompanyMember) CanManage() bool {
    return m.Role == RoleOwner || m.Role == RoleAdmin
}
