package model

import (
    "database/sql/driver"
    "encoding/json"
    "fmt"
    "time"
)

// 反馈类型
const (
    PostTypeBug       = "Bug Report"
    PostTypeFeature   = "Feature Request"
    PostTypeComplaint = "Complaint"
)

// MaxPostImages 单帖最多图片数
const MaxPostImages = 4

// ImageList 图片 URL 列表，落库为 JSON 文本
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
    if len(l) == 0 {
        return nil, nil
    }
    b, err := json.Marshal(l)
    return string(b), err
}

func (l *ImageList) Scan(value interface{}) error {
    if value == nil {
        *l = nil
        return nil
    }
    switch v := value.(type) {
    case []byte:
        return json.Unmarshal(v, l)
    case string:
        return json.Unmarshal([]byte(v), l)
    default:
        return fmt.Errorf("unsupported image list type %T", value)
    }
}

// Post 反馈内容主体
// votes_count / comments_count 为冗余计数，只允许通过原子自增修改
type Post struct {
    ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
    UserID          string    `json:"user_id" gorm:"type:varchar(36);index:idx_post_author;not null"`
    CompanyID       string    `json:"company_id" gorm:"type:varchar(36);index:idx_post_company;not null"`
    Type            string    `json:"type" gorm:"type:varchar(32);index;not null"`
    Title           string    `json:"title" gorm:"type:varchar(255);not null"`
    Description     string    `json:"description" gorm:"type:text"`
    Images          ImageList `json:"images" gorm:"type:text"`
    VotesCount      int64     `json:"votes_count" gorm:"not null;default:0"`
    CommentsCount   int64     `json:"comments_count" gorm:"not null;default:0"`
    EngagementScore float64   `json:"engagement_score" gorm:"not null;default:0"`
    CreatedAt       time.Time `json:"created_at" gorm:"index"`
    UpdatedAt       time.Time `json:"updated_at"`

    Profile *Profile `json:"profile,omitempty" gorm:"foreignKey:UserID;references:ID"`
    Company *Company `json:"company,omitempty" gorm:"foreignKey:CompanyID;references:ID"`
}

func (Post) TableName() string { return "posts" }

// ValidPostType 校验反馈类型取值
func ValidPostType(t string) bool {
    return t == PostTypeBug || t == PostTypeFeature || t == PostTypeComplaint
}
