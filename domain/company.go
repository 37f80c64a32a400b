package domain

import "time"

type Company struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	IndustryID uint64    `gorm:"column:industry_id" json:"industry_id"`
	UserID     uint      `gorm:"column:user_id" json:"user_id"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Industry *Industry `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}
