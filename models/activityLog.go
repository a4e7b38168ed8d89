package models

import "time"

type ActivityLog struct {
	ID          int64      `gorm:"column:id;primary_key" json:"id"`
	LogName     string     `gorm:"column:log_name" json:"log_name"`
	Description string     `gorm:"column:description" json:"description"`
	Properties  string     `gorm:"column:properties" json:"properties"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (a *ActivityLog) TableName() string {
	return "activity_log"
}
