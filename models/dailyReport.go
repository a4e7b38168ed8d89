package models

import "time"

type DailyReport struct {
	ID        int64      `gorm:"column:id;primary_key" json:"id"`
	LogDate   string     `gorm:"column:log_date" json:"log_date"`
	Data      string     `gorm:"column:data" json:"data"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName sets the insert table name for this struct type
func (d *DailyReport) TableName() string {
	return "daily_reports"
}
