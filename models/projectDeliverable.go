package models

type ProjectDeliverable struct {
	DeliverableID int64   `gorm:"column:deliverable_id;primary_key" json:"deliverable_id"`
	ProjectID     int64   `gorm:"column:project_id" json:"project_id"`
	DueDate       string  `gorm:"column:due_date" json:"due_date"`
	Done          int     `gorm:"column:done" json:"done"`
	DateDone      *string `gorm:"column:date_done" json:"date_done"`
	Description   string  `gorm:"column:description" json:"description"`
}

// TableName sets the insert table name for this struct type
func (p *ProjectDeliverable) TableName() string {
	return "project_deliverables"
}
