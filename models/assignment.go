package models

type Assignment struct {
	AssignmentID int64    `gorm:"column:assignment_id;primary_key" json:"assignment_id"`
	CourseID     string   `gorm:"column:course_id" json:"course_id"`
	DueDate      string   `gorm:"column:due_date" json:"due_date"`
	TurnedIn     int      `gorm:"column:turned_in" json:"turned_in"`
	DateTurnedIn *string  `gorm:"column:date_turned_in" json:"date_turned_in"`
	WorthWeight  float64  `gorm:"column:worth_weight" json:"worth_weight"`
	Mark         *float64 `gorm:"column:mark" json:"mark"`
	Description  string   `gorm:"column:description" json:"description"`
}

// TableName sets the insert table name for this struct type
func (a *Assignment) TableName() string {
	return "assignments"
}
