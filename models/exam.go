package models

type Exam struct {
	ExamID      int64    `gorm:"column:exam_id;primary_key" json:"exam_id"`
	CourseID    string   `gorm:"column:course_id" json:"course_id"`
	ExamDate    string   `gorm:"column:exam_date" json:"exam_date"`
	Done        int      `gorm:"column:done" json:"done"`
	WorthWeight float64  `gorm:"column:worth_weight" json:"worth_weight"`
	Mark        *float64 `gorm:"column:mark" json:"mark"`
	Description string   `gorm:"column:description" json:"description"`
}

// TableName sets the insert table name for this struct type
func (e *Exam) TableName() string {
	return "exams"
}
