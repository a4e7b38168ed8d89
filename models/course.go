package models

type Course struct {
	CourseID   string `gorm:"column:course_id;primary_key" json:"course_id"`
	CourseName string `gorm:"column:course_name" json:"course_name"`
	Instructor string `gorm:"column:instructor" json:"instructor"`
	Credits    int    `gorm:"column:credits" json:"credits"`
}

// TableName sets the insert table name for this struct type
func (c *Course) TableName() string {
	return "courses"
}
