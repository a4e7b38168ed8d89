package models

type ExpectedLearningOutcome struct {
	EloID             int64  `gorm:"column:elo_id;primary_key" json:"elo_id"`
	CourseID          string `gorm:"column:course_id" json:"course_id"`
	Description       string `gorm:"column:description" json:"description"`
	DescriptionVector []byte `gorm:"column:description_vector" json:"description_vector"`
}

// TableName sets the insert table name for this struct type
func (e *ExpectedLearningOutcome) TableName() string {
	return "expected_learning_outcomes"
}
