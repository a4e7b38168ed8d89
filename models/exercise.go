package models

type Exercise struct {
	ExerciseID     int64  `gorm:"column:exercise_id;primary_key" json:"exercise_id"`
	Name           string `gorm:"column:name" json:"name"`
	CaloriesBurned int    `gorm:"column:calories_burned" json:"calories_burned"`
}

// TableName sets the insert table name for this struct type
func (e *Exercise) TableName() string {
	return "exercises"
}
