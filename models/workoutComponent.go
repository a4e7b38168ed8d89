package models

type WorkoutComponent struct {
	WorkoutID  int64 `gorm:"column:workout_id" json:"workout_id"`
	ExerciseID int64 `gorm:"column:exercise_id" json:"exercise_id"`
}

// TableName sets the insert table name for this struct type
func (w *WorkoutComponent) TableName() string {
	return "workout_components"
}
