package models

type Workout struct {
	WorkoutID int64  `gorm:"column:workout_id;primary_key" json:"workout_id"`
	Name      string `gorm:"column:name" json:"name"`
}

// TableName sets the insert table name for this struct type
func (w *Workout) TableName() string {
	return "workouts"
}
