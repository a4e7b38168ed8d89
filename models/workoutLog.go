package models

type WorkoutLog struct {
	WorkoutLogID int64  `gorm:"column:workout_log_id;primary_key" json:"workout_log_id"`
	LogDate      string `gorm:"column:log_date" json:"log_date"`
	WorkoutID    int64  `gorm:"column:workout_id" json:"workout_id"`
}

// TableName sets the insert table name for this struct type
func (w *WorkoutLog) TableName() string {
	return "workout_log"
}
