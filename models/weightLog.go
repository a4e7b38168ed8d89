package models

type WeightLog struct {
	WeightID  int64   `gorm:"column:weight_id;primary_key" json:"weight_id"`
	LogDate   string  `gorm:"column:log_date" json:"log_date"`
	WeightLbs float64 `gorm:"column:weight_lbs" json:"weight_lbs"`
}

// TableName sets the insert table name for this struct type
func (w *WeightLog) TableName() string {
	return "weight_log"
}
