package models

type DailyLog struct {
	LogDate            string `gorm:"column:log_date;primary_key" json:"log_date"`
	Dreams             string `gorm:"column:dreams" json:"dreams"`
	Intentions         string `gorm:"column:intentions" json:"intentions"`
	ReviewOfIntentions string `gorm:"column:review_of_intentions" json:"review_of_intentions"`
	Accomplishment     string `gorm:"column:accomplishment" json:"accomplishment"`
	Mood               string `gorm:"column:mood" json:"mood"`
}

// TableName sets the insert table name for this struct type
func (d *DailyLog) TableName() string {
	return "daily_log"
}
