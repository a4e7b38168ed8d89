package models

type LearningLog struct {
	LearningID        int64  `gorm:"column:learning_id;primary_key" json:"learning_id"`
	LogDate           string `gorm:"column:log_date" json:"log_date"`
	Description       string `gorm:"column:description" json:"description"`
	DescriptionVector []byte `gorm:"column:description_vector" json:"description_vector"`
}

// TableName sets the insert table name for this struct type
func (l *LearningLog) TableName() string {
	return "learning_log"
}
