package models

type NutritionLog struct {
	NutritionID int64   `gorm:"column:nutrition_id;primary_key" json:"nutrition_id"`
	LogDate     string  `gorm:"column:log_date" json:"log_date"`
	FoodID      int64   `gorm:"column:food_id" json:"food_id"`
	Quantity    float64 `gorm:"column:quantity" json:"quantity"`
}

// TableName sets the insert table name for this struct type
func (n *NutritionLog) TableName() string {
	return "nutrition_log"
}
