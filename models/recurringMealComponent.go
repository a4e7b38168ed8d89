package models

type RecurringMealComponent struct {
	MealID   int64   `gorm:"column:meal_id" json:"meal_id"`
	FoodID   int64   `gorm:"column:food_id" json:"food_id"`
	Quantity float64 `gorm:"column:quantity" json:"quantity"`
}

// TableName sets the insert table name for this struct type
func (r *RecurringMealComponent) TableName() string {
	return "recurring_meal_components"
}
