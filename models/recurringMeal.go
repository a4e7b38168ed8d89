package models

type RecurringMeal struct {
	MealID int64  `gorm:"column:meal_id;primary_key" json:"meal_id"`
	Name   string `gorm:"column:name" json:"name"`
}

// TableName sets the insert table name for this struct type
func (r *RecurringMeal) TableName() string {
	return "recurring_meals"
}
