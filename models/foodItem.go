package models

type FoodItem struct {
	FoodID   int64    `gorm:"column:food_id;primary_key" json:"food_id"`
	Name     string   `gorm:"column:name" json:"name"`
	Calories int      `gorm:"column:calories" json:"calories"`
	ProteinG *float64 `gorm:"column:protein_g" json:"protein_g"`
	CarbsG   *float64 `gorm:"column:carbs_g" json:"carbs_g"`
	FatG     *float64 `gorm:"column:fat_g" json:"fat_g"`
}

// TableName sets the insert table name for this struct type
func (f *FoodItem) TableName() string {
	return "food_items"
}
