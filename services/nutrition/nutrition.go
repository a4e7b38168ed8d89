package nutrition

import (
	"wolftracker/database"
	"wolftracker/models"
	"wolftracker/services"
	"wolftracker/services/journal"

	"github.com/jinzhu/gorm"
	gormbulk "github.com/t-tiger/gorm-bulk-insert/v2"
)

type NutritionService struct{}

// GetOrCreateFoodItem 用名稱找食物，沒有才新增
// 名稱是唯一 key，已存在的食物不會被後來不同的卡路里蓋掉
func (n *NutritionService) GetOrCreateFoodItem(name string, calories int) (int64, error) {

	var foodItemEntity models.FoodItem
	err := database.Sqlite.Where("name = ?", name).First(&foodItemEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		foodItemEntity = models.FoodItem{Name: name, Calories: calories}
		if err := database.Sqlite.Create(&foodItemEntity).Error; err != nil {
			return 0, err
		}
		return foodItemEntity.FoodID, nil
	}
	if err != nil {
		return 0, err
	}
	return foodItemEntity.FoodID, nil
}

// LogEntry 新增一筆飲食紀錄，同一個食物記兩次就是兩筆
func (n *NutritionService) LogEntry(logDate string, foodID int64, quantity float64) error {

	var journalService journal.JournalService
	if err := journalService.EnsureDailyLog(logDate); err != nil {
		return err
	}

	if quantity == 0 {
		quantity = 1
	}

	entity := models.NutritionLog{
		LogDate:  logDate,
		FoodID:   foodID,
		Quantity: quantity,
	}
	return database.Sqlite.Create(&entity).Error
}

// LogEntries 一個晚上記的多筆食物用 bulk insert 一次塞進去
func (n *NutritionService) LogEntries(logDate string, foodIDs []int64) error {

	if len(foodIDs) == 0 {
		return nil
	}

	var journalService journal.JournalService
	if err := journalService.EnsureDailyLog(logDate); err != nil {
		return err
	}

	var records []interface{}
	for _, foodID := range foodIDs {
		records = append(records, models.NutritionLog{
			LogDate:  logDate,
			FoodID:   foodID,
			Quantity: 1,
		})
	}
	return gormbulk.BulkInsert(database.Sqlite, records, 500)
}

// TotalConsumedCalories 加總當天 calories * quantity，沒有紀錄回 0
func (n *NutritionService) TotalConsumedCalories(logDate string) (int, error) {

	var total float64
	var nutritionLogEntity models.NutritionLog
	var foodItemEntity models.FoodItem
	row := database.Sqlite.Table(nutritionLogEntity.TableName()).
		Joins("join "+foodItemEntity.TableName()+" on food_items.food_id = nutrition_log.food_id").
		Where("nutrition_log.log_date = ?", logDate).
		Select("COALESCE(SUM(food_items.calories * nutrition_log.quantity), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return services.Round(total), nil
}
