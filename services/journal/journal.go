package journal

import (
	"time"

	"wolftracker/database"
	"wolftracker/enums"
	"wolftracker/models"

	"github.com/jinzhu/gorm"
)

type JournalService struct{}

// EnsureDailyLog 確保當天的 daily_log 存在，已存在不算錯誤
func (j *JournalService) EnsureDailyLog(logDate string) error {

	var dailyLogEntity models.DailyLog
	err := database.Sqlite.Where("log_date = ?", logDate).First(&dailyLogEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		dailyLogEntity = models.DailyLog{LogDate: logDate}
		return database.Sqlite.Create(&dailyLogEntity).Error
	}
	return err
}

// SaveMorningLog 只覆蓋早上的欄位，晚上的欄位不動
func (j *JournalService) SaveMorningLog(logDate, dreams, intentions string) error {

	if err := j.EnsureDailyLog(logDate); err != nil {
		return err
	}

	var dailyLogEntity models.DailyLog
	return database.Sqlite.Table(dailyLogEntity.TableName()).
		Where("log_date = ?", logDate).
		Updates(map[string]interface{}{
			"dreams":     dreams,
			"intentions": intentions,
		}).Error
}

// SaveEveningLog 只覆蓋晚上的欄位
func (j *JournalService) SaveEveningLog(logDate, review, accomplishment, mood string) error {

	if err := j.EnsureDailyLog(logDate); err != nil {
		return err
	}

	var dailyLogEntity models.DailyLog
	return database.Sqlite.Table(dailyLogEntity.TableName()).
		Where("log_date = ?", logDate).
		Updates(map[string]interface{}{
			"review_of_intentions": review,
			"accomplishment":       accomplishment,
			"mood":                 mood,
		}).Error
}

// ClearMorningFields 清掉早上的欄位
func (j *JournalService) ClearMorningFields(logDate string) error {

	var dailyLogEntity models.DailyLog
	return database.Sqlite.Table(dailyLogEntity.TableName()).
		Where("log_date = ?", logDate).
		Updates(map[string]interface{}{
			"dreams":     nil,
			"intentions": nil,
		}).Error
}

// ClearEveningData 晚上例行要重跑時呼叫：
// 先刪掉當天全部的飲食與運動紀錄，再清空晚上的文字欄位
// 整段包在 transaction 裡，不會留下清一半的狀態
func (j *JournalService) ClearEveningData(logDate string) error {

	tx := database.Sqlite.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("log_date = ?", logDate).Delete(models.NutritionLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Where("log_date = ?", logDate).Delete(models.WorkoutLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	var dailyLogEntity models.DailyLog
	if err := tx.Table(dailyLogEntity.TableName()).
		Where("log_date = ?", logDate).
		Updates(map[string]interface{}{
			"review_of_intentions": nil,
			"accomplishment":       nil,
			"mood":                 nil,
		}).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// GetIntentions 取得某天的 intentions，沒有紀錄回空字串
func (j *JournalService) GetIntentions(logDate string) (string, error) {

	var dailyLogEntity models.DailyLog
	err := database.Sqlite.Where("log_date = ?", logDate).First(&dailyLogEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return dailyLogEntity.Intentions, nil
}

// GetPreviousDayIntentions 用日曆日期往前推一天，避免時區造成的偏移
func (j *JournalService) GetPreviousDayIntentions(logDate string) (string, error) {

	day, err := time.Parse(enums.DateLayout, logDate)
	if err != nil {
		return "", err
	}
	yesterday := day.AddDate(0, 0, -1).Format(enums.DateLayout)
	return j.GetIntentions(yesterday)
}
