package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"wolftracker/database"
	"wolftracker/models"
	"wolftracker/services"
	"wolftracker/services/fitness"
	"wolftracker/services/log"
	"wolftracker/services/nutrition"
	"wolftracker/services/profile"
	"wolftracker/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

// ErrNoWeightRecorded 從來沒記過體重就要報表，直接硬停
var ErrNoWeightRecorded = errors.New("no weight entry has ever been logged")

// ErrNoProfile 還沒建立個人檔案
var ErrNoProfile = errors.New("user profile not found")

type ReportService struct {
	Errors []structs.ErrorModel
}

// Start 產生某一天的能量收支報告
// 資料都從 repository 撈，算完會把結果寫回 daily_reports
func (r *ReportService) Start(logDate string) (*structs.Report, error) {

	var logService log.LogService
	logwg := logService.LoggerInit("report")
	logwg.WithFields(logrus.Fields{"task": "report", "log_date": logDate}).Info("開始準備資料")

	var profileService profile.ProfileService
	profileEntity, err := profileService.Get()
	if err != nil {
		r.handleError(logDate, err)
		return nil, err
	}
	if profileEntity == nil {
		r.handleError(logDate, ErrNoProfile)
		return nil, ErrNoProfile
	}

	// 報表一定要有體重，不能用預設值混過去
	var fitnessService fitness.FitnessService
	weightLogEntity, err := fitnessService.MostRecentWeight()
	if err != nil {
		r.handleError(logDate, err)
		return nil, err
	}
	if weightLogEntity == nil {
		r.handleError(logDate, ErrNoWeightRecorded)
		return nil, ErrNoWeightRecorded
	}

	logwg.WithFields(logrus.Fields{"task": "report", "log_date": logDate, "weight_lbs": weightLogEntity.WeightLbs}).Info("計算攝取與消耗")

	var nutritionService nutrition.NutritionService
	consumed, err := nutritionService.TotalConsumedCalories(logDate)
	if err != nil {
		r.handleError(logDate, err)
		return nil, err
	}

	burned, err := fitnessService.TotalWorkoutCalories(logDate)
	if err != nil {
		r.handleError(logDate, err)
		return nil, err
	}

	bmr, err := CalculateBMR(*profileEntity, weightLogEntity.WeightLbs, time.Now())
	if err != nil {
		r.handleError(logDate, err)
		return nil, err
	}
	tdee := CalculateTDEE(bmr, burned)

	reportModel := structs.Report{
		Tdee:       decimal(tdee),
		Consumed:   consumed,
		Deficit:    services.Round(tdee - float64(consumed)),
		WeightLbs:  weightLogEntity.WeightLbs,
		WeightDate: weightLogEntity.LogDate,
	}

	// 算完落地，報表跟執行紀錄都留一份
	logwg.WithFields(logrus.Fields{"task": "report", "log_date": logDate, "tdee": reportModel.Tdee, "deficit": reportModel.Deficit}).Info("新增報表紀錄")
	if err := r.insertDailyReport(logDate, reportModel); err != nil {
		r.handleError(logDate, err)
		return nil, err
	}

	if err := r.insertActivityLog(logDate, true, ""); err != nil {
		fmt.Println(err.Error())
	}

	return &reportModel, nil
}

// 插入 daily_reports，同一天已經有就 update
func (r *ReportService) insertDailyReport(logDate string, reportModel structs.Report) error {

	out, err := json.Marshal(reportModel)
	if err != nil {
		return err
	}

	now := time.Now()
	var dailyReportEntity models.DailyReport
	if err = database.Sqlite.Where(models.DailyReport{LogDate: logDate}).First(&dailyReportEntity).Error; gorm.IsRecordNotFoundError(err) {

		dailyReportEntity = models.DailyReport{}
		dailyReportEntity.LogDate = logDate
		dailyReportEntity.Data = string(out)
		dailyReportEntity.CreatedAt = &now
		dailyReportEntity.UpdatedAt = &now
		if err = database.Sqlite.Create(&dailyReportEntity).Error; err != nil {
			return err
		}
	} else {
		if err != nil {
			return err
		}
		if err = database.Sqlite.Table(dailyReportEntity.TableName()).
			Where(models.DailyReport{LogDate: logDate}).
			Updates(map[string]interface{}{
				"data":       string(out),
				"updated_at": &now,
			}).Error; err != nil {
			return err
		}
	}

	return nil
}

// 紀錄 job 成功/失敗
func (r *ReportService) insertActivityLog(logDate string, result bool, message string) error {

	var activityLogJSONModel structs.ActivityLogJsonModel
	activityLogJSONModel.LogDate = logDate
	activityLogJSONModel.Result = result

	if result {
		activityLogJSONModel.Message = "ok"
	} else {
		activityLogJSONModel.Message = message
		activityLogJSONModel.Messages = r.Errors
	}

	activityLogJSON, _ := json.Marshal(activityLogJSONModel)

	insertTime := time.Now()
	var activityLogEntity models.ActivityLog
	activityLogEntity.CreatedAt = &insertTime
	activityLogEntity.UpdatedAt = &insertTime
	activityLogEntity.LogName = "cli.go.report"
	activityLogEntity.Description = "每日能量報表計算"
	activityLogEntity.Properties = string(activityLogJSON)

	if err := database.Sqlite.Create(&activityLogEntity).Error; err != nil {
		return err
	}

	return nil
}

// 取小數後兩位
func decimal(value float64) float64 {
	value, _ = strconv.ParseFloat(fmt.Sprintf("%.2f", value), 64)
	return value
}

// 錯誤處理
func (r *ReportService) handleError(logDate string, err error) {
	errorModel := structs.ErrorModel{
		LogDate:      logDate,
		ErrorMessage: err.Error(),
	}
	r.Errors = append(r.Errors, errorModel)

	if insertErr := r.insertActivityLog(logDate, false, err.Error()); insertErr != nil {
		fmt.Println(insertErr.Error())
	}
}
