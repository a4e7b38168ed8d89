package fitness

import (
	"wolftracker/database"
	"wolftracker/models"
	"wolftracker/services/journal"

	"github.com/jinzhu/gorm"
)

type FitnessService struct{}

// GetOrCreateExercise 用名稱找運動項目，沒有才新增
func (f *FitnessService) GetOrCreateExercise(name string, caloriesBurned int) (int64, error) {

	var exerciseEntity models.Exercise
	err := database.Sqlite.Where("name = ?", name).First(&exerciseEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		exerciseEntity = models.Exercise{Name: name, CaloriesBurned: caloriesBurned}
		if err := database.Sqlite.Create(&exerciseEntity).Error; err != nil {
			return 0, err
		}
		return exerciseEntity.ExerciseID, nil
	}
	if err != nil {
		return 0, err
	}
	return exerciseEntity.ExerciseID, nil
}

// GetOrCreateWorkout 用名稱找菜單，沒有才新增
func (f *FitnessService) GetOrCreateWorkout(name string) (int64, error) {

	var workoutEntity models.Workout
	err := database.Sqlite.Where("name = ?", name).First(&workoutEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		workoutEntity = models.Workout{Name: name}
		if err := database.Sqlite.Create(&workoutEntity).Error; err != nil {
			return 0, err
		}
		return workoutEntity.WorkoutID, nil
	}
	if err != nil {
		return 0, err
	}
	return workoutEntity.WorkoutID, nil
}

// AddExerciseToWorkout 把運動項目掛到菜單底下，重複掛不算錯誤
func (f *FitnessService) AddExerciseToWorkout(workoutID, exerciseID int64) error {

	var componentEntity models.WorkoutComponent
	err := database.Sqlite.Where("workout_id = ? and exercise_id = ?", workoutID, exerciseID).
		First(&componentEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		componentEntity = models.WorkoutComponent{WorkoutID: workoutID, ExerciseID: exerciseID}
		return database.Sqlite.Create(&componentEntity).Error
	}
	return err
}

// WorkoutCalorieSum 加總菜單底下全部項目的消耗卡路里
func (f *FitnessService) WorkoutCalorieSum(workoutID int64) (int, error) {

	var total int
	var componentEntity models.WorkoutComponent
	row := database.Sqlite.Table(componentEntity.TableName()).
		Joins("join exercises on exercises.exercise_id = workout_components.exercise_id").
		Where("workout_components.workout_id = ?", workoutID).
		Select("COALESCE(SUM(exercises.calories_burned), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// LogWorkout 新增一筆當天的運動紀錄
func (f *FitnessService) LogWorkout(logDate string, workoutID int64) error {

	var journalService journal.JournalService
	if err := journalService.EnsureDailyLog(logDate); err != nil {
		return err
	}

	entity := models.WorkoutLog{LogDate: logDate, WorkoutID: workoutID}
	return database.Sqlite.Create(&entity).Error
}

// LogWeight 一天只留一筆體重，先刪後塞，整段包 transaction
func (f *FitnessService) LogWeight(logDate string, weightLbs float64) error {

	var journalService journal.JournalService
	if err := journalService.EnsureDailyLog(logDate); err != nil {
		return err
	}

	tx := database.Sqlite.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	if err := tx.Where("log_date = ?", logDate).Delete(models.WeightLog{}).Error; err != nil {
		tx.Rollback()
		return err
	}

	entity := models.WeightLog{LogDate: logDate, WeightLbs: weightLbs}
	if err := tx.Create(&entity).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// MostRecentWeight 取最近一筆體重，從來沒記過就回 nil
func (f *FitnessService) MostRecentWeight() (*models.WeightLog, error) {

	var weightLogEntity models.WeightLog
	err := database.Sqlite.Order("log_date desc").First(&weightLogEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &weightLogEntity, nil
}

// TotalWorkoutCalories 加總當天運動消耗的卡路里
// 目前只走名稱捷徑：菜單名稱跟運動項目名稱一樣才算得到
// workout_components 的完整組合有 schema 支援但這裡刻意不展開
func (f *FitnessService) TotalWorkoutCalories(logDate string) (int, error) {

	var total int
	var workoutLogEntity models.WorkoutLog
	row := database.Sqlite.Table(workoutLogEntity.TableName()).
		Joins("join workouts on workouts.workout_id = workout_log.workout_id").
		Joins("join exercises on exercises.name = workouts.name").
		Where("workout_log.log_date = ?", logDate).
		Select("COALESCE(SUM(exercises.calories_burned), 0)").
		Row()
	if err := row.Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
