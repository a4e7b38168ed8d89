package database

import (
	"errors"

	"wolftracker/models"

	"github.com/jinzhu/gorm"
)

// ErrNotConnected 代表還沒呼叫 InitDatabasePool 就想建表
var ErrNotConnected = errors.New("database not connected: call InitDatabasePool before CreateTables")

// 建表語句，對應 daily_log 為主的日記結構
// sqlite 的 ALTER TABLE 不能加外鍵，所以外鍵直接寫在 CREATE TABLE 裡
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		profile_id INTEGER PRIMARY KEY,
		user_name TEXT,
		height_cm REAL NOT NULL,
		birth_date TEXT NOT NULL,
		sex_at_birth TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_log (
		log_date TEXT PRIMARY KEY,
		dreams TEXT,
		intentions TEXT,
		review_of_intentions TEXT,
		accomplishment TEXT,
		mood TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS weight_log (
		weight_id INTEGER PRIMARY KEY,
		log_date TEXT NOT NULL,
		weight_lbs REAL NOT NULL,
		FOREIGN KEY (log_date) REFERENCES daily_log (log_date) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS learning_log (
		learning_id INTEGER PRIMARY KEY,
		log_date TEXT NOT NULL,
		description TEXT NOT NULL,
		description_vector BLOB,
		FOREIGN KEY (log_date) REFERENCES daily_log (log_date) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS food_items (
		food_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		calories INTEGER NOT NULL,
		protein_g REAL,
		carbs_g REAL,
		fat_g REAL
	)`,
	`CREATE TABLE IF NOT EXISTS recurring_meals (
		meal_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS recurring_meal_components (
		meal_id INTEGER NOT NULL,
		food_id INTEGER NOT NULL,
		quantity REAL NOT NULL DEFAULT 1,
		PRIMARY KEY (meal_id, food_id),
		FOREIGN KEY (meal_id) REFERENCES recurring_meals (meal_id) ON DELETE CASCADE,
		FOREIGN KEY (food_id) REFERENCES food_items (food_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS nutrition_log (
		nutrition_id INTEGER PRIMARY KEY,
		log_date TEXT NOT NULL,
		food_id INTEGER NOT NULL,
		quantity REAL NOT NULL DEFAULT 1,
		FOREIGN KEY (log_date) REFERENCES daily_log (log_date) ON DELETE CASCADE,
		FOREIGN KEY (food_id) REFERENCES food_items (food_id)
	)`,
	`CREATE TABLE IF NOT EXISTS exercises (
		exercise_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		calories_burned INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		workout_id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS workout_components (
		workout_id INTEGER NOT NULL,
		exercise_id INTEGER NOT NULL,
		PRIMARY KEY (workout_id, exercise_id),
		FOREIGN KEY (workout_id) REFERENCES workouts (workout_id) ON DELETE CASCADE,
		FOREIGN KEY (exercise_id) REFERENCES exercises (exercise_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS workout_log (
		workout_log_id INTEGER PRIMARY KEY,
		log_date TEXT NOT NULL,
		workout_id INTEGER NOT NULL,
		FOREIGN KEY (log_date) REFERENCES daily_log (log_date) ON DELETE CASCADE,
		FOREIGN KEY (workout_id) REFERENCES workouts (workout_id)
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		course_id TEXT PRIMARY KEY,
		course_name TEXT NOT NULL,
		instructor TEXT,
		credits INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expected_learning_outcomes (
		elo_id INTEGER PRIMARY KEY,
		course_id TEXT NOT NULL,
		description TEXT NOT NULL,
		description_vector BLOB,
		FOREIGN KEY (course_id) REFERENCES courses (course_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS assignments (
		assignment_id INTEGER PRIMARY KEY,
		course_id TEXT NOT NULL,
		due_date TEXT NOT NULL,
		turned_in INTEGER NOT NULL DEFAULT 0,
		date_turned_in TEXT,
		worth_weight REAL NOT NULL,
		mark REAL,
		description TEXT NOT NULL,
		FOREIGN KEY (course_id) REFERENCES courses (course_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS exams (
		exam_id INTEGER PRIMARY KEY,
		course_id TEXT NOT NULL,
		exam_date TEXT NOT NULL,
		done INTEGER NOT NULL DEFAULT 0,
		worth_weight REAL NOT NULL,
		mark REAL,
		description TEXT NOT NULL,
		FOREIGN KEY (course_id) REFERENCES courses (course_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		project_id INTEGER PRIMARY KEY,
		course_id TEXT NOT NULL,
		due_date TEXT NOT NULL,
		turned_in INTEGER NOT NULL DEFAULT 0,
		date_turned_in TEXT,
		worth_weight REAL NOT NULL,
		mark REAL,
		description TEXT NOT NULL,
		FOREIGN KEY (course_id) REFERENCES courses (course_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS project_deliverables (
		deliverable_id INTEGER PRIMARY KEY,
		project_id INTEGER NOT NULL,
		due_date TEXT NOT NULL,
		done INTEGER NOT NULL DEFAULT 0,
		date_done TEXT,
		description TEXT NOT NULL,
		FOREIGN KEY (project_id) REFERENCES projects (project_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS daily_reports (
		id INTEGER PRIMARY KEY,
		log_date TEXT NOT NULL UNIQUE,
		data TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	)`,
	`CREATE TABLE IF NOT EXISTS activity_log (
		id INTEGER PRIMARY KEY,
		log_name TEXT NOT NULL,
		description TEXT,
		properties TEXT,
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

// CreateTables 建立全部資料表，重複呼叫不會動到既有資料
func CreateTables() error {
	if Sqlite == nil {
		return ErrNotConnected
	}
	for _, statement := range schemaStatements {
		if err := Sqlite.Exec(statement).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaVersion 讀取目前 schema 版本，沒有紀錄時回 0
func GetSchemaVersion() (int, error) {
	if Sqlite == nil {
		return 0, ErrNotConnected
	}
	var entity models.SchemaVersion
	if err := Sqlite.First(&entity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, nil
		}
		return 0, err
	}
	return entity.Version, nil
}

// SetSchemaVersion 更新 schema 版本號
func SetSchemaVersion(version int) error {
	if Sqlite == nil {
		return ErrNotConnected
	}
	if err := Sqlite.Exec("DELETE FROM schema_version").Error; err != nil {
		return err
	}
	return Sqlite.Create(&models.SchemaVersion{Version: version}).Error
}
