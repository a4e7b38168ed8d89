package report

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"wolftracker/database"
	"wolftracker/models"
	"wolftracker/services"
	"wolftracker/services/fitness"
	"wolftracker/services/nutrition"
	"wolftracker/services/profile"
	"wolftracker/structs"
	"wolftracker/utils"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()

	dir, err := ioutil.TempDir("", "wolftracker-report")
	if err != nil {
		t.Fatalf("temp dir: %s", err)
	}

	// logs/ 會寫在 cwd 底下，換到暫存目錄不要弄髒原始碼樹
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %s", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %s", err)
	}

	utils.EnvConfig = &structs.EnviromentModel{}
	utils.EnvConfig.Database.Path = filepath.Join(dir, "test.db")

	database.InitDatabasePool()
	if err := database.CreateTables(); err != nil {
		t.Fatalf("create tables: %s", err)
	}

	return func() {
		database.Close()
		os.Chdir(oldWd)
		os.RemoveAll(dir)
	}
}

func TestStartWithoutProfile(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var reportService ReportService
	if _, err := reportService.Start("2024-03-01"); err != ErrNoProfile {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}
	if len(reportService.Errors) == 0 {
		t.Error("expected the error to be collected")
	}
}

func TestStartWithoutWeight(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var profileService profile.ProfileService
	if err := profileService.Save(structs.ProfilePayload{
		UserName:   "Test User",
		HeightCm:   180,
		BirthDate:  "1990-01-15",
		SexAtBirth: "Male",
	}); err != nil {
		t.Fatalf("save profile: %s", err)
	}

	// 從來沒記過體重不能用預設值混過去，要硬停
	var reportService ReportService
	if _, err := reportService.Start("2024-03-01"); err != ErrNoWeightRecorded {
		t.Fatalf("expected ErrNoWeightRecorded, got %v", err)
	}
}

func TestStartHappyPath(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var profileService profile.ProfileService
	profilePayload := structs.ProfilePayload{
		UserName:   "Test User",
		HeightCm:   180,
		BirthDate:  "1990-01-15",
		SexAtBirth: "Male",
	}
	if err := profileService.Save(profilePayload); err != nil {
		t.Fatalf("save profile: %s", err)
	}

	var fitnessService fitness.FitnessService
	if err := fitnessService.LogWeight("2024-03-01", 180.0); err != nil {
		t.Fatalf("log weight: %s", err)
	}

	var nutritionService nutrition.NutritionService
	pizzaID, err := nutritionService.GetOrCreateFoodItem("Pizza", 350)
	if err != nil {
		t.Fatalf("create pizza: %s", err)
	}
	saladID, err := nutritionService.GetOrCreateFoodItem("Salad", 150)
	if err != nil {
		t.Fatalf("create salad: %s", err)
	}
	if err := nutritionService.LogEntry("2024-03-01", pizzaID, 2); err != nil {
		t.Fatalf("log pizza: %s", err)
	}
	if err := nutritionService.LogEntry("2024-03-01", saladID, 1); err != nil {
		t.Fatalf("log salad: %s", err)
	}

	exerciseID, err := fitnessService.GetOrCreateExercise("Default Workout", 250)
	if err != nil {
		t.Fatalf("create exercise: %s", err)
	}
	workoutID, err := fitnessService.GetOrCreateWorkout("Default Workout")
	if err != nil {
		t.Fatalf("create workout: %s", err)
	}
	if err := fitnessService.AddExerciseToWorkout(workoutID, exerciseID); err != nil {
		t.Fatalf("add component: %s", err)
	}
	if err := fitnessService.LogWorkout("2024-03-01", workoutID); err != nil {
		t.Fatalf("log workout: %s", err)
	}

	var reportService ReportService
	reportModel, err := reportService.Start("2024-03-01")
	if err != nil {
		t.Fatalf("start report: %s", err)
	}

	if reportModel.Consumed != 850 {
		t.Errorf("expected consumed 850, got %d", reportModel.Consumed)
	}
	if reportModel.WeightLbs != 180.0 || reportModel.WeightDate != "2024-03-01" {
		t.Errorf("unexpected weight: %f on %s", reportModel.WeightLbs, reportModel.WeightDate)
	}

	// 跟純計算的結果交叉比對
	profileEntity := models.UserProfile{
		HeightCm:   profilePayload.HeightCm,
		BirthDate:  profilePayload.BirthDate,
		SexAtBirth: profilePayload.SexAtBirth,
	}
	bmr, err := CalculateBMR(profileEntity, 180.0, time.Now())
	if err != nil {
		t.Fatalf("bmr: %s", err)
	}
	expectedTdee := CalculateTDEE(bmr, 250)
	if reportModel.Tdee != decimal(expectedTdee) {
		t.Errorf("expected tdee %f, got %f", decimal(expectedTdee), reportModel.Tdee)
	}
	if reportModel.Deficit != services.Round(expectedTdee-850) {
		t.Errorf("expected deficit %d, got %d", services.Round(expectedTdee-850), reportModel.Deficit)
	}

	// 報表要落地，重跑同一天是 update 不是新增
	var count int
	database.Sqlite.Table("daily_reports").Where("log_date = ?", "2024-03-01").Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 daily_reports row, got %d", count)
	}
	if _, err := reportService.Start("2024-03-01"); err != nil {
		t.Fatalf("second run: %s", err)
	}
	database.Sqlite.Table("daily_reports").Where("log_date = ?", "2024-03-01").Count(&count)
	if count != 1 {
		t.Errorf("expected 1 daily_reports row after re-run, got %d", count)
	}
}
