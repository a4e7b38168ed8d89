package nutrition

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"wolftracker/database"
	"wolftracker/models"
	"wolftracker/structs"
	"wolftracker/utils"
)

func setupTestDB(t *testing.T) func() {
	t.Helper()

	dir, err := ioutil.TempDir("", "wolftracker-nutrition")
	if err != nil {
		t.Fatalf("temp dir: %s", err)
	}

	utils.EnvConfig = &structs.EnviromentModel{}
	utils.EnvConfig.Database.Path = filepath.Join(dir, "test.db")

	database.InitDatabasePool()
	if err := database.CreateTables(); err != nil {
		t.Fatalf("create tables: %s", err)
	}

	return func() {
		database.Close()
		os.RemoveAll(dir)
	}
}

func TestGetOrCreateFoodItemKeepsFirstCalories(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var nutritionService NutritionService
	firstID, err := nutritionService.GetOrCreateFoodItem("Pizza", 350)
	if err != nil {
		t.Fatalf("first get-or-create: %s", err)
	}

	// 同名第二次呼叫要拿到同一筆，卡路里不會被蓋掉
	secondID, err := nutritionService.GetOrCreateFoodItem("Pizza", 999)
	if err != nil {
		t.Fatalf("second get-or-create: %s", err)
	}
	if firstID != secondID {
		t.Errorf("expected same food id, got %d and %d", firstID, secondID)
	}

	var foodItemEntity models.FoodItem
	if err := database.Sqlite.Where("name = ?", "Pizza").First(&foodItemEntity).Error; err != nil {
		t.Fatalf("load food: %s", err)
	}
	if foodItemEntity.Calories != 350 {
		t.Errorf("expected calories 350, got %d", foodItemEntity.Calories)
	}
}

func TestLogEntryAppendsDuplicates(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var nutritionService NutritionService
	foodID, err := nutritionService.GetOrCreateFoodItem("Oats", 150)
	if err != nil {
		t.Fatalf("get-or-create: %s", err)
	}

	// 同一個食物記兩次要變兩筆，不會合併
	if err := nutritionService.LogEntry("2024-03-01", foodID, 1); err != nil {
		t.Fatalf("first log: %s", err)
	}
	if err := nutritionService.LogEntry("2024-03-01", foodID, 1); err != nil {
		t.Fatalf("second log: %s", err)
	}

	var count int
	database.Sqlite.Table("nutrition_log").Where("log_date = ?", "2024-03-01").Count(&count)
	if count != 2 {
		t.Errorf("expected 2 nutrition rows, got %d", count)
	}
}

func TestTotalConsumedCalories(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var nutritionService NutritionService

	// 完全沒紀錄的日子要回 0，不是錯誤
	total, err := nutritionService.TotalConsumedCalories("2024-03-01")
	if err != nil {
		t.Fatalf("empty day: %s", err)
	}
	if total != 0 {
		t.Errorf("expected 0 for empty day, got %d", total)
	}

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

	total, err = nutritionService.TotalConsumedCalories("2024-03-01")
	if err != nil {
		t.Fatalf("total: %s", err)
	}
	if total != 850 {
		t.Errorf("expected 350*2 + 150 = 850, got %d", total)
	}

	// 別天的紀錄不能被算進來
	total, err = nutritionService.TotalConsumedCalories("2024-03-02")
	if err != nil {
		t.Fatalf("other day: %s", err)
	}
	if total != 0 {
		t.Errorf("expected 0 for other day, got %d", total)
	}
}

func TestLogEntriesBulk(t *testing.T) {
	teardown := setupTestDB(t)
	defer teardown()

	var nutritionService NutritionService
	oatsID, err := nutritionService.GetOrCreateFoodItem("Oats", 350)
	if err != nil {
		t.Fatalf("create oats: %s", err)
	}
	shakeID, err := nutritionService.GetOrCreateFoodItem("Protein Shake", 200)
	if err != nil {
		t.Fatalf("create shake: %s", err)
	}

	if err := nutritionService.LogEntries("2024-03-01", []int64{oatsID, shakeID}); err != nil {
		t.Fatalf("bulk log: %s", err)
	}

	total, err := nutritionService.TotalConsumedCalories("2024-03-01")
	if err != nil {
		t.Fatalf("total: %s", err)
	}
	if total != 550 {
		t.Errorf("expected 550, got %d", total)
	}

	// 空清單是 no-op
	if err := nutritionService.LogEntries("2024-03-01", nil); err != nil {
		t.Fatalf("empty bulk log: %s", err)
	}
}
