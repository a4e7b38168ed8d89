package commands

import (
	"fmt"
	"os"
	"time"

	"wolftracker/enums"
	"wolftracker/services/console"
	"wolftracker/services/fitness"
	"wolftracker/services/journal"
	"wolftracker/services/nutrition"
	"wolftracker/services/report"
	"wolftracker/services/trackLog"
	"wolftracker/utils"

	"github.com/spf13/cobra"
)

var eveningCmd = &cobra.Command{
	Use:   "evening",
	Short: "Run the evening routine (review, nutrition, workout, energy report)",
	Run: func(cmd *cobra.Command, args []string) {

		today := time.Now().Format(enums.DateLayout)

		var journalService journal.JournalService
		todaysIntentions, err := journalService.GetIntentions(today)
		if err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		consoleService := console.NewStdConsoleService()
		payload := consoleService.RunEveningPrompts(todaysIntentions)

		// 先把當天晚上的資料整組清掉，重跑才不會疊出重複紀錄
		if err := journalService.EnsureDailyLog(today); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}
		if err := journalService.ClearEveningData(today); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		if err := journalService.SaveEveningLog(today, payload.ReviewOfIntentions, payload.Accomplishment, payload.Mood); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		var nutritionService nutrition.NutritionService
		var foodIDs []int64
		for _, food := range payload.Nutrition {
			foodID, err := nutritionService.GetOrCreateFoodItem(food.Name, food.Calories)
			if err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
			foodIDs = append(foodIDs, foodID)
		}
		if err := nutritionService.LogEntries(today, foodIDs); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		// 沒有細項的話就記設定檔裡的預設菜單
		if payload.DidWorkout {
			var fitnessService fitness.FitnessService
			defaultName := utils.EnvConfig.Workout.DefaultName
			defaultCalories := utils.EnvConfig.Workout.DefaultCalories

			exerciseID, err := fitnessService.GetOrCreateExercise(defaultName, defaultCalories)
			if err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
			workoutID, err := fitnessService.GetOrCreateWorkout(defaultName)
			if err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
			if err := fitnessService.AddExerciseToWorkout(workoutID, exerciseID); err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
			if err := fitnessService.LogWorkout(today, workoutID); err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
		}

		fmt.Println("\n--- Generating Daily Energy Report ---")
		var reportService report.ReportService
		reportModel, err := reportService.Start(today)
		if err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		consoleService.DisplayCalorieSummary(*reportModel)
	},
}
