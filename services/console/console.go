package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"wolftracker/structs"
)

// ConsoleService 負責全部的終端機互動
// 數字欄位輸入錯誤會重問，不會默默當成 0
type ConsoleService struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleService(in io.Reader, out io.Writer) *ConsoleService {
	return &ConsoleService{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func NewStdConsoleService() *ConsoleService {
	return NewConsoleService(os.Stdin, os.Stdout)
}

func (c *ConsoleService) readLine(prompt string) string {
	fmt.Fprint(c.out, prompt)
	line, _ := c.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// 整數欄位的輸入迴圈，輸入不是數字就重問
func (c *ConsoleService) readInt(prompt string) int {
	for {
		line := c.readLine(prompt)
		value, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a whole number.")
			continue
		}
		return value
	}
}

func (c *ConsoleService) readFloat(prompt string) float64 {
	for {
		line := c.readLine(prompt)
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		return value
	}
}

// PromptForUserProfile 建立/更新個人檔案的問答
func (c *ConsoleService) PromptForUserProfile() structs.ProfilePayload {
	fmt.Fprintln(c.out, "--- Create or Update Your Profile ---")
	userName := c.readLine("What is your name? ")
	heightCm := c.readFloat("What is your height in cm? ")
	birthDate := c.readLine("What is your birth date (YYYY-MM-DD)? ")
	sexAtBirth := c.readLine("What is your sex at birth (Male/Female)? ")

	return structs.ProfilePayload{
		UserName:   userName,
		HeightCm:   heightCm,
		BirthDate:  birthDate,
		SexAtBirth: sexAtBirth,
	}
}

// RunMorningPrompts 早上例行問答，體重按 Enter 可以跳過
func (c *ConsoleService) RunMorningPrompts(yesterdaysIntentions string) structs.MorningPayload {
	fmt.Fprintln(c.out, "\n--- Morning Routine ---")
	if yesterdaysIntentions != "" {
		fmt.Fprintf(c.out, "\nYesterday's intentions were: \n- %s\n", yesterdaysIntentions)
	}

	var weightLbs *float64
	for {
		line := c.readLine("Enter your weight in lbs (or press Enter to skip): ")
		if line == "" {
			break
		}
		value, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
			continue
		}
		weightLbs = &value
		break
	}

	fmt.Fprintln(c.out, "\nToday's Prompts:")
	dreams := c.readLine("Record any notable dreams: ")
	intentions := c.readLine("What are your intentions for the day? ")

	return structs.MorningPayload{
		Dreams:     dreams,
		Intentions: intentions,
		WeightLbs:  weightLbs,
	}
}

// RunEveningPrompts 晚上例行問答：回顧、飲食、運動
func (c *ConsoleService) RunEveningPrompts(todaysIntentions string) structs.EveningPayload {
	fmt.Fprintln(c.out, "\n--- Evening Review ---")
	if todaysIntentions != "" {
		fmt.Fprintf(c.out, "\nToday's intentions were: \n- %s\n", todaysIntentions)
	}

	review := c.readLine("Review your intentions. How did it go? ")
	accomplishment := c.readLine("What is one thing you did well today? ")
	mood := c.readLine("What was your overall mood today? (e.g., Happy, Sad, Productive): ")

	nutritionData := c.promptForNutrition()
	didWorkout := c.promptForWorkout()

	return structs.EveningPayload{
		ReviewOfIntentions: review,
		Accomplishment:     accomplishment,
		Mood:               mood,
		Nutrition:          nutritionData,
		DidWorkout:         didWorkout,
	}
}

// 食物記到輸入 done 為止
func (c *ConsoleService) promptForNutrition() []structs.FoodInput {
	fmt.Fprintln(c.out, "\n--- Nutrition Log ---")
	var foods []structs.FoodInput
	for {
		foodName := c.readLine("Enter food name (or 'done' to finish): ")
		if strings.ToLower(foodName) == "done" {
			break
		}
		if foodName == "" {
			fmt.Fprintln(c.out, "Food name cannot be empty.")
			continue
		}
		calories := c.readInt(fmt.Sprintf("Enter calories for %s: ", foodName))
		foods = append(foods, structs.FoodInput{Name: foodName, Calories: calories})
	}
	return foods
}

func (c *ConsoleService) promptForWorkout() bool {
	fmt.Fprintln(c.out, "\n--- Workout Log ---")
	didWorkout := strings.ToLower(c.readLine("Did you work out today? (y/n): "))
	return didWorkout == "y"
}

// DisplayCalorieSummary 顯示最後的能量收支結果
func (c *ConsoleService) DisplayCalorieSummary(reportModel structs.Report) {
	fmt.Fprintln(c.out, "\n--- Calorie & Energy Summary ---")
	fmt.Fprintf(c.out, "Based on your last recorded weight of %.1f lbs on %s:\n", reportModel.WeightLbs, reportModel.WeightDate)
	fmt.Fprintf(c.out, "  - Your estimated Total Daily Energy Expenditure (TDEE) is: %.0f calories\n", reportModel.Tdee)
	fmt.Fprintf(c.out, "  - You consumed approximately: %d calories\n", reportModel.Consumed)

	if reportModel.Deficit > 0 {
		fmt.Fprintf(c.out, "\nResult: You are in a caloric deficit of %d calories.\n", reportModel.Deficit)
	} else {
		fmt.Fprintf(c.out, "\nResult: You are in a caloric surplus of %d calories.\n", -reportModel.Deficit)
	}
}
