package report

import (
	"strings"
	"time"

	"wolftracker/enums"
	"wolftracker/models"
)

// Age 計算足歲，今年生日還沒到要減一
func Age(birthDate, today time.Time) int {
	age := today.Year() - birthDate.Year()
	if today.Month() < birthDate.Month() ||
		(today.Month() == birthDate.Month() && today.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// LbsToKg 磅轉公斤
func LbsToKg(weightLbs float64) float64 {
	return weightLbs * 0.453592
}

// CalculateBMR 用 Mifflin-St Jeor 公式算基礎代謝率
// sex_at_birth 不是 Male 也不是 Female 的話，一律用男性公式
func CalculateBMR(profileEntity models.UserProfile, weightLbs float64, today time.Time) (float64, error) {

	birthDate, err := time.Parse(enums.DateLayout, profileEntity.BirthDate)
	if err != nil {
		return 0, err
	}

	age := Age(birthDate, today)
	weightKg := LbsToKg(weightLbs)
	heightCm := profileEntity.HeightCm

	var bmr float64
	switch strings.ToLower(profileEntity.SexAtBirth) {
	case strings.ToLower(enums.SexMale):
		bmr = (10 * weightKg) + (6.25 * heightCm) - (5 * float64(age)) + 5
	case strings.ToLower(enums.SexFemale):
		bmr = (10 * weightKg) + (6.25 * heightCm) - (5 * float64(age)) - 161
	default:
		bmr = (10 * weightKg) + (6.25 * heightCm) - (5 * float64(age)) + 5
	}
	return bmr, nil
}

// CalculateTDEE 固定用久坐係數 1.2，再加上有記錄的運動消耗
func CalculateTDEE(bmr float64, activityCalories int) float64 {
	return bmr*1.2 + float64(activityCalories)
}
