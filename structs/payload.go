package structs

// ProfilePayload 建立/更新個人檔案的輸入
type ProfilePayload struct {
	UserName   string  `json:"user_name"`
	HeightCm   float64 `json:"height_cm"`
	BirthDate  string  `json:"birth_date"`
	SexAtBirth string  `json:"sex_at_birth"`
}

// MorningPayload 早上例行輸入，體重可跳過
type MorningPayload struct {
	Dreams     string   `json:"dreams"`
	Intentions string   `json:"intentions"`
	WeightLbs  *float64 `json:"weight_lbs"`
}

// EveningPayload 晚上例行輸入
type EveningPayload struct {
	ReviewOfIntentions string      `json:"review_of_intentions"`
	Accomplishment     string      `json:"accomplishment"`
	Mood               string      `json:"mood"`
	Nutrition          []FoodInput `json:"nutrition"`
	DidWorkout         bool        `json:"did_workout"`
}

type FoodInput struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
}
