package structs

// Report 每日能量收支報告，存進 daily_reports 的 data 欄位也是這個 json
type Report struct {
	Tdee       float64 `json:"tdee"`
	Consumed   int     `json:"consumed"`
	Deficit    int     `json:"deficit"`
	WeightLbs  float64 `json:"weight_lbs"`
	WeightDate string  `json:"weight_date"`
}

type ErrorModel struct {
	LogDate      string `json:"log_date,omitempty"`
	ErrorMessage string `json:"error_message"`
}
