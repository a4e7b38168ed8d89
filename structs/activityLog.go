package structs

// ActivityLogJsonModel 寫進 activity_log.properties 的 json 內容
type ActivityLogJsonModel struct {
	LogDate  string       `json:"log_date,omitempty"`
	Result   bool         `json:"result"`
	Message  string       `json:"message"`
	Messages []ErrorModel `json:"messages,omitempty"`
}
