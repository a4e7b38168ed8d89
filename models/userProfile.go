package models

type UserProfile struct {
	ProfileID  int64   `gorm:"column:profile_id;primary_key" json:"profile_id"`
	UserName   string  `gorm:"column:user_name" json:"user_name"`
	HeightCm   float64 `gorm:"column:height_cm" json:"height_cm"`
	BirthDate  string  `gorm:"column:birth_date" json:"birth_date"`
	SexAtBirth string  `gorm:"column:sex_at_birth" json:"sex_at_birth"`
}

// TableName sets the insert table name for this struct type
func (u *UserProfile) TableName() string {
	return "user_profile"
}
