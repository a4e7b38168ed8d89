package profile

import (
	"wolftracker/database"
	"wolftracker/enums"
	"wolftracker/models"
	"wolftracker/structs"

	"github.com/jinzhu/gorm"
)

type ProfileService struct{}

// Save 寫入單一使用者檔案，固定 profile_id = 1，有就整筆覆蓋
func (p *ProfileService) Save(payload structs.ProfilePayload) error {

	var profileEntity models.UserProfile
	err := database.Sqlite.Where("profile_id = ?", enums.DefaultProfileID).First(&profileEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		profileEntity = models.UserProfile{
			ProfileID:  enums.DefaultProfileID,
			UserName:   payload.UserName,
			HeightCm:   payload.HeightCm,
			BirthDate:  payload.BirthDate,
			SexAtBirth: payload.SexAtBirth,
		}
		return database.Sqlite.Create(&profileEntity).Error
	}
	if err != nil {
		return err
	}

	// 用 map 更新，空字串才蓋得過去
	return database.Sqlite.Table(profileEntity.TableName()).
		Where("profile_id = ?", enums.DefaultProfileID).
		Updates(map[string]interface{}{
			"user_name":    payload.UserName,
			"height_cm":    payload.HeightCm,
			"birth_date":   payload.BirthDate,
			"sex_at_birth": payload.SexAtBirth,
		}).Error
}

// Get 取得使用者檔案，沒有的話回 nil 不算錯誤
func (p *ProfileService) Get() (*models.UserProfile, error) {

	var profileEntity models.UserProfile
	err := database.Sqlite.Where("profile_id = ?", enums.DefaultProfileID).First(&profileEntity).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profileEntity, nil
}
