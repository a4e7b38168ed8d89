package models

type SchemaVersion struct {
	Version int `gorm:"column:version;primary_key" json:"version"`
}

// TableName sets the insert table name for this struct type
func (s *SchemaVersion) TableName() string {
	return "schema_version"
}
