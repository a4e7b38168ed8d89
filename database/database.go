package database

import (
	"fmt"
	"wolftracker/utils"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var Sqlite *gorm.DB

// 初始化資料庫連線，整個程式共用一條連線
func InitDatabasePool() {

	// _foreign_keys=on 讓 sqlite 啟用外鍵約束，cascade 才會生效
	dsn := fmt.Sprintf("%s?_foreign_keys=on", utils.EnvConfig.Database.Path)

	db, err := gorm.Open("sqlite3", dsn)
	if err != nil {
		panic(fmt.Errorf("資料庫連線失敗: %s", err))
	}

	if utils.EnvConfig.Database.LogEnable == 1 {
		db.LogMode(true)
	}

	// 單人單程序，不需要多條連線
	db.DB().SetMaxOpenConns(1)

	Sqlite = db
}

// 關閉資料庫連線
func Close() {
	if Sqlite != nil {
		Sqlite.Close()
		Sqlite = nil
	}
}
