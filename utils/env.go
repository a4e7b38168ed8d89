package utils

import (
	"fmt"
	"strings"

	"wolftracker/structs"

	"github.com/spf13/viper"
)

var EnvConfig *structs.EnviromentModel

type EnvService struct{}

func (e *EnvService) InitEnv() {
	e.loadConfig()
	e.configToModel()
}

func (e *EnvService) loadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {

			// 找不到 config.yml 的話就抓取環境變數
			viper.AutomaticEnv()
			viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		} else {

			// 有找到 config.yml 但是發生了其他未知的錯誤
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
	return
}

func (e *EnvService) configToModel() {
	var config structs.EnviromentModel
	config.Database.Path = viper.GetString("database.path")
	config.Database.LogEnable = viper.GetInt("database.log_enable")
	config.Workout.DefaultName = viper.GetString("workout.default_name")
	config.Workout.DefaultCalories = viper.GetInt("workout.default_calories")
	config.Log.ElkEnable = viper.GetInt("log.elk.enable")
	config.Log.ElkIndex = viper.GetString("log.elk.index")
	config.Log.ElkURL = viper.GetString("log.elk.url")
	config.Log.LogstashEnable = viper.GetInt("log.logstash.enable")
	config.Log.LogstashURL = viper.GetString("log.logstash.url")
	config.Log.LogstashIndex = viper.GetString("log.logstash.index")
	EnvConfig = &config
}
