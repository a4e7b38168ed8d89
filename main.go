package main

import (
	"fmt"
	"os"

	"wolftracker/commands"
	"wolftracker/database"
	"wolftracker/services/trackLog"
	"wolftracker/utils"
)

func main() {

	// 初始化 env
	var envService utils.EnvService
	envService.InitEnv()

	// 沒有資料庫路徑就不用往下走了
	if utils.EnvConfig.Database.Path == "" {
		fmt.Fprintln(os.Stderr, "Error: database.path is not set. Please provide config.yml or the DATABASE_PATH environment variable.")
		os.Exit(1)
	}

	database.InitDatabasePool()
	defer database.Close()

	if err := database.CreateTables(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not create tables: %s\n", err)
		os.Exit(1)
	}

	trackLog.LogTrackInit()

	commands.Execute()
}
