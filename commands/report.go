package commands

import (
	"fmt"
	"os"
	"time"

	"wolftracker/enums"
	"wolftracker/services/console"
	"wolftracker/services/report"
	"wolftracker/services/trackLog"

	"github.com/spf13/cobra"
)

var reportDate string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the daily energy-balance report",
	Run: func(cmd *cobra.Command, args []string) {

		logDate := reportDate
		if logDate == "" {
			logDate = time.Now().Format(enums.DateLayout)
		}
		if _, err := time.Parse(enums.DateLayout, logDate); err != nil {
			trackLog.Error(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", reportDate), true)
			os.Exit(1)
		}

		fmt.Println("\n--- Generating Daily Energy Report ---")
		var reportService report.ReportService
		reportModel, err := reportService.Start(logDate)
		if err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		consoleService := console.NewStdConsoleService()
		consoleService.DisplayCalorieSummary(*reportModel)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportDate, "date", "", "report date (YYYY-MM-DD), defaults to today")
}
