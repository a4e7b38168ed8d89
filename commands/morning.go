package commands

import (
	"fmt"
	"os"
	"time"

	"wolftracker/enums"
	"wolftracker/services/console"
	"wolftracker/services/fitness"
	"wolftracker/services/journal"
	"wolftracker/services/trackLog"

	"github.com/spf13/cobra"
)

var morningCmd = &cobra.Command{
	Use:   "morning",
	Short: "Run the morning routine (dreams, intentions, optional weight)",
	Run: func(cmd *cobra.Command, args []string) {

		today := time.Now().Format(enums.DateLayout)

		var journalService journal.JournalService
		yesterdaysIntentions, err := journalService.GetPreviousDayIntentions(today)
		if err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		consoleService := console.NewStdConsoleService()
		payload := consoleService.RunMorningPrompts(yesterdaysIntentions)

		if payload.WeightLbs != nil {
			var fitnessService fitness.FitnessService
			if err := fitnessService.LogWeight(today, *payload.WeightLbs); err != nil {
				trackLog.Error(err.Error(), true)
				os.Exit(1)
			}
		}

		if err := journalService.SaveMorningLog(today, payload.Dreams, payload.Intentions); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}

		fmt.Println("\nMorning log saved.")
	},
}
