package commands

import (
	"fmt"
	"os"

	"wolftracker/services/console"
	"wolftracker/services/profile"
	"wolftracker/services/trackLog"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Create or update the user profile",
	Run: func(cmd *cobra.Command, args []string) {

		var profileService profile.ProfileService

		existing, err := profileService.Get()
		if err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}
		if existing != nil {
			fmt.Printf("Welcome back, %s!\n", existing.UserName)
		} else {
			fmt.Println("No user profile found. Let's create one.")
		}

		consoleService := console.NewStdConsoleService()
		payload := consoleService.PromptForUserProfile()

		if err := profileService.Save(payload); err != nil {
			trackLog.Error(err.Error(), true)
			os.Exit(1)
		}
		fmt.Println("\nUser profile has been saved successfully.")
	},
}
