package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wolftracker",
	Short: "Personal daily journaling and self-quantification tracker",
	Long: `Wolf Tracker records morning/evening reflections, nutrition, workouts
and body weight for a single user, and computes a daily energy-balance
report (BMR/TDEE vs. calories consumed).`,
}

func Execute() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(morningCmd)
	rootCmd.AddCommand(eveningCmd)
	rootCmd.AddCommand(reportCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
