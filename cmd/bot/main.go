package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-bot",
	Short: "Telegram front end for a teaching portfolio",
	Long: "portfolio-bot serves a teaching portfolio over Telegram: project cards with " +
		"category filters, teaching style quizzes, a graduation countdown and an HSC grade converter.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("config-dir", "./config", "Directory containing config.yaml")
	rootCmd.PersistentFlags().String("env-file", ".env", "Dotenv file loaded before reading the environment")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(gradeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
