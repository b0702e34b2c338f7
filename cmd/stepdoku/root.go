package main

import (
	"github.com/spf13/cobra"

	"github.com/stepdoku/stepdoku/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "stepdoku",
	Short: "stepdoku - a stepwise Sudoku solver",
	Long: `stepdoku solves 9x9 Sudoku puzzles one justified move at a time,
showing the deduction behind each move.  Runs in progress are
checkpointed to Redis and finished runs can be archived to
Postgres.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to a YAML config file")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(runsCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}
