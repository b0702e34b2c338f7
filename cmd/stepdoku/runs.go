package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stepdoku/stepdoku/storage"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "list archived runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store, err := storage.Connect(cmd.Context(), "", cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns(cmd.Context(), runsLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("no archived runs")
			return nil
		}
		for _, run := range runs {
			fmt.Printf("%s  %-12s  %4d moves  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.Outcome, len(run.Moves), run.ID)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "maximum runs to list")
}
