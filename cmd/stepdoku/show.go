package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stepdoku/stepdoku/format"
)

var showWithHints bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "render a puzzle file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := format.ReadFile(args[0])
		if err != nil {
			return err
		}
		fmt.Println(board.Art(showWithHints))
		fmt.Printf("%d cells open\n", len(board.OpenCells()))
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showWithHints, "hints", false,
		"show near-decided candidates")
}
