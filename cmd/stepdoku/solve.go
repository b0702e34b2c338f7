// stepdoku - a stepwise Sudoku solver and teaching tool.
// Copyright (C) 2026 the stepdoku authors.
//
// Use of this source code is governed by the MIT license
// found in the LICENSE file.

package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/stepdoku/stepdoku/format"
	"github.com/stepdoku/stepdoku/puzzle"
	"github.com/stepdoku/stepdoku/storage"
)

var (
	maxMoves       int
	showBoards     bool
	showHints      bool
	logPath        string
	checkpointPath string
	useCache       bool
	useArchive     bool
)

var strategyColor = color.New(color.FgCyan, color.Bold)
var digitColor = color.New(color.FgGreen, color.Bold)

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "solve a puzzle one justified move at a time",
	Long: `solve loads a start grid or checkpoint file and finds one
logically justified move at a time, printing each move's
strategy and reasoning, until the puzzle is solved, the solver
stalls, or a contradiction proves it unsatisfiable.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&maxMoves, "max-moves", 1000,
		"stop after this many moves")
	solveCmd.Flags().BoolVar(&showBoards, "boards", false,
		"render the board after every move")
	solveCmd.Flags().BoolVar(&showHints, "hints", false,
		"show near-decided candidates in rendered boards")
	solveCmd.Flags().StringVar(&logPath, "log", "",
		"append each move as JSON to this file")
	solveCmd.Flags().StringVar(&checkpointPath, "checkpoint", "",
		"write the final board to this checkpoint file")
	solveCmd.Flags().BoolVar(&useCache, "cache", false,
		"checkpoint the run to Redis after every move")
	solveCmd.Flags().BoolVar(&useArchive, "archive", false,
		"archive the finished run to Postgres")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	puzzleText, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	board, err := format.ReadFile(args[0])
	if err != nil {
		return err
	}

	var moveLog *format.MoveLog
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		moveLog = format.NewMoveLog(f)
	}

	var store *storage.Store
	if useCache || useArchive {
		redisURL, databaseURL := "", ""
		if useCache {
			redisURL = cfg.RedisURL
		}
		if useArchive {
			databaseURL = cfg.DatabaseURL
		}
		store, err = storage.Connect(cmd.Context(), redisURL, databaseURL)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	runID := uuid.New()
	solver := puzzle.NewSolver(board, cfg.SolverOptions()...)
	var moves []puzzle.Move
	outcome := storage.OutcomeStalled

	fmt.Println(board.Art(showHints))
	for len(moves) < maxMoves {
		move, err := solver.FindMove()
		if err != nil {
			outcome = storage.OutcomeContradicted
			fmt.Printf("contradiction after %d moves: %v\n", len(moves), err)
			break
		}
		if move == nil {
			if board.IsSolved() {
				outcome = storage.OutcomeSolved
			}
			break
		}
		moves = append(moves, *move)
		printMove(len(moves), move)
		if showBoards {
			fmt.Println(board.Art(showHints))
		}
		if moveLog != nil {
			if err := moveLog.Append(move); err != nil {
				return err
			}
		}
		if useCache {
			if err := store.SaveCheckpoint(runID, board, 0); err != nil {
				log.Printf("checkpoint for run %s failed: %v", runID, err)
			}
		}
		if cfg.MoveDelay > 0 {
			time.Sleep(time.Duration(cfg.MoveDelay))
		}
	}

	switch outcome {
	case storage.OutcomeSolved:
		fmt.Printf("solved in %d moves\n", len(moves))
		fmt.Println(board.Art(false))
	case storage.OutcomeStalled:
		fmt.Printf("stalled after %d moves, %d cells open\n",
			len(moves), len(board.OpenCells()))
		fmt.Println(board.Art(showHints))
	}

	if checkpointPath != "" {
		if err := writeCheckpointFile(checkpointPath, board); err != nil {
			return err
		}
	}
	if useArchive {
		run := &storage.Run{
			ID:      runID,
			Puzzle:  string(puzzleText),
			Outcome: outcome,
			Moves:   moves,
		}
		if err := store.ArchiveRun(cmd.Context(), run); err != nil {
			return err
		}
		if useCache {
			if err := store.DeleteCheckpoint(runID); err != nil {
				log.Printf("dropping checkpoint for run %s failed: %v", runID, err)
			}
		}
		fmt.Printf("archived as run %s\n", runID)
	}
	return nil
}

func printMove(n int, move *puzzle.Move) {
	fmt.Printf("%3d. ", n)
	strategyColor.Printf("[%s] ", move.Strategy)
	if move.Assigned != nil {
		digitColor.Printf("%s := %d", move.Assigned.Loc, move.Assigned.Digit)
	} else {
		fmt.Printf("%d candidates removed", len(move.Removed))
	}
	fmt.Printf(" - %s\n", move.Reason)
}

func writeCheckpointFile(path string, b *puzzle.Board) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := format.WriteCheckpoint(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
