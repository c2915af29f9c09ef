package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"svw.info/nonogram/internal/clue"
	"svw.info/nonogram/internal/domain"
	"svw.info/nonogram/internal/ports"
	"svw.info/nonogram/internal/usecase"
)

var (
	solveLevel  string
	solveRows   []string
	solveCols   []string
	solveBudget time.Duration
	solveStrict bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a stored level or inline clues",
	Example: `  nonogram solve --level custom-1
  nonogram solve --row 1,1 --row 4 --row 1,1,1 --row 3 --row 1 \
    --col 2 --col 2,1 --col 1,1 --col 2,1 --col 1,1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := newService()
		level, err := solveInput(cmd, uc)
		if err != nil {
			return err
		}

		opt := ports.SolveOptions{Budget: solveBudget}
		if !cmd.Flags().Changed("budget") {
			opt.Budget = time.Duration(cfg.Budget)
		}
		opt.Mode = cfg.SolveMode()
		if solveStrict {
			opt.Mode = domain.ModeStrict
		}

		board, st, err := uc.Solve(cmd.Context(), level, opt)
		if err != nil {
			fmt.Printf("no solution: %s (nodes=%d, %v)\n", st.Outcome, st.Nodes, st.Duration.Round(time.Millisecond))
			return err
		}
		for r := 0; r < board.Rows; r++ {
			for c := 0; c < board.Cols; c++ {
				if board.Cells[r][c] == domain.Filled {
					fmt.Print("#")
				} else {
					fmt.Print(".")
				}
			}
			fmt.Println()
		}
		fmt.Printf("%s in %v, nodes=%d\n", st.Outcome, st.Duration.Round(time.Millisecond), st.Nodes)
		return nil
	},
}

func solveInput(cmd *cobra.Command, uc *usecase.Service) (domain.Level, error) {
	if solveLevel != "" {
		if len(solveRows) > 0 || len(solveCols) > 0 {
			return domain.Level{}, errors.New("give either --level or --row/--col clues, not both")
		}
		logger.Debug("loading level", zap.String("name", solveLevel))
		return uc.Load(cmd.Context(), solveLevel)
	}
	if len(solveRows) == 0 || len(solveCols) == 0 {
		return domain.Level{}, errors.New("need --level, or at least one --row and one --col")
	}
	rows, err := clue.ParseLines(solveRows)
	if err != nil {
		return domain.Level{}, fmt.Errorf("--row: %w", err)
	}
	cols, err := clue.ParseLines(solveCols)
	if err != nil {
		return domain.Level{}, fmt.Errorf("--col: %w", err)
	}
	return domain.Level{Rows: rows, Cols: cols}, nil
}

func init() {
	solveCmd.Flags().StringVar(&solveLevel, "level", "", "name of a stored level")
	solveCmd.Flags().StringArrayVar(&solveRows, "row", nil, "row clue, e.g. \"1,2\" (repeatable, in order)")
	solveCmd.Flags().StringArrayVar(&solveCols, "col", nil, "column clue (repeatable, in order)")
	solveCmd.Flags().DurationVar(&solveBudget, "budget", 10*time.Second, "wall-clock time budget")
	solveCmd.Flags().BoolVar(&solveStrict, "strict", false, "fail upfront when a line has no arrangements")
}
