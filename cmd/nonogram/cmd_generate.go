package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	genRows    int
	genCols    int
	genSeed    int64
	genDensity float64
	genSave    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random picture and the level that produces it",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := genSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		uc := newService()
		level, cells, err := uc.Generate(seed, genRows, genCols, genDensity)
		if err != nil {
			return err
		}
		for _, row := range cells {
			var sb strings.Builder
			for _, v := range row {
				if v {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			fmt.Println(sb.String())
		}
		fmt.Printf("seed=%d\n", seed)
		for r, c := range level.Rows {
			fmt.Printf("row %d: %s\n", r, joinClue(c))
		}
		for c, cc := range level.Cols {
			fmt.Printf("col %d: %s\n", c, joinClue(cc))
		}
		if genSave != "" {
			if err := uc.Save(cmd.Context(), genSave, level); err != nil {
				return err
			}
			logger.Info("level saved", zap.String("name", genSave), zap.String("path", cfg.LevelsPath))
		}
		return nil
	},
}

func joinClue(c []int) string {
	if len(c) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(c))
	for i, n := range c {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}

func init() {
	generateCmd.Flags().IntVar(&genRows, "rows", 5, "picture height")
	generateCmd.Flags().IntVar(&genCols, "cols", 5, "picture width")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = time-based)")
	generateCmd.Flags().Float64Var(&genDensity, "density", 0.5, "fill probability per cell")
	generateCmd.Flags().StringVar(&genSave, "save", "", "also store the level under this name")
}
