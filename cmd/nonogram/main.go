package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"svw.info/nonogram/internal/config"
	"svw.info/nonogram/internal/generator"
	"svw.info/nonogram/internal/infrastructure/storage"
	"svw.info/nonogram/internal/solver"
	"svw.info/nonogram/internal/usecase"
	"svw.info/nonogram/internal/validator"
)

var (
	// Global flags
	cfgPath    string
	levelsPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "nonogram",
	Short: "Nonogram solver and level-authoring service",
	Long: `nonogram solves picross puzzles from per-row and per-column clue
sequences, using exhaustive per-line possibility enumeration with a
backtracking, column-pruned search.

Levels are stored in a single JSON document keyed by level name, the same
document the web UI and the API read and write.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("levels") {
			cfg.LevelsPath = levelsPath
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newService wires providers the way the serve and solve commands need
// them.
func newService() *usecase.Service {
	s := solver.NewBacktracking()
	s.Logger = logger
	return usecase.NewService(s, validator.New(), generator.New(), storage.NewFS(cfg.LevelsPath))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&levelsPath, "levels", "custom-levels.json", "path to the level document")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(levelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
