package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect and manage the stored level document",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored level names",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := newService().List(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("no levels stored")
			return nil
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return nil
	},
}

var levelsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Remove a level from the document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newService().Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		logger.Info("level deleted", zap.String("name", args[0]))
		return nil
	},
}

func init() {
	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsDeleteCmd)
}
