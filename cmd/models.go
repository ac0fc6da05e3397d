package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexVanMeegen/nest-simulator/sim"
)

// modelsCmd lists the node models a fresh kernel knows about, including any
// loaded from a custom models file.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List registered node models",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry := sim.NewModelRegistry()
		if modelsFile != "" {
			if err := registry.LoadFile(modelsFile); err != nil {
				return err
			}
		}
		for id, name := range registry.Names() {
			fmt.Printf("%3d  %s\n", id, name)
		}
		return nil
	},
}

func init() {
	modelsCmd.Flags().StringVar(&modelsFile, "models", "", "Path to a YAML file with additional models")
	rootCmd.AddCommand(modelsCmd)
}
