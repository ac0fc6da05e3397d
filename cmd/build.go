package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AlexVanMeegen/nest-simulator/sim"
	"github.com/AlexVanMeegen/nest-simulator/sim/gid"
)

var (
	networkFile string // YAML network specification
	modelsFile  string // optional YAML file with additional models
)

// buildCmd creates the populations of a YAML network specification and
// reports the resulting GID layout.
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the populations of a network specification",
	RunE: func(cmd *cobra.Command, args []string) error {
		kernel := sim.NewKernel(seed)

		if modelsFile != "" {
			if err := kernel.Models().LoadFile(modelsFile); err != nil {
				return err
			}
		}

		spec, err := sim.LoadNetworkSpec(networkFile)
		if err != nil {
			return err
		}
		pops, err := spec.Build(kernel)
		if err != nil {
			return err
		}

		// Merge all populations into one collection covering the network.
		all := gid.Collection{}
		for _, p := range pops {
			all, err = all.Combine(p.Nodes)
			if err != nil {
				return err
			}
		}
		logrus.Infof("network built: %d populations, %d nodes, GID space 1..%d",
			len(pops), all.Len(), kernel.MaxGID())
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVar(&networkFile, "network", "", "Path to the YAML network specification (required)")
	buildCmd.Flags().StringVar(&modelsFile, "models", "", "Path to a YAML file with additional models")
	_ = buildCmd.MarkFlagRequired("network")
	rootCmd.AddCommand(buildCmd)
}
