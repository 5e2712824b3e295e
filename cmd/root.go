package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/praktis/go-algorithms/log"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "algorithms",
	Short:         "Practice with algorithms and data structures",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger.Error(err.Error())
		os.Exit(1)
	}
}
