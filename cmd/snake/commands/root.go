package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toroidal/snake/version"
	"github.com/toroidal/snake/window"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake plays the classic game in a window",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		setupLogging()
		if err := window.Run(newState(), newState); err != nil {
			log.WithError(err).Fatal("window closed with an error")
		}
	},
}

// Execute runs the root command
func Execute() {

	rootCmd.Flags().Int64Var(&seed, "seed", 0, "simulation seed, 0 draws one from the OS")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
