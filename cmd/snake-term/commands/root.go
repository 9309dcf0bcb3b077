package commands

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/toroidal/snake/term"
	"github.com/toroidal/snake/version"
)

var rootCmd = &cobra.Command{
	Use:     "snake-term",
	Short:   "snake-term plays the classic game in the terminal",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		setupLogging()
		if err := term.Run(newState(), newState); err != nil {
			log.WithError(err).Fatal("terminal session failed")
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
