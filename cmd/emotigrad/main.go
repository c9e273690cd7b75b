// Package main provides the emotigrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emotigrad-ml/emotigrad/emotion"
)

const version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "emotigrad",
	Short: "Emotional support for gradient descent",
	Long: `emotigrad wraps gradient-descent optimizers and comments on the loss
trend as training progresses, in the personality of your choice.

Commands:
  version        Show version
  personalities  List the built-in personalities
  train          Run a small linear-regression training demo`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emotigrad %s\n", version)
	},
}

var personalitiesCmd = &cobra.Command{
	Use:   "personalities",
	Short: "List the built-in personalities",
	Run: func(cmd *cobra.Command, args []string) {
		for name := range emotion.NewRegistry().Names() {
			if noColor {
				fmt.Println(name)
				continue
			}
			fmt.Println(emotion.PersonalityStyle(name).Render(name))
		}
	},
}

var noColor bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(personalitiesCmd)
	rootCmd.AddCommand(trainCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
