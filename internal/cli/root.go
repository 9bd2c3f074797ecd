// Package cli implements the studyhelper command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	inflect "github.com/english-study-helper/inflect"
)

var (
	settingsFile string
	dataPath     string
	verbose      bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "studyhelper",
	Short: "English vocabulary helper built on an inflection dictionary",
	Long: `studyhelper resolves inflected English words to their base forms,
generates inflections from base forms, and analyzes texts into
vocabulary reports for language learners.

The engine is backed by a flat tab-separated dictionary of known
inflections; unknown regular forms fall back to suffix heuristics.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("studyhelper v0.2.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (YAML)")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "data/english_inflections.tsv", "inflection data file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in environment variables that match STUDYHELPER_*.
func initConfig() {
	viper.SetEnvPrefix("STUDYHELPER")
	viper.AutomaticEnv()
}

// newInflector loads the inflection engine from the configured data path.
func newInflector() (*inflect.Inflector, error) {
	path := viper.GetString("data")
	if verbose {
		fmt.Fprintf(os.Stderr, "loading inflection data from %s\n", path)
	}
	return inflect.New(path)
}
