package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <phrase>",
	Short: "Resolve an inflected phrase to ranked base forms",
	Long: `Search prints candidate base forms for a possibly-inflected phrase,
one per line, best (lowest cost) first.

Example:
  studyhelper search "running"
  studyhelper search "big dogs"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	inf, err := newInflector()
	if err != nil {
		return err
	}
	for _, cand := range inf.Search(strings.Join(args, " ")) {
		fmt.Printf("%s\t%.2f\t%s\n", cand.Phrase, cand.Cost, joinLabels(cand.Labels))
	}
	return nil
}
