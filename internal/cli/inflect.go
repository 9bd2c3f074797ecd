package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	inflect "github.com/english-study-helper/inflect"
)

var (
	inflectPOS      string
	inflectFallback bool
	inflectForm     string
)

var inflectCmd = &cobra.Command{
	Use:   "inflect <phrase>",
	Short: "Generate inflected forms of a base phrase",
	Long: `Inflect prints the known or generated inflections of a base phrase.

Example:
  studyhelper inflect --pos noun "box"
  studyhelper inflect --fallback --pos verb --form vc "smile"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInflect,
}

func init() {
	rootCmd.AddCommand(inflectCmd)

	inflectCmd.Flags().StringVar(&inflectPOS, "pos", "", "target part of speech (noun, verb, adjective, adverb; empty = all)")
	inflectCmd.Flags().BoolVar(&inflectFallback, "fallback", false, "generate missing forms heuristically")
	inflectCmd.Flags().StringVar(&inflectForm, "form", "", "print only this category label (np, vs, vc, ...)")
}

func runInflect(cmd *cobra.Command, args []string) error {
	inf, err := newInflector()
	if err != nil {
		return err
	}
	phrase := strings.Join(args, " ")

	var res *inflect.Result
	switch inflectPOS {
	case "n", "noun":
		res = inf.InflectNoun(phrase, inflectFallback)
	case "v", "verb":
		res = inf.InflectVerb(phrase, inflectFallback)
	case "a", "adj", "adjective":
		res = inf.InflectAdjective(phrase, inflectFallback)
	case "r", "adv", "adverb":
		res = inf.InflectAdverb(phrase, inflectFallback)
	case "":
		res = inf.Inflect(phrase, inflectFallback)
	default:
		return fmt.Errorf("unknown part of speech %q", inflectPOS)
	}

	if inflectForm != "" {
		for _, value := range res.Forms[inflect.Label(inflectForm)] {
			fmt.Println(value)
		}
		return nil
	}

	fmt.Printf("original: %s\n", res.Original)
	orderedForms(res)(func(label inflect.Label, values []string) bool {
		fmt.Printf("%s: %s\n", label, strings.Join(values, ", "))
		return true
	})
	if len(res.PhraseLabels) > 0 {
		fmt.Printf("phrase-sourced: %s\n", joinLabels(res.PhraseLabels))
	}
	if len(res.TokenLabels) > 0 {
		fmt.Printf("token-sourced: %s\n", joinLabels(res.TokenLabels))
	}
	if res.OccurrenceCost != 0 {
		fmt.Printf("occurrence cost: %.2f\n", res.OccurrenceCost)
	}
	return nil
}

// labelOrder fixes the display order of category labels.
var labelOrder = []inflect.Label{
	inflect.LabelNounPlural,
	inflect.LabelVerbSingular,
	inflect.LabelVerbPresentParticiple,
	inflect.LabelVerbPast,
	inflect.LabelVerbPastParticiple,
	inflect.LabelAdjectiveComparative,
	inflect.LabelAdjectiveSuperlative,
	inflect.LabelAdverbComparative,
	inflect.LabelAdverbSuperlative,
}

// orderedForms yields the result's form lists in the fixed label order.
func orderedForms(res *inflect.Result) func(func(inflect.Label, []string) bool) {
	return func(yield func(inflect.Label, []string) bool) {
		for _, label := range labelOrder {
			values, ok := res.Forms[label]
			if !ok {
				continue
			}
			if !yield(label, values) {
				return
			}
		}
	}
}

func joinLabels(labels []inflect.Label) string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[i] = string(l)
	}
	return strings.Join(out, ",")
}
