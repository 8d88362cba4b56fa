package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbonscope/carbonscope/internal/dqi"
)

func newDQICmd() *cobra.Command {
	var ind dqi.Indicator

	cmd := &cobra.Command{
		Use:   "dqi",
		Short: "Score a data-quality indicator",
		Long:  "DQI scores the five pedigree dimensions (1 = best, 5 = worst) as a weighted\naverage and maps the score to a rating band.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			score := dqi.Score(ind, dqi.DefaultWeights())
			rating := dqi.Rate(score, dqi.DefaultThresholds())
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f\t%s\n", score, rating)
			return nil
		},
	}

	cmd.Flags().IntVar(&ind.Technological, "technological", 3, "technological representativeness (1-5)")
	cmd.Flags().IntVar(&ind.Temporal, "temporal", 3, "temporal representativeness (1-5)")
	cmd.Flags().IntVar(&ind.Geographical, "geographical", 3, "geographical representativeness (1-5)")
	cmd.Flags().IntVar(&ind.Completeness, "completeness", 3, "data completeness (1-5)")
	cmd.Flags().IntVar(&ind.Reliability, "reliability", 3, "data reliability (1-5)")

	return cmd
}
