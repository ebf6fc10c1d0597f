package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LiRem101/playing-with-voices/stats"
)

var mannWhitneyCmd = &cobra.Command{
	Use:   "mannwhitney",
	Short: "Run the Mann-Whitney U test on two sample files",
	Long:  `Reads two files with one floating-point datapoint per line and prints the U statistic and p-value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pathX, _ := cmd.Flags().GetString("dataset-x")
		pathY, _ := cmd.Flags().GetString("dataset-y")
		alternative, _ := cmd.Flags().GetString("alternative")

		x, err := stats.LoadSamples(pathX)
		if err != nil {
			return err
		}
		y, err := stats.LoadSamples(pathY)
		if err != nil {
			return err
		}
		u, p, err := stats.MannWhitney(x, y, stats.Alternative(alternative))
		if err != nil {
			return err
		}
		fmt.Printf("Mann-Whitney U statistic: %v, p-value: %v\n", u, p)
		return nil
	},
}

func init() {
	mannWhitneyCmd.Flags().StringP("dataset-x", "x", "", "first sample file")
	mannWhitneyCmd.Flags().StringP("dataset-y", "y", "", "second sample file")
	mannWhitneyCmd.Flags().String("alternative", "two-sided", "alternative hypothesis: two-sided, greater or less")
	_ = mannWhitneyCmd.MarkFlagRequired("dataset-x")
	_ = mannWhitneyCmd.MarkFlagRequired("dataset-y")
}
