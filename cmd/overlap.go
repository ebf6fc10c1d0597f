package cmd

import (
	"github.com/spf13/cobra"
)

var overlapCmd = &cobra.Command{
	Use:   "overlap",
	Short: "Compute overlapping speech totals for a directory of RTTM files",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, _, err := setup()
		if err != nil {
			return err
		}
		rttmDir, _ := cmd.Flags().GetString("reference-path")
		resultFile, _ := cmd.Flags().GetString("evaluate-file")
		return p.OverlapAll(cmd.Context(), rttmDir, resultFile)
	},
}

func init() {
	overlapCmd.Flags().StringP("reference-path", "w", "", "directory with RTTM files")
	overlapCmd.Flags().StringP("evaluate-file", "e", "", "summary CSV to write")
	_ = overlapCmd.MarkFlagRequired("reference-path")
	_ = overlapCmd.MarkFlagRequired("evaluate-file")
}
