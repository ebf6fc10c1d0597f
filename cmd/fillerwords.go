package cmd

import (
	"github.com/spf13/cobra"
)

var fillerWordsCmd = &cobra.Command{
	Use:   "fillerwords",
	Short: "Count filler words in a directory of transcript files",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, p, _, err := setup()
		if err != nil {
			return err
		}
		txtDir, _ := cmd.Flags().GetString("reference-path")
		resultFile, _ := cmd.Flags().GetString("evaluate-file")
		return p.FillerWordsAll(cmd.Context(), txtDir, resultFile)
	},
}

func init() {
	fillerWordsCmd.Flags().StringP("reference-path", "w", "", "directory with .txt transcripts")
	fillerWordsCmd.Flags().StringP("evaluate-file", "e", "", "summary CSV to write")
	_ = fillerWordsCmd.MarkFlagRequired("reference-path")
	_ = fillerWordsCmd.MarkFlagRequired("evaluate-file")
}
