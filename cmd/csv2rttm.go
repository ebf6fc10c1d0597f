package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LiRem101/playing-with-voices/align"
)

var csv2rttmCmd = &cobra.Command{
	Use:   "csv2rttm",
	Short: "Convert a speaker-assigned alignment CSV into an RTTM file",
	Long: `Converts a word table of the form "word, start, end, score, speaker" into
RTTM. Utterances of the same speaker closer together than the configured
merge gap (0.5 seconds by default) are merged.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, _, err := setup()
		if err != nil {
			return err
		}
		csvPath, _ := cmd.Flags().GetString("reference-path")
		rttmPath, _ := cmd.Flags().GetString("result-path")
		return align.ConvertFile(csvPath, rttmPath, cfg.Analysis.MergeGap)
	},
}

func init() {
	csv2rttmCmd.Flags().StringP("reference-path", "w", "", "speaker-assigned alignment CSV")
	csv2rttmCmd.Flags().StringP("result-path", "r", "", "RTTM file to write")
	_ = csv2rttmCmd.MarkFlagRequired("reference-path")
	_ = csv2rttmCmd.MarkFlagRequired("result-path")
}
