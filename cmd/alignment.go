package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LiRem101/playing-with-voices/orchestrator"
)

var alignCmd = &cobra.Command{
	Use:   "align",
	Short: "Force-align audio files against their transcripts into word tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, _, err := setup()
		if err != nil {
			return err
		}
		audioDir, _ := cmd.Flags().GetString("audio-path")
		resultDir, _ := cmd.Flags().GetString("result-path")
		transcriptDir, _ := cmd.Flags().GetString("reference-path")
		if format, _ := cmd.Flags().GetString("audio-format"); format != "" {
			cfg.Audio.Format = format
		}

		return p.AlignAll(cmd.Context(), orchestrator.AlignOptions{
			AudioDir:      audioDir,
			TranscriptDir: transcriptDir,
			ResultDir:     resultDir,
		})
	},
}

func init() {
	alignCmd.Flags().StringP("audio-path", "a", "", "directory with audio files")
	alignCmd.Flags().StringP("result-path", "r", "", "directory for the resulting word tables")
	alignCmd.Flags().StringP("reference-path", "w", "", "directory with .txt transcripts")
	alignCmd.Flags().StringP("audio-format", "f", "", "audio file extension (default from config, \".wav\")")
	_ = alignCmd.MarkFlagRequired("audio-path")
	_ = alignCmd.MarkFlagRequired("result-path")
	_ = alignCmd.MarkFlagRequired("reference-path")
}
