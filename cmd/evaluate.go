package cmd

import (
	"github.com/spf13/cobra"

	"github.com/LiRem101/playing-with-voices/orchestrator"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score hypothesis RTTMs against references into a summary CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, _, err := setup()
		if err != nil {
			return err
		}
		referenceDir, _ := cmd.Flags().GetString("reference-path")
		hypothesisDir, _ := cmd.Flags().GetString("result-path")
		audioDir, _ := cmd.Flags().GetString("audio-path")
		resultFile, _ := cmd.Flags().GetString("evaluate-file")
		if format, _ := cmd.Flags().GetString("audio-format"); format != "" {
			cfg.Audio.Format = format
		}

		return p.EvaluateAll(cmd.Context(), orchestrator.EvaluateOptions{
			ReferenceDir:  referenceDir,
			HypothesisDir: hypothesisDir,
			AudioDir:      audioDir,
			ResultFile:    resultFile,
		})
	},
}

func init() {
	evaluateCmd.Flags().StringP("reference-path", "w", "", "directory with reference RTTM files")
	evaluateCmd.Flags().StringP("result-path", "r", "", "directory with hypothesis RTTM files")
	evaluateCmd.Flags().StringP("audio-path", "a", "", "directory with the audio files")
	evaluateCmd.Flags().StringP("evaluate-file", "e", "", "summary CSV to write")
	evaluateCmd.Flags().StringP("audio-format", "f", "", "audio file extension (default from config, \".wav\")")
	_ = evaluateCmd.MarkFlagRequired("reference-path")
	_ = evaluateCmd.MarkFlagRequired("result-path")
	_ = evaluateCmd.MarkFlagRequired("audio-path")
	_ = evaluateCmd.MarkFlagRequired("evaluate-file")
}
