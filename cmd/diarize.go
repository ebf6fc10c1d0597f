package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LiRem101/playing-with-voices/orchestrator"
)

var diarizeCmd = &cobra.Command{
	Use:   "diarize",
	Short: "Diarize all audio files in a directory into RTTM files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, _, err := setup()
		if err != nil {
			return err
		}
		audioDir, _ := cmd.Flags().GetString("audio-path")
		resultDir, _ := cmd.Flags().GetString("result-path")
		referenceDir, _ := cmd.Flags().GetString("reference-path")
		considerSpeakers, _ := cmd.Flags().GetBool("consider-speaker-no")
		if format, _ := cmd.Flags().GetString("audio-format"); format != "" {
			cfg.Audio.Format = format
		}
		if considerSpeakers && referenceDir == "" {
			return errors.New("reference path needed if number of speakers should be considered")
		}

		return p.DiarizeAll(cmd.Context(), orchestrator.DiarizeOptions{
			AudioDir:         audioDir,
			ResultDir:        resultDir,
			ReferenceDir:     referenceDir,
			ConsiderSpeakers: considerSpeakers,
			AccessToken:      viper.GetString("access_token"),
		})
	},
}

func init() {
	diarizeCmd.Flags().StringP("audio-path", "a", "", "directory with audio files")
	diarizeCmd.Flags().StringP("result-path", "r", "", "directory for the resulting RTTM files")
	diarizeCmd.Flags().StringP("reference-path", "w", "", "directory with reference RTTM files (for --consider-speaker-no)")
	diarizeCmd.Flags().StringP("audio-format", "f", "", "audio file extension (default from config, \".wav\")")
	diarizeCmd.Flags().BoolP("consider-speaker-no", "c", false, "pin the speaker count from the reference RTTM")
	_ = diarizeCmd.MarkFlagRequired("audio-path")
	_ = diarizeCmd.MarkFlagRequired("result-path")
}
