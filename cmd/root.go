// Package cmd wires the pipeline routines into a cobra CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LiRem101/playing-with-voices/config"
	"github.com/LiRem101/playing-with-voices/orchestrator"
)

var rootCmd = &cobra.Command{
	Use:   "pwv",
	Short: "Speaker diarization and forced alignment for recorded conversations",
	Long: `pwv computes speaker-diarization and forced-alignment annotations for
directories of audio recordings, evaluates diarization output against
reference annotations and derives secondary statistics (speaker overlap,
filler-word rate) for hypothesis testing. The neural models run as HTTP
sidecar services; their endpoints are set in config.yaml.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("access-token", "t", "", "Hugging Face access token for gated model weights")
	rootCmd.PersistentFlags().String("log-level", "", "log level (overrides config)")

	viper.SetEnvPrefix("PWV")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("access_token", rootCmd.PersistentFlags().Lookup("access-token"))
	_ = viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(diarizeCmd)
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(overlapCmd)
	rootCmd.AddCommand(fillerWordsCmd)
	rootCmd.AddCommand(csv2rttmCmd)
	rootCmd.AddCommand(mannWhitneyCmd)
}

// setup loads config and builds the logger and pipeline shared by the
// batch subcommands.
func setup() (*config.Root, *orchestrator.Pipeline, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	log := logrus.New()
	lvl := cfg.Pipeline.LogLvl
	if s := viper.GetString("log_level"); s != "" {
		lvl = s
	}
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return cfg, orchestrator.New(cfg, log), log, nil
}
