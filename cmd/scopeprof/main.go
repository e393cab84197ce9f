package main

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/getsentry/scopeprof/internal/envutil"
	"github.com/getsentry/scopeprof/internal/logutil"
)

var release string

var rootCmd = &cobra.Command{
	Use:           "scopeprof",
	Short:         "In-process call-scope profiler",
	Long:          "scopeprof records the time spent in instrumented scopes and prints the resulting call tree.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	config, err := envutil.Load()
	if err != nil {
		logutil.ConfigureLogger(zerolog.WarnLevel)
		log.Warn().Err(err).Msg("invalid configuration, using defaults")
		config = envutil.Default()
	} else {
		level, _ := config.Level()
		logutil.ConfigureLogger(level)
	}

	err = sentry.Init(sentry.ClientOptions{
		Dsn:         config.SentryDSN,
		Environment: config.Environment,
		Release:     release,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("can't initialize sentry")
	}
	defer sentry.Flush(5 * time.Second)

	rootCmd.Version = release
	rootCmd.AddCommand(newDemoCmd(config))
	rootCmd.AddCommand(envCmd)

	if err := rootCmd.Execute(); err != nil {
		sentry.CaptureException(err)
		log.Error().Err(err).Msg("command failed")
		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables read by the profiler",
	RunE: func(cmd *cobra.Command, _ []string) error {
		d, err := envutil.Description()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write([]byte(d + "\n"))
		return err
	},
}
