package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/sumcalc/internal/app"
	"github.com/san-kum/sumcalc/internal/config"
	"github.com/san-kum/sumcalc/internal/locale"
	"github.com/san-kum/sumcalc/internal/logging"
)

var (
	configFile string
	lang       string
	plain      bool
	logLevel   string
)

// main runs a single interactive session on stdin/stdout. It exits with
// status 1 only when the session cannot be set up.
func main() {
	rootCmd := &cobra.Command{
		Use:          "sumcalc",
		Short:        "interactive calculator for the sum of three real numbers",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runSession,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", config.DefaultLang, "message language ("+strings.Join(locale.Languages(), ", ")+")")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colours")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "diagnostic log level")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Plain)
	if err != nil {
		return err
	}
	log.Debug().Str("lang", cfg.Lang).Bool("plain", cfg.Plain).Msg("starting session")

	return app.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, log).Run()
}

// loadConfig layers defaults, the config file, the environment and finally
// any flags set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Lang = lang
	}
	if flags.Changed("plain") {
		cfg.Plain = plain
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
