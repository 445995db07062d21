package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"loc-editor/internal/app"
	"loc-editor/internal/config"
	"loc-editor/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	log     logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "loc-editor",
	Short: "Editor for the localization text files of a game client",
	Long: `Loc Editor browses the UTF-16 text files under a client folder, edits them
in a notepad window and runs the loc compiler to rebuild the client pack.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile, cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err = logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApplication(cfg, log)
		if err != nil {
			return fmt.Errorf("application initialization failed: %w", err)
		}

		return application.Run()
	},
}

func init() {
	// Allow launching from Explorer on Windows.
	cobra.MousetrapHelpText = ""

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
