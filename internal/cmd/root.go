package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/opsline/switchboard/internal/config"
	"github.com/opsline/switchboard/internal/logging"
	"github.com/opsline/switchboard/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "switchboard",
	Short: "AI call-center decision pipeline dashboard",
	Long: `Switchboard visualizes an AI call-center's decision pipeline: a primary
response agent, a supervisor review agent, and an escalation agent working
a contact in sequence.

Runs come from the built-in demo sequencer or from a snapshot file that is
reloaded live as it changes on disk.`,
	RunE: runDashboard,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/switchboard/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	// Dashboard flags
	rootCmd.Flags().String("snapshot", "", "pipeline snapshot file to load and watch")
	rootCmd.Flags().String("theme", "", "color theme (default, monokai, dracula, nord, solarized, tokyo-night)")
	rootCmd.Flags().Bool("demo", true, "autostart a demo run on launch")
	rootCmd.Flags().Float64("speed", 1.0, "demo playback speed multiplier")
	rootCmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().String("log-file", "", "log file path")

	_ = viper.BindPFlag("snapshot.path", rootCmd.Flags().Lookup("snapshot"))
	_ = viper.BindPFlag("tui.theme", rootCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("demo.autostart", rootCmd.Flags().Lookup("demo"))
	_ = viper.BindPFlag("demo.speed", rootCmd.Flags().Lookup("speed"))
	_ = viper.BindPFlag("logging.level", rootCmd.Flags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.file", rootCmd.Flags().Lookup("log-file"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/switchboard")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("SWITCHBOARD")
	// Replace dots with underscores for nested keys in env vars
	// e.g., SWITCHBOARD_SNAPSHOT_PATH for snapshot.path
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.NewLoggerWithRotation(cfg.Logging.ResolveFile(), cfg.Logging.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	logger.Info("starting switchboard",
		"version", version,
		"theme", cfg.TUI.Theme,
		"snapshot", cfg.Snapshot.ResolvePath())

	app := tui.New(cfg, logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}

	return nil
}
