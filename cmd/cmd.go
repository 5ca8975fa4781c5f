package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configDir string
	clearData bool
)

var rootCmd = &cobra.Command{
	Use:   "tunjangan-pas",
	Short: "Tunjangan PAS",
	Long:  `Administrasi pegawai, tunjangan, jabatan, unit kerja dan notifikasi.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*internal.Config, error) {
	// Check if we're running in Docker environment
	if os.Getenv("APP_ENV") == "production" || os.Getenv("DOCKER_ENV") == "true" {
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	// Load configuration from file (development)
	v := viper.New()
	internal.SetDefaults(v)
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix("ENV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setup loads the configuration and installs the process logger.
func setup() (*internal.Config, error) {
	cfg, err := loadConfig(configDir)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing config.yml")
	seedCmd.Flags().BoolVar(&clearData, "clear", false, "Clear existing data before seeding")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(browseCmd)
}
