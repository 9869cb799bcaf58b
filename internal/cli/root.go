package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/one-dna/disclose/internal/model"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "disclose",
	Short: "Disclose - anti-greenwashing content validation",
	Long: `Disclose validates a sustainability content set against an editorial
disclosure policy before anything is published.

Every substantive claim must be paired with scoped evidence, an explicit
statement of what is NOT guaranteed, and any local-condition caveats.
Pages that fail these rules are blocked from publication; the full error
list is reported in one pass so a single editorial round can fix it.

Disclose gates publication. It does not decide what is true.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("disclose v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.disclose/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}
		viper.AddConfigPath(home + "/.disclose")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match DISCLOSE_*
	viper.SetEnvPrefix("DISCLOSE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// loadConfig layers the config file and environment over the defaults
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()

	if v := viper.GetString("site.base_url"); v != "" {
		cfg.Site.BaseURL = v
	}
	if v := viper.GetString("site.organization_name"); v != "" {
		cfg.Site.OrganizationName = v
	}
	if v := viper.GetDuration("linkcheck.timeout"); v > 0 {
		cfg.LinkCheck.Timeout = v
	}
	if v := viper.GetInt("linkcheck.max_workers"); v > 0 {
		cfg.LinkCheck.MaxWorkers = v
	}
	if v := viper.GetInt("concurrency.validation_workers"); v > 0 {
		cfg.Concurrency.ValidationWorkers = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}
	if v := viper.GetString("llm.provider"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := viper.GetString("llm.model"); v != "" {
		cfg.LLM.Model = v
	}
	cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Output.Verbose = viper.GetBool("verbose")

	return cfg
}

// newLogger builds the CLI logger; verbose switches to development output
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Sampling = nil
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
