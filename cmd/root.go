package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "resume-to-job"
)

type Config struct {
	// Provider selects the search backend: "aggregator" (batched, default)
	// or "adzuna" (legacy per-skill fan-out).
	Provider string `mapstructure:"provider"`
	PageSize int    `mapstructure:"page-size"`

	Search     *SearchConfig     `mapstructure:"search"`
	Inputs     *InputsConfig     `mapstructure:"inputs"`
	Adzuna     *AdzunaConfig     `mapstructure:"adzuna"`
	Aggregator *AggregatorConfig `mapstructure:"aggregator"`
	Recommend  *RecommendConfig  `mapstructure:"recommend"`
}

type SearchConfig struct {
	MaxTerms       int `mapstructure:"max-terms"`
	ResultsPerPage int `mapstructure:"results-per-page"`
	Concurrency    int `mapstructure:"concurrency"`
}

type InputsConfig struct {
	// AnalysisFile is the resume-analysis document produced by the external
	// parser service.
	AnalysisFile string `mapstructure:"analysis-file"`
	// SkillsFile is the manually selected skills document.
	SkillsFile string `mapstructure:"skills-file"`
}

type AdzunaConfig struct {
	AppIDFile  string `mapstructure:"app-id-file"`
	AppKeyFile string `mapstructure:"app-key-file"`
	Country    string `mapstructure:"country"`
}

type AggregatorConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

type RecommendConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile string `mapstructure:"api-key-file"`
	Model      string `mapstructure:"model"`
	MaxRetries int    `mapstructure:"max-retries"`
	MaxTitles  int    `mapstructure:"max-titles"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-to-job is a cli that matches resume skills against live job listings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	envBindings := map[string]string{
		"adzuna.app-id-file":            "ADZUNA_APP_ID_FILE",
		"adzuna.app-key-file":           "ADZUNA_APP_KEY_FILE",
		"recommend.gemini.api-key-file": "GEMINI_API_KEY_FILE",
	}
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-to-job.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config is needed only for the search command. If there is no config,
	// we can skip initialization.
	if searchCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error.
	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
