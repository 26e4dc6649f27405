package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Sources   SourcesConfig   `yaml:"sources" mapstructure:"sources"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Transform TransformConfig `yaml:"transform" mapstructure:"transform"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DataConfig configures the on-disk data layout. Every stage takes its paths
// from here; nothing hardcodes a directory.
type DataConfig struct {
	RawDir       string `yaml:"raw_dir" mapstructure:"raw_dir"`
	ProcessedDir string `yaml:"processed_dir" mapstructure:"processed_dir"`
	ManifestPath string `yaml:"manifest_path" mapstructure:"manifest_path"`
	HealthFile   string `yaml:"health_file" mapstructure:"health_file"`
	FoodFile     string `yaml:"food_file" mapstructure:"food_file"`
	ProviderFile string `yaml:"provider_file" mapstructure:"provider_file"`
}

// SourcesConfig holds the upstream dataset locations.
type SourcesConfig struct {
	CDCPlacesURL  string `yaml:"cdc_places_url" mapstructure:"cdc_places_url"`
	USDAAtlasURL  string `yaml:"usda_atlas_url" mapstructure:"usda_atlas_url"`
	USDASheet     string `yaml:"usda_sheet" mapstructure:"usda_sheet"`
	NPPESAPIURL   string `yaml:"nppes_api_url" mapstructure:"nppes_api_url"`
	NPPESState    string `yaml:"nppes_state" mapstructure:"nppes_state"`
	NPPESTaxonomy string `yaml:"nppes_taxonomy" mapstructure:"nppes_taxonomy"`
	NPPESPageSize int    `yaml:"nppes_page_size" mapstructure:"nppes_page_size"`
}

// FetchConfig configures the HTTP fetcher.
type FetchConfig struct {
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// TransformConfig configures the merge-and-score pipeline.
// AssumeNotDesert and AssumeUrban are the fill defaults for tracts with no
// food-access match; both under-count deserts and are deliberately exposed
// here so a reviewer can flip them per run.
type TransformConfig struct {
	StateAbbr       string   `yaml:"state_abbr" mapstructure:"state_abbr"`
	StateName       string   `yaml:"state_name" mapstructure:"state_name"`
	Measures        []string `yaml:"measures" mapstructure:"measures"`
	CountyFilter    string   `yaml:"county_filter" mapstructure:"county_filter"`
	AssumeNotDesert bool     `yaml:"assume_not_desert" mapstructure:"assume_not_desert"`
	AssumeUrban     bool     `yaml:"assume_urban" mapstructure:"assume_urban"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MEDDESERT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.raw_dir", "data/raw")
	v.SetDefault("data.processed_dir", "data/processed")
	v.SetDefault("data.manifest_path", "data/acquire.db")
	v.SetDefault("data.health_file", "cdc_places_tracts.csv")
	v.SetDefault("data.food_file", "usda_food_access.xlsx")
	v.SetDefault("data.provider_file", "ca_providers_sample.csv")
	v.SetDefault("sources.cdc_places_url", "https://data.cdc.gov/api/views/cwsq-ngmh/rows.csv?accessType=DOWNLOAD")
	v.SetDefault("sources.usda_atlas_url", "https://ers.usda.gov/sites/default/files/_laserfiche/DataFiles/80591/FoodAccessResearchAtlasData2019.xlsx?v=57750")
	v.SetDefault("sources.usda_sheet", "Food Access Research Atlas")
	v.SetDefault("sources.nppes_api_url", "https://npiregistry.cms.hhs.gov/api/")
	v.SetDefault("sources.nppes_state", "CA")
	v.SetDefault("sources.nppes_taxonomy", "Family Medicine")
	v.SetDefault("sources.nppes_page_size", 200)
	v.SetDefault("fetch.user_agent", "medical-desert/1.0")
	v.SetDefault("fetch.timeout_secs", 300)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("transform.state_abbr", "CA")
	v.SetDefault("transform.state_name", "California")
	v.SetDefault("transform.measures", []string{
		"DIABETES", "CHD", "STROKE", "OBESITY", "BPHIGH", "CSMOKING", "CHECKUP", "ACCESS2",
	})
	v.SetDefault("transform.county_filter", "santa clara")
	v.SetDefault("transform.assume_not_desert", true)
	v.SetDefault("transform.assume_urban", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
