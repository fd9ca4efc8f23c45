package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/validation"
)

const (
	EnvPrefix      = "TANGERINE_CHECKER"
	configFileName = "config"
	configFileType = "json"
)

type loadOptions struct {
	filePath    string
	searchPaths []string
}

type LoadOption func(*loadOptions)

// WithConfigFile loads exactly this file instead of searching for config.json.
func WithConfigFile(path string) LoadOption {
	return func(o *loadOptions) {
		o.filePath = path
	}
}

func WithConfigFileSearchPaths(paths ...string) LoadOption {
	return func(o *loadOptions) {
		o.searchPaths = append(o.searchPaths, paths...)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "local")
	v.SetDefault("app.name", "tangerine-account-checker")
	v.SetDefault("app.log_option", "console")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.graceful_timeout", "10s")
	v.SetDefault("credentials_file", "credentials.json")
	v.SetDefault("tangerine.base_url", "https://secure.tangerine.ca")
	v.SetDefault("tangerine.locale", "en_CA")
	v.SetDefault("tangerine.timeout", "30s")
	v.SetDefault("google_sheets.credentials_file", "client_secret.json")
	v.SetDefault("google_sheets.value_input_option", "RAW")
	v.SetDefault("cloud_storage.base_url", "https://storage.googleapis.com")
	v.SetDefault("cloud_storage.path", "tangerine-account-checker")
	v.SetDefault("sheet_id", "")
	v.SetDefault("new_relic_license_key", "")
	v.SetDefault("gcloud_project_id", "")
	v.SetDefault("cloud_storage.bucket_name", "")
	v.SetDefault("metrics.textfile_path", "")
}

// Load reads config.json (or the file given with WithConfigFile), applies
// TANGERINE_CHECKER_* environment overrides and validates the result.
func Load(opts ...LoadOption) (cfg Config, err error) {
	o := &loadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.searchPaths) == 0 {
		o.searchPaths = []string{"/config", ".", "./config"}
	}

	v := viper.New()
	setDefaults(v)

	if o.filePath != "" {
		v.SetConfigFile(o.filePath)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		for _, p := range o.searchPaths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	err = v.Unmarshal(&cfg, viper.DecoderConfigOption(func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	}))
	if err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	// viper lower-cases map keys, account names are read from the raw file.
	cfg.Mapping, err = readMapping(v.ConfigFileUsed())
	if err != nil {
		return cfg, err
	}
	if len(cfg.Mapping) == 0 {
		return cfg, fmt.Errorf("%w: %s", common.ErrMappingEmpty, v.ConfigFileUsed())
	}

	if err = validation.ValidateStruct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", v.ConfigFileUsed(), err)
	}

	return cfg, nil
}

func readMapping(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var doc struct {
		Mapping Mapping `json:"mapping"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse mapping in %s: %w", path, err)
	}

	return doc.Mapping, nil
}
