package config

import (
	"time"
)

type (
	Config struct {
		App                App                `json:"app"`
		SheetID            string             `json:"sheet_id" validate:"required"`
		Mapping            Mapping            `json:"-" validate:"min=1,dive"`
		CredentialsFile    string             `json:"credentials_file" validate:"required"`
		GcloudProjectID    string             `json:"gcloud_project_id"`
		NewRelicLicenseKey string             `json:"new_relic_license_key"`
		Tangerine          TangerineConfig    `json:"tangerine"`
		GoogleSheets       GoogleSheetsConfig `json:"google_sheets"`
		CloudStorageConfig CloudStorageConfig `json:"cloud_storage"`
		Metrics            MetricsConfig      `json:"metrics"`
	}

	App struct {
		Env             string        `json:"env"`
		Name            string        `json:"name" validate:"required"`
		LogOption       string        `json:"log_option" validate:"omitempty,oneof=console json"`
		LogLevel        string        `json:"log_level"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
	}

	TangerineConfig struct {
		BaseURL string        `json:"base_url" validate:"required,httpurl"`
		Locale  string        `json:"locale" validate:"required"`
		Timeout time.Duration `json:"timeout"`
	}

	GoogleSheetsConfig struct {
		// CredentialsFile is the service account key used for the Sheets API.
		CredentialsFile  string `json:"credentials_file" validate:"required"`
		ValueInputOption string `json:"value_input_option" validate:"oneof=RAW USER_ENTERED"`
		// Endpoint overrides the Sheets API base URL, empty means the public API.
		Endpoint string `json:"endpoint"`
	}

	// CloudStorageConfig enables the run report upload when BucketName is set.
	CloudStorageConfig struct {
		BaseURL    string `json:"base_url"`
		BucketName string `json:"bucket_name"`
		Path       string `json:"path"`
	}

	MetricsConfig struct {
		// TextfilePath is written in node exporter textfile format after each run.
		TextfilePath string `json:"textfile_path"`
	}
)
