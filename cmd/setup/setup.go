package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common/graceful"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/gsheet"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	cMetrics "github.com/MarcDufresne/tangerine-account-checker/internal/common/metrics"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/tangerine"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/repositories"
	"github.com/MarcDufresne/tangerine-account-checker/internal/services"

	"cloud.google.com/go/compute/metadata"
	"github.com/newrelic/go-agent/v3/integrations/nrzap"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type Setup struct {
	Config           config.Config
	NewRelic         *newrelic.Application
	RepoCloudStorage repositories.CloudStorageRepository
	Service          *services.Services
	Metrics          cMetrics.Metrics
}

// Init loads the configuration and builds every client. configPath may be
// empty to search the default locations.
func Init(configPath string) (setup *Setup, stopper []graceful.ProcessStopper, err error) {
	ctx := context.Background()

	var opts []config.LoadOption
	if configPath != "" {
		opts = append(opts, config.WithConfigFile(configPath))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return
	}

	setup = &Setup{
		Config: cfg,
	}

	logLevel := "debug"
	excludedDebugLevelOnEnvs := []config.Environment{
		config.DEV_ENV,
		config.UAT_ENV,
		config.PROD_ENV,
	}

	if slices.Contains(excludedDebugLevelOnEnvs, config.StringToEnvironment(cfg.App.Env)) {
		logLevel = "info"
	}
	if cfg.App.LogLevel != "" {
		logLevel = cfg.App.LogLevel
	}

	xlog.Init(cfg.App.Name,
		xlog.WithLogToOption(cfg.App.LogOption),
		xlog.WithLogEnvOption(cfg.App.Env),
		xlog.WithCaller(true),
		xlog.AddCallerSkip(2),
		xlog.WithLogLevel(logLevel))

	stopper = append(stopper, func(ctx context.Context) error {
		xlog.Sync()
		return nil
	})

	newRelic := setupNR(ctx, cfg)
	if newRelic != nil {
		stopper = append(stopper, func(ctx context.Context) error {
			deadline, _ := ctx.Deadline()
			newRelic.Shutdown(time.Until(deadline))
			return nil
		})
	}
	setup.NewRelic = newRelic

	// metrics
	mtc := cMetrics.New(cfg.App.Name)
	setup.Metrics = mtc

	creds, err := config.LoadTangerineCredentials(cfg.CredentialsFile)
	if err != nil {
		return
	}
	tangerineClient := tangerine.New(cfg.Tangerine, creds, mtc)

	sheetClient, err := gsheet.New(ctx, cfg.GoogleSheets, mtc)
	if err != nil {
		err = fmt.Errorf("failed to init google sheets client: %w", err)
		return
	}

	var reportRepo repositories.ReportRepository
	if cfg.CloudStorageConfig.BucketName != "" {
		if cfg.GcloudProjectID == "" && metadata.OnGCE() {
			cfg.GcloudProjectID, _ = metadata.ProjectIDWithContext(ctx)
		}
		if cfg.GcloudProjectID == "" {
			xlog.Info(ctx, "can not determine google cloud project, for local use set the gcloud_project_id in config json")
		}

		var storage repositories.CloudStorageRepository
		storage, err = repositories.NewCloudStorageRepository(&cfg)
		if err != nil {
			err = fmt.Errorf("failed to init cloud storage: %w", err)
			return
		}
		stopper = append(stopper, func(ctx context.Context) error {
			return storage.Close()
		})

		setup.RepoCloudStorage = storage
		reportRepo = repositories.NewReportRepository(storage, cfg.CloudStorageConfig.Path)
	}

	setup.Config = cfg
	setup.Service = services.New(cfg, tangerineClient, sheetClient, reportRepo, mtc)

	return
}

func setupNR(ctx context.Context, cfg config.Config) *newrelic.Application {
	if env := config.StringToEnvironment(cfg.App.Env); env != config.PROD_ENV || cfg.NewRelicLicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.App.Name),
		newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
		func(config *newrelic.Config) {
			config.Logger = nrzap.Transform(xlog.Logger())
		},
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		xlog.Errorf(ctx, "setupNR.NewApplication - %v", err)
		return nil
	}
	if err = app.WaitForConnection(15 * time.Second); nil != err {
		xlog.Errorf(ctx, "setupNR.WaitForConnection - %v", err)
	}
	return app
}

// DefaultConfigPath reads TANGERINE_CHECKER_CONFIG, empty when unset.
func DefaultConfigPath() string {
	return os.Getenv(config.EnvPrefix + "_CONFIG")
}
