package services

import (
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/gsheet"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/metrics"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/tangerine"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/repositories"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	tangerineClient tangerine.Client
	sheetClient     gsheet.Client
	// reportRepo is nil when no bucket is configured.
	reportRepo repositories.ReportRepository
	metrics    metrics.Metrics

	common service

	Holding *holding
}

func New(
	conf config.Config,
	tangerineClient tangerine.Client,
	sheetClient gsheet.Client,
	reportRepo repositories.ReportRepository,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:            conf,
		tangerineClient: tangerineClient,
		sheetClient:     sheetClient,
		reportRepo:      reportRepo,
		metrics:         metrics,
	}
	srv.common.srv = srv
	srv.Holding = (*holding)(&srv.common)

	return srv
}
