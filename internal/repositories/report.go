package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"

	"github.com/MarcDufresne/tangerine-account-checker/internal/models"
	"github.com/MarcDufresne/tangerine-account-checker/internal/monitoring"
)

const maxReportNameAttempts = 100

//go:generate mockgen -source=report.go -destination=mock/report.go -package=mock

// ReportRepository stores run reports as CSV objects.
type ReportRepository interface {
	Save(ctx context.Context, report models.RunReport) (url string, err error)
}

type reportRepository struct {
	storage  CloudStorageRepository
	basePath string
}

var _ ReportRepository = (*reportRepository)(nil)

func NewReportRepository(storage CloudStorageRepository, basePath string) ReportRepository {
	return &reportRepository{storage: storage, basePath: basePath}
}

func (r *reportRepository) Save(ctx context.Context, report models.RunReport) (url string, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	payload := models.NewRunReportPayload(r.basePath, report)
	if err = r.freeName(ctx, &payload); err != nil {
		return "", err
	}

	writer := r.storage.NewWriter(ctx, &payload, "text/csv")
	if err = report.WriteCSV(writer); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write report %s: %w", payload.GetFilePath(), err)
	}

	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to upload report %s: %w", payload.GetFilePath(), err)
	}

	return r.storage.GetURL(&payload), nil
}

// freeName suffixes the report file name with _1, _2, ... until no object
// with that name exists, so two runs in the same second keep both reports.
func (r *reportRepository) freeName(ctx context.Context, payload *models.CloudStoragePayload) error {
	base := strings.TrimSuffix(payload.Filename, ".csv")
	for n := 1; n <= maxReportNameAttempts; n++ {
		if exists, _ := r.storage.IsObjectExist(ctx, payload); !exists {
			return nil
		}
		payload.Filename = fmt.Sprintf("%s_%d.csv", base, n)
	}
	return fmt.Errorf("%w: %s", common.ErrReportNameTaken, payload.GetFilePath())
}
