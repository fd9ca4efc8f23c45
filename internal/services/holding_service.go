package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/gsheet"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/models"
	"github.com/MarcDufresne/tangerine-account-checker/internal/monitoring"
)

const logPrefixHolding = "[HOLDING]"

//go:generate mockgen -source=holding_service.go -destination=mock/holding_service.go -package=mock

type HoldingService interface {
	// FetchTargetAccounts returns the mutual fund accounts keyed by display name.
	// It needs an open Tangerine session.
	FetchTargetAccounts(ctx context.Context) (accounts map[string]models.AccountDetail, err error)
	// Reconcile writes one row per mapping pair, in mapping order. Results of the
	// pairs written before a failure are returned with the error.
	Reconcile(ctx context.Context, accounts map[string]models.AccountDetail, mapping config.Mapping, spreadsheet gsheet.Spreadsheet) (results []models.ReconcileResult, err error)
	Run(ctx context.Context) (report models.RunReport, err error)
	ListAccounts(ctx context.Context) (accounts []models.AccountSummary, err error)
}

type holding service

var _ HoldingService = (*holding)(nil)

func (h *holding) FetchTargetAccounts(ctx context.Context) (accounts map[string]models.AccountDetail, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	xlog.Info(ctx, logPrefixHolding, xlog.String("message", "getting accounts"))

	summaries, err := h.srv.tangerineClient.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	accounts = make(map[string]models.AccountDetail)
	for _, summary := range summaries {
		if !summary.IsMutualFund() {
			continue
		}

		detail, err := h.srv.tangerineClient.GetAccount(ctx, summary.Number)
		if err != nil {
			return nil, err
		}
		accounts[summary.DisplayName] = detail
	}

	xlog.Info(ctx, logPrefixHolding, xlog.String("message", fmt.Sprintf("found %d accounts", len(accounts))))

	return accounts, nil
}

func (h *holding) Reconcile(ctx context.Context, accounts map[string]models.AccountDetail, mapping config.Mapping, spreadsheet gsheet.Spreadsheet) (results []models.ReconcileResult, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	for _, pair := range mapping {
		var res models.ReconcileResult
		res, err = h.reconcilePair(ctx, accounts, pair, spreadsheet)
		if err != nil {
			return results, fmt.Errorf("account %q to sheet %q: %w", pair.Account, pair.Sheet, err)
		}
		results = append(results, res)
	}

	return results, nil
}

func (h *holding) reconcilePair(ctx context.Context, accounts map[string]models.AccountDetail, pair config.SheetMapping, spreadsheet gsheet.Spreadsheet) (res models.ReconcileResult, err error) {
	detail, ok := accounts[pair.Account]
	if !ok {
		return res, common.ErrAccountNotFound
	}

	if len(detail.Holdings) == 0 {
		return res, common.ErrHoldingsEmpty
	}

	// holdings are used in the order Tangerine returns them, the first one is written.
	holding := detail.Holdings[0]

	row, err := models.NewHoldingRow(holding)
	if err != nil {
		return res, err
	}

	ws, err := spreadsheet.Worksheet(ctx, pair.Sheet)
	if err != nil {
		return res, err
	}

	fields := []xlog.Field{
		xlog.String("account", pair.Account),
		xlog.String("sheet", pair.Sheet),
		xlog.String("date", row.Date),
	}
	if len(detail.Holdings) > 1 {
		fields = append(fields, xlog.Int("holdings", len(detail.Holdings)))
	}
	xlog.Info(ctx, logPrefixHolding, append(fields, xlog.String("message", "processing account"))...)

	res = models.ReconcileResult{
		Account: pair.Account,
		Sheet:   pair.Sheet,
		Date:    row.Date,
		Values:  row,
	}

	idx, found, err := ws.Find(ctx, row.Date)
	if err != nil {
		return res, err
	}

	if found {
		xlog.Warn(ctx, logPrefixHolding, append(fields, xlog.Int("row", idx), xlog.String("message", "row already exists, replacing"))...)

		if err = ws.DeleteRow(ctx, idx); err != nil {
			return res, err
		}
		if err = ws.InsertRow(ctx, row.Values(), idx); err != nil {
			return res, err
		}

		res.Action = models.ReconcileActionReplaced
		res.Row = idx
		return res, nil
	}

	xlog.Info(ctx, logPrefixHolding, append(fields, xlog.String("message", "adding new row"))...)

	if err = ws.AppendRow(ctx, row.Values()); err != nil {
		return res, err
	}

	res.Action = models.ReconcileActionAppended
	return res, nil
}

func (h *holding) Run(ctx context.Context) (report models.RunReport, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	report = models.RunReport{
		CorrelationID: xlog.GetCorrelationID(ctx),
		StartedAt:     common.Now(),
	}

	defer func() {
		report.FinishedAt = common.Now()
		report.Err = err
		err = errors.Join(err, h.finishRun(ctx, report))
	}()

	var accounts map[string]models.AccountDetail
	err = h.srv.tangerineClient.WithSession(ctx, func(ctx context.Context) (err error) {
		accounts, err = h.FetchTargetAccounts(ctx)
		return err
	})
	if err != nil {
		return report, err
	}

	xlog.Info(ctx, logPrefixHolding, xlog.String("message", "getting spreadsheet"), xlog.String("sheetId", h.srv.conf.SheetID))

	spreadsheet, err := h.srv.sheetClient.OpenByKey(ctx, h.srv.conf.SheetID)
	if err != nil {
		return report, err
	}

	report.Results, err = h.Reconcile(ctx, accounts, h.srv.conf.Mapping, spreadsheet)
	return report, err
}

// finishRun records metrics and the report; its error never hides the run error.
func (h *holding) finishRun(ctx context.Context, report models.RunReport) error {
	fields := []xlog.Field{
		xlog.String("status", report.Status()),
		xlog.Int("appended", report.CountByAction(models.ReconcileActionAppended)),
		xlog.Int("replaced", report.CountByAction(models.ReconcileActionReplaced)),
		xlog.Duration("elapsed", report.FinishedAt.Sub(report.StartedAt)),
	}
	xlog.Info(ctx, "[SUMMARY]", fields...)

	var errs []error

	if h.srv.metrics != nil {
		h.srv.metrics.GetReconcilePrometheus().Record(report)

		if path := h.srv.conf.Metrics.TextfilePath; path != "" {
			if err := h.srv.metrics.WriteTextfile(path); err != nil {
				xlog.Warn(ctx, logPrefixHolding, xlog.Err(err))
				errs = append(errs, err)
			}
		}
	}

	if h.srv.reportRepo != nil {
		url, err := h.srv.reportRepo.Save(ctx, report)
		if err != nil {
			xlog.Warn(ctx, logPrefixHolding, xlog.String("message", "failed to save run report"), xlog.Err(err))
			errs = append(errs, err)
		} else {
			xlog.Info(ctx, logPrefixHolding, xlog.String("message", "run report saved"), xlog.String("url", url))
		}
	}

	return errors.Join(errs...)
}

func (h *holding) ListAccounts(ctx context.Context) (accounts []models.AccountSummary, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	err = h.srv.tangerineClient.WithSession(ctx, func(ctx context.Context) (err error) {
		accounts, err = h.srv.tangerineClient.ListAccounts(ctx)
		return err
	})

	return accounts, err
}
