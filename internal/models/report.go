package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
)

const (
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"

	ReportFolderName = "holdings_report"
	CSVSeparator     = ';'
)

var RunReportHeader = append([]string{"account", "sheet", "action", "row"}, HoldingRowHeader...)

// RunReport is the outcome of one reconciliation run, partial when Err is set.
type RunReport struct {
	CorrelationID string
	StartedAt     time.Time
	FinishedAt    time.Time
	Results       []ReconcileResult
	Err           error
}

func (r RunReport) Status() string {
	if r.Err != nil {
		return RunStatusFailed
	}
	return RunStatusSuccess
}

func (r RunReport) CountByAction(action ReconcileAction) int {
	n := 0
	for _, res := range r.Results {
		if res.Action == action {
			n++
		}
	}
	return n
}

// FileName is unique per start time, e.g. holdings_report_20240101150405.csv.
func (r RunReport) FileName() string {
	return fmt.Sprintf("%s_%s.csv", ReportFolderName, r.StartedAt.Format(common.DateFormatYYYYMMDDHHMMSSWithoutDash))
}

// WriteCSV writes one line per result; a failed run ends with an error line.
func (r RunReport) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	cw.Comma = CSVSeparator

	if err := cw.Write(RunReportHeader); err != nil {
		return err
	}

	for _, res := range r.Results {
		record := append([]string{res.Account, res.Sheet, string(res.Action), strconv.Itoa(res.Row)}, res.Values.Strings()...)
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	if r.Err != nil {
		record := make([]string, len(RunReportHeader))
		record[0] = RunStatusFailed
		record[len(record)-1] = r.Err.Error()
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
