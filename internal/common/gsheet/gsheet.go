package gsheet

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/metrics"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/monitoring"
)

const (
	serviceName = "gsheet"

	ValueInputRaw         = "RAW"
	ValueInputUserEntered = "USER_ENTERED"

	dimensionRows = "ROWS"
)

//go:generate mockgen -source=gsheet.go -destination=mock/gsheet.go -package=mock

type Client interface {
	OpenByKey(ctx context.Context, key string) (Spreadsheet, error)
}

type Spreadsheet interface {
	ID() string
	Title() string
	// Worksheet returns common.ErrWorksheetNotFound when no tab has this title.
	Worksheet(ctx context.Context, title string) (Worksheet, error)
}

type Worksheet interface {
	ID() int64
	Title() string
	// Find returns the 1-based row of the first cell whose formatted text equals
	// text, scanning row by row. found is false when no cell matches.
	Find(ctx context.Context, text string) (row int, found bool, err error)
	DeleteRow(ctx context.Context, row int) error
	// InsertRow inserts values as a new row at the 1-based index, shifting rows down.
	InsertRow(ctx context.Context, values []interface{}, row int) error
	AppendRow(ctx context.Context, values []interface{}) error
}

type client struct {
	srv              *sheets.Service
	valueInputOption string
	metrics          metrics.Metrics
}

var _ Client = (*client)(nil)

// New authenticates with the service account key at cfg.CredentialsFile.
func New(ctx context.Context, cfg config.GoogleSheetsConfig, mtc metrics.Metrics) (Client, error) {
	jsonKey, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read google credentials %s: %w", cfg.CredentialsFile, err)
	}

	jwtCfg, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope, sheets.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse google credentials: %w", err)
	}

	httpClient := jwtCfg.Client(ctx)
	httpClient.Transport = monitoring.NewMiddlewareRoundTripper(httpClient.Transport)

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return NewWithService(srv, cfg.ValueInputOption, mtc), nil
}

// NewWithService wraps an already configured Sheets service.
func NewWithService(srv *sheets.Service, valueInputOption string, mtc metrics.Metrics) Client {
	if valueInputOption == "" {
		valueInputOption = ValueInputRaw
	}

	return &client{
		srv:              srv,
		valueInputOption: valueInputOption,
		metrics:          mtc,
	}
}

func (c *client) OpenByKey(ctx context.Context, key string) (s Spreadsheet, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if key == "" {
		return nil, common.ErrSpreadsheetIDEmpty
	}

	meta, err := c.fetch(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet %s: %w", key, err)
	}

	sh := &spreadsheet{client: c, id: meta.SpreadsheetId}
	if meta.Properties != nil {
		sh.title = meta.Properties.Title
	}
	return sh, nil
}

func (c *client) fetch(ctx context.Context, key string) (meta *sheets.Spreadsheet, err error) {
	defer c.observe(http.MethodGet, "spreadsheets.get", time.Now(), &err)

	return c.srv.Spreadsheets.Get(key).
		Fields("spreadsheetId", "properties.title", "sheets.properties").
		Context(ctx).
		Do()
}

func (c *client) observe(method, op string, start time.Time, err *error) {
	if c.metrics == nil {
		return
	}

	code := http.StatusOK
	if *err != nil {
		code = 0
		var apiErr *googleapi.Error
		if errors.As(*err, &apiErr) {
			code = apiErr.Code
		}
	}

	c.metrics.GetHTTPClientPrometheus().Record(time.Since(start), serviceName, method, op, code)
}

type spreadsheet struct {
	client *client
	id     string
	title  string
}

func (s *spreadsheet) ID() string {
	return s.id
}

func (s *spreadsheet) Title() string {
	return s.title
}

func (s *spreadsheet) Worksheet(ctx context.Context, title string) (ws Worksheet, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	meta, err := s.client.fetch(ctx, s.id)
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet %s: %w", s.id, err)
	}

	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == title {
			return &worksheet{
				client:        s.client,
				spreadsheetID: s.id,
				id:            sh.Properties.SheetId,
				title:         sh.Properties.Title,
			}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", common.ErrWorksheetNotFound, title)
}

type worksheet struct {
	client        *client
	spreadsheetID string
	id            int64
	title         string
}

func (w *worksheet) ID() int64 {
	return w.id
}

func (w *worksheet) Title() string {
	return w.title
}

// a1 quotes the tab title, optionally followed by a cell or range.
func (w *worksheet) a1(cells string) string {
	quoted := "'" + strings.ReplaceAll(w.title, "'", "''") + "'"
	if cells == "" {
		return quoted
	}
	return quoted + "!" + cells
}

func (w *worksheet) Find(ctx context.Context, text string) (row int, found bool, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()
	defer w.client.observe(http.MethodGet, "values.get", time.Now(), &err)

	res, err := w.client.srv.Spreadsheets.Values.Get(w.spreadsheetID, w.a1("")).
		MajorDimension(dimensionRows).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return 0, false, fmt.Errorf("failed to read worksheet %s: %w", w.title, err)
	}

	for i, cells := range res.Values {
		for _, cell := range cells {
			if s, ok := cell.(string); ok && s == text {
				return i + 1, true, nil
			}
		}
	}

	return 0, false, nil
}

func (w *worksheet) rowRange(row int) *sheets.DimensionRange {
	return &sheets.DimensionRange{
		SheetId:         w.id,
		Dimension:       dimensionRows,
		StartIndex:      int64(row - 1),
		EndIndex:        int64(row),
		ForceSendFields: []string{"SheetId", "StartIndex", "EndIndex"},
	}
}

func (w *worksheet) batchUpdate(ctx context.Context, op string, reqs ...*sheets.Request) (err error) {
	defer w.client.observe(http.MethodPost, op, time.Now(), &err)

	_, err = w.client.srv.Spreadsheets.BatchUpdate(w.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: reqs,
	}).Context(ctx).Do()
	return err
}

func (w *worksheet) DeleteRow(ctx context.Context, row int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if row < 1 {
		return fmt.Errorf("invalid row %d", row)
	}

	err = w.batchUpdate(ctx, "spreadsheets.batchUpdate#deleteDimension", &sheets.Request{
		DeleteDimension: &sheets.DeleteDimensionRequest{Range: w.rowRange(row)},
	})
	if err != nil {
		return fmt.Errorf("failed to delete row %d of %s: %w", row, w.title, err)
	}
	return nil
}

func (w *worksheet) InsertRow(ctx context.Context, values []interface{}, row int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	if row < 1 {
		return fmt.Errorf("invalid row %d", row)
	}

	err = w.batchUpdate(ctx, "spreadsheets.batchUpdate#insertDimension", &sheets.Request{
		InsertDimension: &sheets.InsertDimensionRequest{Range: w.rowRange(row)},
	})
	if err != nil {
		return fmt.Errorf("failed to insert row %d of %s: %w", row, w.title, err)
	}

	if err = w.update(ctx, w.a1(fmt.Sprintf("A%d", row)), values); err != nil {
		return fmt.Errorf("failed to write row %d of %s: %w", row, w.title, err)
	}
	return nil
}

func (w *worksheet) update(ctx context.Context, rng string, values []interface{}) (err error) {
	defer w.client.observe(http.MethodPut, "values.update", time.Now(), &err)

	_, err = w.client.srv.Spreadsheets.Values.Update(w.spreadsheetID, rng, &sheets.ValueRange{
		MajorDimension: dimensionRows,
		Values:         [][]interface{}{values},
	}).ValueInputOption(w.client.valueInputOption).Context(ctx).Do()
	return err
}

func (w *worksheet) AppendRow(ctx context.Context, values []interface{}) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()
	defer w.client.observe(http.MethodPost, "values.append", time.Now(), &err)

	_, err = w.client.srv.Spreadsheets.Values.Append(w.spreadsheetID, w.a1(""), &sheets.ValueRange{
		MajorDimension: dimensionRows,
		Values:         [][]interface{}{values},
	}).ValueInputOption(w.client.valueInputOption).
		// INSERT_ROWS shifts cells below the table down instead of overwriting them.
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", w.title, err)
	}
	return nil
}
