package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	mockGsheet "github.com/MarcDufresne/tangerine-account-checker/internal/common/gsheet/mock"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/matcher"
	"github.com/MarcDufresne/tangerine-account-checker/internal/config"
	"github.com/MarcDufresne/tangerine-account-checker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var errBoom = errors.New("boom")

func TestHoldingService_FetchTargetAccounts(t *testing.T) {
	testHelper := serviceTestHelper(t)

	acc1 := holdingDetail("ACC1", "2024-01-01", "10.5", "100", "1050", "1000")
	acc3 := holdingDetail("ACC3", "2024-01-01", "1", "1", "1", "1")

	type mockData struct {
		summaries []models.AccountSummary
		listErr   error
	}
	tests := []struct {
		name     string
		mockData mockData
		doMock   func(md mockData)
		want     map[string]models.AccountDetail
		wantErr  bool
	}{
		{
			name: "keeps only mutual funds keyed by display name",
			mockData: mockData{
				summaries: []models.AccountSummary{
					{Number: "111", DisplayName: "ACC1", Type: models.AccountTypeMutualFund},
					{Number: "222", DisplayName: "Chequing", Type: models.AccountTypeChequing},
					{Number: "333", DisplayName: "ACC3", Type: models.AccountTypeMutualFund},
					{Number: "444", DisplayName: "Savings", Type: models.AccountTypeSavings},
				},
			},
			doMock: func(md mockData) {
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(md.summaries, md.listErr)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "111").Return(acc1, nil)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "333").Return(acc3, nil)
			},
			want: map[string]models.AccountDetail{"ACC1": acc1, "ACC3": acc3},
		},
		{
			name: "no mutual fund",
			mockData: mockData{
				summaries: []models.AccountSummary{
					{Number: "222", DisplayName: "Chequing", Type: models.AccountTypeChequing},
				},
			},
			doMock: func(md mockData) {
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(md.summaries, md.listErr)
			},
			want: map[string]models.AccountDetail{},
		},
		{
			name:     "list fails",
			mockData: mockData{listErr: errBoom},
			doMock: func(md mockData) {
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(md.summaries, md.listErr)
			},
			wantErr: true,
		},
		{
			name: "detail fails",
			mockData: mockData{
				summaries: []models.AccountSummary{
					{Number: "111", DisplayName: "ACC1", Type: models.AccountTypeMutualFund},
				},
			},
			doMock: func(md mockData) {
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(md.summaries, md.listErr)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "111").Return(models.AccountDetail{}, errBoom)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.mockData)
			}

			got, err := testHelper.holdingService.FetchTargetAccounts(context.Background())
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestHoldingService_Reconcile(t *testing.T) {
	testHelper := serviceTestHelper(t)

	accounts := map[string]models.AccountDetail{
		"ACC1":  holdingDetail("ACC1", "2024-01-01", "10.5", "100", "1050", "1000"),
		"ACC2":  holdingDetail("ACC2", "2024-02-01", "9.1", "12.5", "113.75", "125"),
		"ZERO":  holdingDetail("ZERO", "2024-01-01", "1", "0", "0", "10"),
		"EMPTY": {DisplayName: "EMPTY", Type: models.AccountTypeMutualFund},
	}
	wantACC1 := matcher.RowText("2024-01-01", "10.5", "100", "1050", "1000", "10", "50")
	wantACC2 := matcher.RowText("2024-02-01", "9.1", "12.5", "113.75", "125", "10", "-11.25")

	type args struct {
		mapping config.Mapping
	}
	tests := []struct {
		name        string
		args        args
		doMock      func(ws1, ws2 *mockGsheet.MockWorksheet)
		wantActions []models.ReconcileAction
		wantErr     error
	}{
		{
			name: "no matching row appends the computed values",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Sheet1"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, nil)
				ws1.EXPECT().AppendRow(gomock.Any(), wantACC1).Return(nil)
			},
			wantActions: []models.ReconcileAction{models.ReconcileActionAppended},
		},
		{
			name: "matching row is deleted then inserted at the same index",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Sheet1"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				gomock.InOrder(
					ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(5, true, nil),
					ws1.EXPECT().DeleteRow(gomock.Any(), 5).Return(nil),
					ws1.EXPECT().InsertRow(gomock.Any(), wantACC1, 5).Return(nil),
				)
			},
			wantActions: []models.ReconcileAction{models.ReconcileActionReplaced},
		},
		{
			name: "pairs are processed in mapping order",
			args: args{mapping: config.Mapping{
				{Account: "ACC2", Sheet: "Sheet2"},
				{Account: "ACC1", Sheet: "Sheet1"},
			}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				gomock.InOrder(
					testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet2").Return(ws2, nil),
					ws2.EXPECT().Find(gomock.Any(), "2024-02-01").Return(2, true, nil),
					ws2.EXPECT().DeleteRow(gomock.Any(), 2).Return(nil),
					ws2.EXPECT().InsertRow(gomock.Any(), wantACC2, 2).Return(nil),
					testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil),
					ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, nil),
					ws1.EXPECT().AppendRow(gomock.Any(), wantACC1).Return(nil),
				)
			},
			wantActions: []models.ReconcileAction{models.ReconcileActionReplaced, models.ReconcileActionAppended},
		},
		{
			name: "missing account aborts, earlier pairs stay written",
			args: args{mapping: config.Mapping{
				{Account: "ACC1", Sheet: "Sheet1"},
				{Account: "MISSING", Sheet: "Sheet2"},
				{Account: "ACC2", Sheet: "Sheet3"},
			}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, nil)
				ws1.EXPECT().AppendRow(gomock.Any(), wantACC1).Return(nil)
			},
			wantActions: []models.ReconcileAction{models.ReconcileActionAppended},
			wantErr:     common.ErrAccountNotFound,
		},
		{
			name:    "empty holdings",
			args:    args{mapping: config.Mapping{{Account: "EMPTY", Sheet: "Sheet1"}}},
			wantErr: common.ErrHoldingsEmpty,
		},
		{
			name:    "zero units",
			args:    args{mapping: config.Mapping{{Account: "ZERO", Sheet: "Sheet1"}}},
			wantErr: common.ErrDivisionByZero,
		},
		{
			name: "worksheet not found",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Nope"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Nope").Return(nil, common.ErrWorksheetNotFound)
			},
			wantErr: common.ErrWorksheetNotFound,
		},
		{
			name: "find fails",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Sheet1"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, errBoom)
			},
			wantErr: errBoom,
		},
		{
			name: "delete fails, nothing inserted",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Sheet1"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(3, true, nil)
				ws1.EXPECT().DeleteRow(gomock.Any(), 3).Return(errBoom)
			},
			wantErr: errBoom,
		},
		{
			name: "append fails",
			args: args{mapping: config.Mapping{{Account: "ACC1", Sheet: "Sheet1"}}},
			doMock: func(ws1, ws2 *mockGsheet.MockWorksheet) {
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws1, nil)
				ws1.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, nil)
				ws1.EXPECT().AppendRow(gomock.Any(), wantACC1).Return(errBoom)
			},
			wantErr: errBoom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws1 := mockGsheet.NewMockWorksheet(testHelper.mockCtrl)
			ws2 := mockGsheet.NewMockWorksheet(testHelper.mockCtrl)
			if tt.doMock != nil {
				tt.doMock(ws1, ws2)
			}

			got, err := testHelper.holdingService.Reconcile(context.Background(), accounts, tt.args.mapping, testHelper.mockSpreadsheet)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			var actions []models.ReconcileAction
			for _, res := range got {
				actions = append(actions, res.Action)
			}
			assert.Equal(t, tt.wantActions, actions)
		})
	}
}

func TestHoldingService_Reconcile_Result(t *testing.T) {
	testHelper := serviceTestHelper(t)
	ws := mockGsheet.NewMockWorksheet(testHelper.mockCtrl)

	accounts := map[string]models.AccountDetail{
		"ACC1": holdingDetail("ACC1", "2024-01-01", "10.5", "100", "1050", "1000"),
	}

	testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws, nil)
	ws.EXPECT().Find(gomock.Any(), "2024-01-01").Return(7, true, nil)
	ws.EXPECT().DeleteRow(gomock.Any(), 7).Return(nil)
	ws.EXPECT().InsertRow(gomock.Any(), gomock.Any(), 7).Return(nil)

	got, err := testHelper.holdingService.Reconcile(context.Background(), accounts, testHelper.config.Mapping, testHelper.mockSpreadsheet)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, "ACC1", got[0].Account)
	assert.Equal(t, "Sheet1", got[0].Sheet)
	assert.Equal(t, "2024-01-01", got[0].Date)
	assert.Equal(t, 7, got[0].Row)
	assert.Equal(t, []string{"2024-01-01", "10.5", "100", "1050", "1000", "10", "50"}, got[0].Values.Strings())
}

func TestHoldingService_Run(t *testing.T) {
	testHelper := serviceTestHelper(t)

	accounts := []models.AccountSummary{{Number: "111", DisplayName: "ACC1", Type: models.AccountTypeMutualFund}}
	acc1 := holdingDetail("ACC1", "2024-01-01", "10.5", "100", "1050", "1000")

	withSession := func(ctx context.Context, fn func(context.Context) error) error {
		return fn(ctx)
	}

	tests := []struct {
		name        string
		doMock      func(ws *mockGsheet.MockWorksheet)
		wantErr     []error
		wantStatus  string
		wantResults int
	}{
		{
			name: "success",
			doMock: func(ws *mockGsheet.MockWorksheet) {
				gomock.InOrder(
					testHelper.mockTangerine.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(withSession),
					testHelper.mockSheetClient.EXPECT().OpenByKey(gomock.Any(), "sheet-123").Return(testHelper.mockSpreadsheet, nil),
				)
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "111").Return(acc1, nil)
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws, nil)
				ws.EXPECT().Find(gomock.Any(), "2024-01-01").Return(0, false, nil)
				ws.EXPECT().AppendRow(gomock.Any(), gomock.Any()).Return(nil)
				testHelper.mockReportRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, report models.RunReport) (string, error) {
						assert.Len(t, report.Results, 1)
						assert.NoError(t, report.Err)
						assert.False(t, report.FinishedAt.Before(report.StartedAt))
						return "http://bucket/report.csv", nil
					})
			},
			wantStatus:  models.RunStatusSuccess,
			wantResults: 1,
		},
		{
			name: "login fails, sheet untouched, report still saved",
			doMock: func(ws *mockGsheet.MockWorksheet) {
				testHelper.mockTangerine.EXPECT().WithSession(gomock.Any(), gomock.Any()).Return(common.ErrLoginFailed)
				testHelper.mockReportRepo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, report models.RunReport) (string, error) {
						assert.ErrorIs(t, report.Err, common.ErrLoginFailed)
						return "http://bucket/report.csv", nil
					})
			},
			wantErr:    []error{common.ErrLoginFailed},
			wantStatus: models.RunStatusFailed,
		},
		{
			name: "open spreadsheet fails",
			doMock: func(ws *mockGsheet.MockWorksheet) {
				testHelper.mockTangerine.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(withSession)
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "111").Return(acc1, nil)
				testHelper.mockSheetClient.EXPECT().OpenByKey(gomock.Any(), "sheet-123").Return(nil, errBoom)
				testHelper.mockReportRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", nil)
			},
			wantErr:    []error{errBoom},
			wantStatus: models.RunStatusFailed,
		},
		{
			name: "report save error is joined",
			doMock: func(ws *mockGsheet.MockWorksheet) {
				testHelper.mockTangerine.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(withSession)
				testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)
				testHelper.mockTangerine.EXPECT().GetAccount(gomock.Any(), "111").Return(acc1, nil)
				testHelper.mockSheetClient.EXPECT().OpenByKey(gomock.Any(), "sheet-123").Return(testHelper.mockSpreadsheet, nil)
				testHelper.mockSpreadsheet.EXPECT().Worksheet(gomock.Any(), "Sheet1").Return(ws, nil)
				ws.EXPECT().Find(gomock.Any(), "2024-01-01").Return(2, true, nil)
				ws.EXPECT().DeleteRow(gomock.Any(), 2).Return(nil)
				ws.EXPECT().InsertRow(gomock.Any(), gomock.Any(), 2).Return(nil)
				testHelper.mockReportRepo.EXPECT().Save(gomock.Any(), gomock.Any()).Return("", errBoom)
			},
			wantErr:     []error{errBoom},
			wantStatus:  models.RunStatusSuccess,
			wantResults: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := mockGsheet.NewMockWorksheet(testHelper.mockCtrl)
			if tt.doMock != nil {
				tt.doMock(ws)
			}

			report, err := testHelper.holdingService.Run(context.Background())
			if len(tt.wantErr) == 0 {
				require.NoError(t, err)
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}

			assert.Equal(t, tt.wantStatus, report.Status())
			assert.Len(t, report.Results, tt.wantResults)
			assert.False(t, report.StartedAt.IsZero())
			assert.WithinDuration(t, time.Now(), report.FinishedAt, time.Minute)
		})
	}
}

func TestHoldingService_ListAccounts(t *testing.T) {
	testHelper := serviceTestHelper(t)

	accounts := []models.AccountSummary{
		{Number: "111", DisplayName: "ACC1", Type: models.AccountTypeMutualFund},
		{Number: "222", DisplayName: "Chequing", Type: models.AccountTypeChequing},
	}

	testHelper.mockTangerine.EXPECT().WithSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
	testHelper.mockTangerine.EXPECT().ListAccounts(gomock.Any()).Return(accounts, nil)

	got, err := testHelper.holdingService.ListAccounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}
