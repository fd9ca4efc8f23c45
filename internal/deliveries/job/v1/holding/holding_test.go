package holding

import (
	"context"
	"testing"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common/flag"
	"github.com/MarcDufresne/tangerine-account-checker/internal/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRoutes(t *testing.T) {
	testHelper := holdingTestHelper(t)

	routes := Routes(testHelper.mockHoldingService, testHelper.out)

	assert.Len(t, routes, 2)
	assert.Contains(t, routes, "ReconcileHoldings")
	assert.Contains(t, routes, "ListAccounts")
}

func Test_holdingHandler_ReconcileHoldings(t *testing.T) {
	testHelper := holdingTestHelper(t)

	type args struct {
		ctx  context.Context
		flag flag.Job
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		wantErr bool
	}{
		{
			name: "success ReconcileHoldings",
			args: args{
				ctx:  context.TODO(),
				flag: flag.Job{JobName: "ReconcileHoldings", Version: "v1"},
			},
			doMock: func(args args) {
				testHelper.mockHoldingService.EXPECT().Run(gomock.AssignableToTypeOf(args.ctx)).Return(models.RunReport{
					Results: []models.ReconcileResult{{Account: "ACC1", Sheet: "Sheet1", Action: models.ReconcileActionAppended}},
				}, nil)
			},
			wantErr: false,
		},
		{
			name: "error ReconcileHoldings",
			args: args{
				ctx:  context.TODO(),
				flag: flag.Job{JobName: "ReconcileHoldings", Version: "v1"},
			},
			doMock: func(args args) {
				testHelper.mockHoldingService.EXPECT().Run(gomock.AssignableToTypeOf(args.ctx)).Return(models.RunReport{Err: assert.AnError}, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			hh := &holdingHandler{
				holdingSrv: testHelper.mockHoldingService,
				out:        testHelper.out,
			}
			err := hh.ReconcileHoldings(tt.args.ctx, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func Test_holdingHandler_ListAccounts(t *testing.T) {
	testHelper := holdingTestHelper(t)

	type args struct {
		ctx  context.Context
		flag flag.Job
	}
	tests := []struct {
		name    string
		args    args
		doMock  func(args args)
		want    string
		wantErr bool
	}{
		{
			name: "prints a table",
			args: args{ctx: context.TODO()},
			doMock: func(args args) {
				testHelper.mockHoldingService.EXPECT().ListAccounts(gomock.AssignableToTypeOf(args.ctx)).Return([]models.AccountSummary{
					{Number: "111", DisplayName: "Balanced Portfolio", Type: models.AccountTypeMutualFund},
					{Number: "2", DisplayName: "Chequing", Type: models.AccountTypeChequing},
				}, nil)
			},
			want: "NUMBER  NAME                TYPE\n" +
				"111     Balanced Portfolio  MUTUAL_FUND\n" +
				"2       Chequing            CHEQUING\n",
		},
		{
			name: "error ListAccounts",
			args: args{ctx: context.TODO()},
			doMock: func(args args) {
				testHelper.mockHoldingService.EXPECT().ListAccounts(gomock.AssignableToTypeOf(args.ctx)).Return(nil, assert.AnError)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testHelper.out.Reset()
			if tt.doMock != nil {
				tt.doMock(tt.args)
			}
			hh := &holdingHandler{
				holdingSrv: testHelper.mockHoldingService,
				out:        testHelper.out,
			}
			err := hh.ListAccounts(tt.args.ctx, tt.args.flag)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				assert.Equal(t, tt.want, testHelper.out.String())
			}
		})
	}
}
