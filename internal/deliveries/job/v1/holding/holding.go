package holding

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common/flag"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	"github.com/MarcDufresne/tangerine-account-checker/internal/services"
)

type holdingHandler struct {
	holdingSrv services.HoldingService
	out        io.Writer
}

func Routes(hs services.HoldingService, out io.Writer) map[string]func(ctx context.Context, flag flag.Job) error {
	handler := holdingHandler{
		holdingSrv: hs,
		out:        out,
	}
	return map[string]func(ctx context.Context, flag flag.Job) error{
		"ReconcileHoldings": handler.ReconcileHoldings,
		"ListAccounts":      handler.ListAccounts,
	}
}

func (hh *holdingHandler) ReconcileHoldings(ctx context.Context, flag flag.Job) error {
	report, err := hh.holdingSrv.Run(ctx)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "ReconcileHoldings", xlog.String("status", report.Status()), xlog.Int("rows", len(report.Results)))

	return nil
}

// ListAccounts prints every account of the login, to help writing the mapping.
func (hh *holdingHandler) ListAccounts(ctx context.Context, flag flag.Job) error {
	accounts, err := hh.holdingSrv.ListAccounts(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(hh.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NUMBER\tNAME\tTYPE")
	for _, acc := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", acc.Number, acc.DisplayName, acc.Type)
	}

	return tw.Flush()
}
