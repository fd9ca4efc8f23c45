package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	xlog.InitForTest()
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(runJobCmd.Flags())
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "version=v1, name=ListAccounts\nversion=v1, name=ReconcileHoldings\n", out)
}

func TestRunJob(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "unknown job name",
			args:    []string{"run", "-n", "Nope", "-v", "v1", "-c", "does-not-exist.json"},
			wantErr: common.ErrInvalidJobRoute,
		},
		{
			name:    "unknown version",
			args:    []string{"run", "-n", "ReconcileHoldings", "-v", "v9", "-c", "does-not-exist.json"},
			wantErr: common.ErrInvalidJobRoute,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRunJob_MissingFlags(t *testing.T) {
	_, err := execute(t, "run", "-n", "ReconcileHoldings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"version" not set`)
}

// resetFlags undoes values left on the package level commands by a previous Execute.
func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
