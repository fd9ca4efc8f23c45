package job

import (
	"cmp"
	"context"
	"fmt"
	"io"

	"github.com/MarcDufresne/tangerine-account-checker/internal/common"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/flag"
	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	v1holding "github.com/MarcDufresne/tangerine-account-checker/internal/deliveries/job/v1/holding"
	"github.com/MarcDufresne/tangerine-account-checker/internal/services"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	"golang.org/x/exp/slices"
)

type JobRoutes map[string]map[string]func(ctx context.Context, flag flag.Job) error

type Job struct {
	Routes   JobRoutes
	newRelic *newrelic.Application
}

// New wires the job routes. nrApp may be nil.
func New(srv *services.Services, nrApp *newrelic.Application, out io.Writer) *Job {
	v1group := "v1"

	jobRoutes := JobRoutes{
		v1group: v1holding.Routes(srv.Holding, out),
		// add other version routes
	}

	return &Job{Routes: jobRoutes, newRelic: nrApp}
}

// List returns the registered routes, sorted.
func (j *Job) List() []flag.Job {
	var jobs []flag.Job
	for version, l := range j.Routes {
		for name := range l {
			jobs = append(jobs, flag.Job{JobName: name, Version: version})
		}
	}

	slices.SortFunc(jobs, func(a, b flag.Job) int {
		if c := cmp.Compare(a.Version, b.Version); c != 0 {
			return c
		}
		return cmp.Compare(a.JobName, b.JobName)
	})

	return jobs
}

// Validate returns ErrInvalidJobRoute when no route matches flag.
func (j *Job) Validate(flag flag.Job) error {
	if _, ok := j.Routes[flag.Version][flag.JobName]; !ok {
		return fmt.Errorf("%w: %s, available versions %v", common.ErrInvalidJobRoute, flag, sortedKeys(j.Routes))
	}
	return nil
}

func (j *Job) Start(ctx context.Context, flag flag.Job) (err error) {
	startedAt := common.Now()

	if err = j.Validate(flag); err != nil {
		xlog.LogJob(ctx, flag.JobName, flag.Version, startedAt, err)
		return err
	}
	fn := j.Routes[flag.Version][flag.JobName]

	ctx = xlog.WithCorrelationID(ctx, uuid.New().String())

	txn := j.newRelic.StartTransaction(fmt.Sprintf("job/%s/%s", flag.Version, flag.JobName))
	ctx = newrelic.NewContext(ctx, txn)

	defer func() {
		if err != nil {
			txn.NoticeError(err)
		}
		txn.End()
		xlog.LogJob(ctx, flag.JobName, flag.Version, startedAt, err)
	}()

	return fn(ctx, flag)
}

func sortedKeys(routes JobRoutes) []string {
	keys := make([]string, 0, len(routes))
	for k := range routes {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
