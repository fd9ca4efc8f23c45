package httpclient

import (
	"context"
	"fmt"
	"time"

	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
	"github.com/MarcDufresne/tangerine-account-checker/internal/common/metrics"

	"github.com/go-resty/resty/v2"
)

// RequestWrapper sends resty requests with a log line and a latency sample
// for each call.
type RequestWrapper struct {
	client      *resty.Client
	metrics     metrics.Metrics
	serviceName string
	logPrefix   string
}

func NewRequestWrapper(client *resty.Client, metrics metrics.Metrics, serviceName, logPrefix string) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     metrics,
		serviceName: serviceName,
		logPrefix:   logPrefix,
	}
}

// DoRequest sends one request. endpoint is the metric label, so it must not
// carry ids; url is the path actually requested. A 4xx/5xx response is
// returned without error, callers decide what the status means.
func (w *RequestWrapper) DoRequest(ctx context.Context, method, endpoint, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	start := time.Now()

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	res, err := req.Execute(method, url)

	statusCode := 0
	if err == nil {
		statusCode = res.StatusCode()
	}
	elapsed := time.Since(start)
	w.record(method, endpoint, statusCode, elapsed)

	fields := []xlog.Field{
		xlog.String("method", method),
		xlog.String("endpoint", endpoint),
		xlog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil:
		xlog.Warn(ctx, w.logPrefix, append(fields, xlog.Err(err))...)
		return nil, fmt.Errorf("failed to send %s %s: %w", method, endpoint, err)
	case res.IsError():
		xlog.Warn(ctx, w.logPrefix, append(fields, xlog.Int("httpStatusCode", statusCode))...)
	default:
		xlog.Debug(ctx, w.logPrefix, append(fields, xlog.Int("httpStatusCode", statusCode))...)
	}

	return res, nil
}

func (w *RequestWrapper) record(method, endpoint string, statusCode int, elapsed time.Duration) {
	if w.metrics == nil {
		return
	}
	w.metrics.GetHTTPClientPrometheus().Record(elapsed, w.serviceName, method, endpoint, statusCode)
}
