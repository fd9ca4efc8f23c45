package monitoring

import (
	"time"

	xlog "github.com/MarcDufresne/tangerine-account-checker/internal/common/log"
)

var messagePrefix = map[string]string{
	LayerRepository: "[REPOSITORY]",
	LayerService:    "[SERVICE]",
	LayerDelivery:   "[DELIVERY]",
	LayerClient:     "[CLIENT]",
	LayerUnknown:    "[-]",
}

type finishOptions struct {
	err        error
	xlogFields []xlog.Field
}

type FinishOption func(*finishOptions)

func WithFinishCheckError(err error) FinishOption {
	return func(o *finishOptions) {
		o.err = err
	}
}

func WithFinishXlogFields(fields ...xlog.Field) FinishOption {
	return func(o *finishOptions) {
		o.xlogFields = append(o.xlogFields, fields...)
	}
}

// Finish ends the segment. Failures are logged from every layer, successes
// only from services and deliveries.
func (m *Monitor) Finish(opts ...FinishOption) {
	o := &finishOptions{}
	for _, opt := range opts {
		opt(o)
	}

	defer func() {
		if m.segment != nil {
			m.segment.End()
		}
	}()

	fields := append(o.xlogFields,
		xlog.String("segment", m.segmentName),
		xlog.Duration("processDuration", time.Since(m.start)))

	if o.err != nil {
		if m.segment != nil {
			m.segment.AddAttribute("error", o.err.Error())
		}
		xlog.Warn(m.ctx, messagePrefix[m.layer], append(fields, xlog.String("status", "error"), xlog.Err(o.err))...)
		return
	}

	if m.layer == LayerDelivery || m.layer == LayerService {
		xlog.Info(m.ctx, messagePrefix[m.layer], append(fields, xlog.String("status", "success"))...)
	}
}
