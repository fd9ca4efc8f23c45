package monitoring

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	LayerRepository = "repositories"
	LayerService    = "services"
	LayerDelivery   = "deliveries"
	LayerClient     = "common"
	LayerUnknown    = "unknown"
)

// Monitor times one function call as a New Relic segment and a log line.
type Monitor struct {
	ctx         context.Context
	segmentName string
	layer       string
	start       time.Time
	segment     *newrelic.Segment
}

type initOptions struct {
	layer       string
	segmentName string
}

type InitOption func(*initOptions)

func WithLayer(layer string) InitOption {
	return func(o *initOptions) {
		o.layer = layer
	}
}

func WithSegmentName(segmentName string) InitOption {
	return func(o *initOptions) {
		o.segmentName = segmentName
	}
}

// New starts a segment on the transaction in ctx, if any. Without
// WithSegmentName the segment is named after the calling function and the
// layer is taken from its package directory.
func New(ctx context.Context, opts ...InitOption) *Monitor {
	o := &initOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.segmentName == "" {
		o.segmentName, o.layer = callerSegment(1)
	}
	if o.layer == "" {
		o.layer = LayerUnknown
	}

	segment := newrelic.FromContext(ctx).StartSegment(o.segmentName)
	if segment != nil {
		segment.AddAttribute("layer", o.layer)
	}

	return &Monitor{
		ctx:         ctx,
		segmentName: o.segmentName,
		layer:       o.layer,
		start:       time.Now(),
		segment:     segment,
	}
}

// callerSegment names the function skip frames above its own caller.
func callerSegment(skip int) (name, layer string) {
	pc, file, _, ok := runtime.Caller(skip + 1)
	if !ok {
		return LayerUnknown, LayerUnknown
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return LayerUnknown, layerOf(file)
	}

	return getSegmentName(fn.Name()), layerOf(file)
}

// NewMiddlewareRoundTripper records outgoing calls as external segments of the
// transaction found in the request context.
func NewMiddlewareRoundTripper(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}

	return newrelic.NewRoundTripper(next)
}
