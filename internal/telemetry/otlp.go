// Package telemetry exports tab-driven scrolls as OpenTelemetry spans
package telemetry

import (
	"context"
	"os"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	"tabsync/internal/eventbus"
)

// ShutdownTimeout bounds the final exporter flush
const ShutdownTimeout = 5 * time.Second

const (
	scrollSpan    = "tabsync.scroll"
	tabSyncedSpan = "tabsync.tab_synced"

	outcomeSettled    = "settled"
	outcomeRetargeted = "retargeted"
)

// Recorder turns sync events into spans. A tab-driven scroll becomes one
// span from its request to the moment the list settles; a scroll that was
// retargeted before settling ends with the scroll that replaced it.
type Recorder struct {
	tracer   oteltrace.Tracer
	provider *sdktrace.TracerProvider

	mu          sync.Mutex
	pending     map[uint64]eventbus.ScrollRequestedEvent
	settledSeq  uint64
	settledAt   time.Time
	unsubscribe []func()
}

// NewOTLPRecorder creates a recorder exporting to OTEL_EXPORTER_OTLP_ENDPOINT.
// Returns nil if the endpoint is not configured.
func NewOTLPRecorder(ctx context.Context) (*Recorder, error) {
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		return nil, nil
	}

	// The exporter reads the endpoint URL, and the trace path and TLS choice
	// that follow from it, from the environment itself
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "tabsync"
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	r := New(provider.Tracer("tabsync/sync"))
	r.provider = provider
	return r, nil
}

// New creates a recorder that starts spans on tracer
func New(tracer oteltrace.Tracer) *Recorder {
	return &Recorder{
		tracer:  tracer,
		pending: make(map[uint64]eventbus.ScrollRequestedEvent),
	}
}

// Attach subscribes the recorder to bus
func (r *Recorder) Attach(bus eventbus.EventBus) {
	if r == nil {
		return
	}
	r.unsubscribe = append(r.unsubscribe,
		bus.Subscribe(eventbus.EventScrollRequested, r.Handle),
		bus.Subscribe(eventbus.EventScrollSettled, r.Handle),
		bus.Subscribe(eventbus.EventTabSynced, r.Handle),
	)
}

// Handle records one event. Events may arrive out of order.
func (r *Recorder) Handle(event eventbus.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch e := event.(type) {
	case eventbus.ScrollRequestedEvent:
		if e.Seq <= r.settledSeq {
			r.endScroll(e, r.settledAt)
			return
		}
		r.pending[e.Seq] = e
	case eventbus.ScrollSettledEvent:
		if e.Seq > r.settledSeq {
			r.settledSeq, r.settledAt = e.Seq, e.At
		}
		for seq, req := range r.pending {
			if seq <= e.Seq {
				r.endScroll(req, e.At)
				delete(r.pending, seq)
			}
		}
	case eventbus.TabSyncedEvent:
		_, span := r.tracer.Start(context.Background(), tabSyncedSpan, oteltrace.WithTimestamp(e.At))
		span.SetAttributes(
			attribute.Int("tabsync.section", e.Section),
			attribute.Int("tabsync.position", e.Position),
		)
		span.End(oteltrace.WithTimestamp(e.At))
	}
}

func (r *Recorder) endScroll(req eventbus.ScrollRequestedEvent, end time.Time) {
	outcome := outcomeSettled
	if req.Seq != r.settledSeq {
		outcome = outcomeRetargeted
	}
	_, span := r.tracer.Start(context.Background(), scrollSpan, oteltrace.WithTimestamp(req.At))
	span.SetAttributes(
		attribute.Int64("tabsync.seq", int64(req.Seq)),
		attribute.Int("tabsync.section", req.Section),
		attribute.Int("tabsync.target", req.Target),
		attribute.String("tabsync.outcome", outcome),
	)
	span.End(oteltrace.WithTimestamp(end))
}

// Pending returns the number of scrolls still waiting to settle
func (r *Recorder) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Shutdown unsubscribes and flushes the exporter
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	for _, unsub := range r.unsubscribe {
		unsub()
	}
	r.unsubscribe = nil
	if r.provider == nil {
		return nil
	}
	return r.provider.Shutdown(ctx)
}
