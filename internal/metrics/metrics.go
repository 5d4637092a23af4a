// Package metrics records codec outcomes with OpenTelemetry counters.
package metrics

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const meterName = "github.com/GoFFXI/webcodec"

// Recorder receives codec events.
type Recorder interface {
	// PacketProcessed counts one codec invocation.
	PacketProcessed(ctx context.Context, direction, opcode, outcome, reason string)

	// InvalidSlot counts a slot that had no counterpart in the other numbering scheme.
	InvalidSlot(ctx context.Context, mapping, direction string)
}

// Metrics is a Recorder backed by OpenTelemetry counters.
type Metrics struct {
	packets      metric.Int64Counter
	invalidSlots metric.Int64Counter
}

// New creates the counters on meter.
func New(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.packets, err = meter.Int64Counter(
		"webcodec.packets",
		metric.WithDescription("Packets processed by the web codec, by direction, opcode and outcome"),
		metric.WithUnit("{packet}"),
	)
	if err != nil {
		return nil, err
	}

	m.invalidSlots, err = meter.Int64Counter(
		"webcodec.slot.invalid",
		metric.WithDescription("Slot numbers with no counterpart in the target scheme"),
		metric.WithUnit("{slot}"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) PacketProcessed(ctx context.Context, direction, opcode, outcome, reason string) {
	m.packets.Add(ctx, 1, metric.WithAttributes(
		attribute.String("direction", direction),
		attribute.String("opcode", opcode),
		attribute.String("outcome", outcome),
		attribute.String("reason", reason),
	))
}

func (m *Metrics) InvalidSlot(ctx context.Context, mapping, direction string) {
	m.invalidSlots.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mapping", mapping),
		attribute.String("direction", direction),
	))
}

// Noop discards every event.
type Noop struct{}

func (Noop) PacketProcessed(context.Context, string, string, string, string) {}

func (Noop) InvalidSlot(context.Context, string, string) {}

// Setup owns the meter provider that feeds the stdout exporter.
type Setup struct {
	provider *sdkmetric.MeterProvider
	metrics  *Metrics
}

// NewSetup builds a meter provider that periodically writes metrics to w.
func NewSetup(w io.Writer, interval time.Duration) (*Setup, error) {
	exporter, err := stdoutmetric.New(stdoutmetric.WithWriter(w))
	if err != nil {
		return nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(interval))),
	)

	m, err := New(provider.Meter(meterName))
	if err != nil {
		_ = provider.Shutdown(context.Background())
		return nil, fmt.Errorf("failed to create counters: %w", err)
	}

	return &Setup{provider: provider, metrics: m}, nil
}

func (s *Setup) Recorder() *Metrics {
	return s.metrics
}

// Shutdown flushes pending metrics and stops the exporter.
func (s *Setup) Shutdown(ctx context.Context) error {
	return s.provider.Shutdown(ctx)
}
