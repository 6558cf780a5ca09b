// SPDX-License-Identifier: EPL-2.0

// Package observe holds the OpenTelemetry instruments of the studio.
//
// A package-level default [Metrics] instance ([DefaultMetrics]) uses the
// global meter provider; tests should use [NewMetrics] with their own
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/EzeriumChristinal/Google-AI-Generated-VoxFluent-TTS-Studio"

// Pipeline stages used as the "stage" attribute of the error counter.
const (
	StageSynthesize = "synthesize"
	StageDecode     = "decode"
	StageInterpret  = "interpret"
	StageEncode     = "encode"
	StageStore      = "store"
)

// Metrics holds all metric instruments. The underlying OTel types are safe
// for concurrent use.
type Metrics struct {
	// SynthesisDuration tracks wall time of one Generate call, in seconds.
	SynthesisDuration metric.Float64Histogram

	// AudioDuration tracks the length of produced clips, in seconds.
	AudioDuration metric.Float64Histogram

	// ClipsGenerated counts stored clips. Use with attribute.String("voice", ...).
	ClipsGenerated metric.Int64Counter

	ClipsDeleted metric.Int64Counter

	// Errors counts failed generations. Use with attribute.String("stage", ...).
	Errors metric.Int64Counter

	// ActiveClips is the number of clips currently held in history.
	ActiveClips metric.Int64UpDownCounter
}

// latencyBuckets are bucket boundaries (in seconds) for remote synthesis.
var latencyBuckets = []float64{
	0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 30,
}

// NewMetrics creates every instrument from mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.SynthesisDuration, err = m.Float64Histogram("voxfluent.synthesis.duration",
		metric.WithDescription("Latency of speech generation including transcoding."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.AudioDuration, err = m.Float64Histogram("voxfluent.audio.duration",
		metric.WithDescription("Length of generated clips."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	if met.ClipsGenerated, err = m.Int64Counter("voxfluent.clips.generated",
		metric.WithDescription("Total clips generated by voice."),
	); err != nil {
		return nil, err
	}
	if met.ClipsDeleted, err = m.Int64Counter("voxfluent.clips.deleted",
		metric.WithDescription("Total clips deleted from history."),
	); err != nil {
		return nil, err
	}
	if met.Errors, err = m.Int64Counter("voxfluent.errors",
		metric.WithDescription("Total failed generations by pipeline stage."),
	); err != nil {
		return nil, err
	}

	if met.ActiveClips, err = m.Int64UpDownCounter("voxfluent.active_clips",
		metric.WithDescription("Number of clips currently held in history."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider].
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordClip records a stored clip: its voice, how long generation took and
// how long the audio is.
func (m *Metrics) RecordClip(ctx context.Context, voice string, elapsed, audio float64) {
	m.ClipsGenerated.Add(ctx, 1, metric.WithAttributes(attribute.String("voice", voice)))
	m.SynthesisDuration.Record(ctx, elapsed)
	m.AudioDuration.Record(ctx, audio)
	m.ActiveClips.Add(ctx, 1)
}

// RecordDelete records n clips leaving the history.
func (m *Metrics) RecordDelete(ctx context.Context, n int) {
	m.ClipsDeleted.Add(ctx, int64(n))
	m.ActiveClips.Add(ctx, -int64(n))
}

// RecordError increments the error counter for stage.
func (m *Metrics) RecordError(ctx context.Context, stage string) {
	m.Errors.Add(ctx, 1, metric.WithAttributes(attribute.String("stage", stage)))
}
