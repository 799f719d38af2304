// Package session turns a raw input string into a transcript and a frame
// sequence.
package session

import (
	"strings"

	"go.uber.org/zap"

	"github.com/san-kum/sortstep/internal/frame"
	"github.com/san-kum/sortstep/internal/input"
	"github.com/san-kum/sortstep/internal/metrics"
	"github.com/san-kum/sortstep/internal/trace"
)

// DefaultSeparator joins step descriptions in the transcript.
const DefaultSeparator = "\n"

// Stats summarizes one sort.
type Stats struct {
	Elements    int       `json:"elements"`
	Steps       int       `json:"steps"`
	Shifts      int       `json:"shifts"`
	Comparisons int       `json:"comparisons"`
	Inversions  int       `json:"inversions"`
	History     []float64 `json:"inversion_history"`
}

// Result is the outcome of Process. On a validation failure only Input,
// Err and Message are set.
type Result struct {
	Input      string             `json:"input"`
	Sorted     []int              `json:"sorted,omitempty"`
	Steps      []trace.Step       `json:"-"`
	Transcript string             `json:"transcript,omitempty"`
	Frames     []frame.Descriptor `json:"frames,omitempty"`
	Stats      *Stats             `json:"stats,omitempty"`
	Err        error              `json:"-"`
	Message    string             `json:"error,omitempty"`
}

// OK reports whether the input was valid.
func (r *Result) OK() bool { return r.Err == nil }

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithSeparator sets the transcript separator.
func WithSeparator(sep string) Option {
	return func(o *Orchestrator) { o.separator = sep }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithObserver adds an observer notified of every step.
func WithObserver(obs trace.Observer) Option {
	return func(o *Orchestrator) { o.observers = append(o.observers, obs) }
}

// Orchestrator runs validation, tracing and frame mapping in sequence. It
// keeps no state between calls, so it may be shared across goroutines as
// long as any observers added with WithObserver allow that.
type Orchestrator struct {
	separator string
	logger    *zap.Logger
	observers []trace.Observer
}

func New(opts ...Option) *Orchestrator {
	o := &Orchestrator{
		separator: DefaultSeparator,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Process validates raw, sorts it and renders every step.
func (o *Orchestrator) Process(raw string) *Result {
	values, err := input.Parse(raw)
	if err != nil {
		msg := input.Message(err)
		o.logger.Info("input rejected", zap.String("reason", err.Error()), zap.String("message", msg))
		return &Result{Input: raw, Err: err, Message: msg}
	}

	shifts := metrics.NewShifts()
	comparisons := metrics.NewComparisons()
	inversions := metrics.NewInversions()

	observers := append(metrics.Observers([]metrics.Metric{shifts, comparisons, inversions}), o.observers...)
	sorted, steps := trace.New(observers...).Run(values)

	desc := make([]string, len(steps))
	for i, s := range steps {
		desc[i] = s.Description
	}
	frames := frame.RenderAll(steps)

	o.logger.Debug("input processed",
		zap.Int("tokens", len(values)),
		zap.Int("steps", len(steps)),
		zap.Int("frames", len(frames)),
	)

	return &Result{
		Input:      raw,
		Sorted:     sorted,
		Steps:      steps,
		Transcript: strings.Join(desc, o.separator),
		Frames:     frames,
		Stats: &Stats{
			Elements:    len(values),
			Steps:       len(steps),
			Shifts:      int(shifts.Value()),
			Comparisons: int(comparisons.Value()),
			Inversions:  int(inversions.Initial()),
			History:     inversions.History(),
		},
	}
}

// Process runs raw through a default Orchestrator.
func Process(raw string) *Result {
	return New().Process(raw)
}
