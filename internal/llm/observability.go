package llm

import "log/slog"

// CallEvent records metadata about a single model invocation.
type CallEvent struct {
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about model calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// SlogObserver writes call events through a slog.Logger.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates an Observer over the given logger; a nil
// logger uses the default.
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogObserver{logger: logger}
}

func (o *SlogObserver) OnCallComplete(event CallEvent) {
	if event.Success {
		o.logger.Info("llm_call", "model", event.Model, "latency_ms", event.LatencyMs)
		return
	}
	o.logger.Error("llm_call", "model", event.Model, "latency_ms", event.LatencyMs,
		"error_code", event.ErrorCode)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
