package transport

import (
	"time"

	"go.uber.org/zap"
)

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) StageStarted(string) {}
func (NopObserver) StepCompleted(float64, time.Duration) {}
func (NopObserver) ResidueExceeded(float64, string, float64) {}

// LogObserver reports progress through a zap logger: stages at info level,
// per-step timings at debug level and residues as warnings.
type LogObserver struct {
	log *zap.Logger
}

// NewLogObserver returns an Observer logging to log (zap.NewNop() when nil).
func NewLogObserver(log *zap.Logger) *LogObserver {
	if log == nil {
		log = zap.NewNop()
	}

	return &LogObserver{log: log}
}

func (o *LogObserver) StageStarted(stage string) {
	o.log.Info("stage started", zap.String("stage", stage))
}

func (o *LogObserver) StepCompleted(t float64, took time.Duration) {
	o.log.Debug("step completed", zap.Float64("t", t), zap.Duration("took", took))
}

func (o *LogObserver) ResidueExceeded(t float64, direction string, residue float64) {
	o.log.Warn("imaginary residue in net current",
		zap.Float64("t", t),
		zap.String("direction", direction),
		zap.Float64("residue", residue))
}
