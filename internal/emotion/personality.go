// Package emotion implements an emotional-support decorator for
// gradient-descent optimizers.
//
// This package provides:
//   - EmotionalOptimizer: wraps any Optimizer and comments on the loss trend
//   - Personality interface: pluggable message-generation strategies
//   - Registry: named lookup of personalities, seeded with the built-ins
//
// The decorator forwards Step and ZeroGrad to the wrapped optimizer
// unchanged. On a configurable cadence it averages the losses recorded since
// the last message and asks the active personality to react to the trend.
// A personality that panics never interrupts the training step: the message
// is simply dropped.
package emotion

// Personality generates a status message from the loss trend.
//
// Implementations receive the averaged loss for the window that just closed,
// the previous window's average (nil before the first completed window), and
// the current step count. Returning the empty string means "no message";
// that is a valid outcome, not an error.
//
// Stateless personalities are usually plain functions wrapped in
// PersonalityFunc. Personalities may carry their own state (see Quiet);
// such implementations are not safe for concurrent use, matching the
// single-goroutine contract of EmotionalOptimizer itself.
type Personality interface {
	React(loss float64, prevLoss *float64, step int) string
}

// PersonalityFunc adapts a plain function to the Personality interface.
type PersonalityFunc func(loss float64, prevLoss *float64, step int) string

// React calls f.
func (f PersonalityFunc) React(loss float64, prevLoss *float64, step int) string {
	return f(loss, prevLoss, step)
}
