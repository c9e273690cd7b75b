package emotion

import (
	"fmt"

	"go.uber.org/zap"
)

// Optimizer is the subset of an optimizer's behavior the decorator forwards.
//
// *optim.SGD and *optim.Adam satisfy it, as does any third-party optimizer
// with the same two methods.
type Optimizer interface {
	Step() error
	ZeroGrad()
}

// EmotionalOptimizer decorates an Optimizer with step counting, windowed
// loss averaging, and personality-generated status messages.
//
// The wrapped optimizer stays externally owned: the decorator forwards Step
// and ZeroGrad unchanged and layers its own bookkeeping on top. It is
// designed for use inside one sequential training loop and is not safe for
// concurrent use.
type EmotionalOptimizer struct {
	opt         Optimizer
	personality Personality
	enabled     bool
	printFn     func(string)
	every       int
	logger      *zap.Logger

	stepCount int
	windowSum float64
	windowN   int
	prevLoss  *float64
}

type config struct {
	name     string
	custom   Personality
	enabled  bool
	printFn  func(string)
	every    int
	registry *Registry
	logger   *zap.Logger
}

// Option configures an EmotionalOptimizer at construction time.
type Option func(*config)

// WithPersonality selects a built-in (or registered) personality by name.
// The default is "wholesome".
func WithPersonality(name string) Option {
	return func(c *config) { c.name = name }
}

// WithCustomPersonality supplies a personality directly, bypassing the
// registry. It takes precedence over WithPersonality.
func WithCustomPersonality(p Personality) Option {
	return func(c *config) { c.custom = p }
}

// WithEnabled toggles message emission. Disabling leaves step counting and
// forwarding intact but never invokes the personality.
func WithEnabled(enabled bool) Option {
	return func(c *config) { c.enabled = enabled }
}

// WithPrintFn routes generated messages to a custom sink instead of the
// default colored console printer.
func WithPrintFn(fn func(string)) Option {
	return func(c *config) { c.printFn = fn }
}

// WithMessageEvery sets the message cadence: a message is considered every n
// steps, reacting to the average of the losses recorded in that window.
// 0 disables messaging entirely. The default is 1.
func WithMessageEvery(n int) Option {
	return func(c *config) { c.every = n }
}

// WithRegistry resolves the personality name against a caller-owned registry
// instead of a fresh built-in one.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithLogger sets the logger used to report swallowed personality failures.
// The default discards them.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// New wraps opt in an EmotionalOptimizer.
//
// It fails if the requested personality name is not registered or if the
// message cadence is negative.
func New(opt Optimizer, opts ...Option) (*EmotionalOptimizer, error) {
	if opt == nil {
		return nil, fmt.Errorf("emotion: wrapped optimizer must not be nil")
	}

	cfg := config{
		name:    "wholesome",
		enabled: true,
		every:   1,
	}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.every < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMessageEvery, cfg.every)
	}

	personality := cfg.custom
	styleName := ""
	if personality == nil {
		registry := cfg.registry
		if registry == nil {
			registry = NewRegistry()
		}
		resolved, err := registry.Resolve(cfg.name)
		if err != nil {
			return nil, err
		}
		personality = resolved
		styleName = cfg.name
	}

	printFn := cfg.printFn
	if printFn == nil {
		printFn = NewColoredPrinter(styleName, true).Print
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &EmotionalOptimizer{
		opt:         opt,
		personality: personality,
		enabled:     cfg.enabled,
		printFn:     printFn,
		every:       cfg.every,
		logger:      logger,
	}, nil
}

// Step forwards to the wrapped optimizer without recording a loss.
//
// The step still counts toward the message cadence; a window that closes
// without any recorded loss produces no message.
func (e *EmotionalOptimizer) Step() error {
	return e.step(nil)
}

// StepWithLoss forwards to the wrapped optimizer and records loss for the
// current message window.
func (e *EmotionalOptimizer) StepWithLoss(loss float64) error {
	return e.step(&loss)
}

func (e *EmotionalOptimizer) step(loss *float64) error {
	err := e.opt.Step()

	e.stepCount++
	if loss != nil {
		e.windowSum += *loss
		e.windowN++
	}

	if e.enabled && e.every > 0 && e.stepCount%e.every == 0 && e.windowN > 0 {
		avg := e.windowSum / float64(e.windowN)
		e.react(avg)
		e.prevLoss = &avg
		e.windowSum = 0
		e.windowN = 0
	}

	return err
}

// react asks the personality for a message and prints it. Panics from the
// personality or the sink are swallowed here so a broken personality can
// never interrupt the training step.
func (e *EmotionalOptimizer) react(avg float64) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Debug("personality failed, message dropped",
				zap.Int("step", e.stepCount),
				zap.Float64("loss", avg),
				zap.Any("panic", r))
		}
	}()

	msg := e.personality.React(avg, e.prevLoss, e.stepCount)
	if msg != "" {
		e.printFn(msg)
	}
}

// ZeroGrad forwards to the wrapped optimizer.
func (e *EmotionalOptimizer) ZeroGrad() {
	e.opt.ZeroGrad()
}

// SetPersonality swaps the active personality mid-training. The loss window
// and previous average carry over.
func (e *EmotionalOptimizer) SetPersonality(p Personality) {
	if p != nil {
		e.personality = p
	}
}

// StepCount reports how many times Step or StepWithLoss has been called.
func (e *EmotionalOptimizer) StepCount() int {
	return e.stepCount
}

// PrevLoss reports the previous window's average loss, or nil before the
// first completed window.
func (e *EmotionalOptimizer) PrevLoss() *float64 {
	if e.prevLoss == nil {
		return nil
	}
	v := *e.prevLoss
	return &v
}
