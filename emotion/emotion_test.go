package emotion_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emotigrad-ml/emotigrad/emotion"
	"github.com/emotigrad-ml/emotigrad/optim"
)

// Minimize f(x) = (x-3)^2 with a wrapped SGD and check that the decorator
// sees the real training dynamics: messages flow and the loss trends down.
func TestEmotionalOptimizer_EndToEndTraining(t *testing.T) {
	x := optim.NewParameter("x", []float64{10.0})
	base, err := optim.NewSGD([]*optim.Parameter{x}, optim.SGDConfig{LR: 0.1})
	require.NoError(t, err)

	var messages []string
	opt, err := emotion.New(base,
		emotion.WithPersonality("wholesome"),
		emotion.WithMessageEvery(5),
		emotion.WithPrintFn(func(m string) { messages = append(messages, m) }),
	)
	require.NoError(t, err)

	loss := func() float64 {
		d := x.Data[0] - 3
		return d * d
	}

	const steps = 50
	for i := 0; i < steps; i++ {
		opt.ZeroGrad()
		x.Grad[0] = 2 * (x.Data[0] - 3)
		require.NoError(t, opt.StepWithLoss(loss()))
	}

	assert.Equal(t, steps, opt.StepCount())
	assert.InDelta(t, 3.0, x.Data[0], 0.01, "SGD should converge on the minimum")

	// 50 steps at cadence 5: one introductory message, then improvements.
	require.Len(t, messages, 10)
	assert.Contains(t, messages[0], "Let's get started")
	for _, msg := range messages[1:] {
		assert.Contains(t, msg, "Nice!", "loss decreases monotonically on a convex objective")
	}

	require.NotNil(t, opt.PrevLoss())
	assert.Less(t, *opt.PrevLoss(), 1.0)
}

// The decorator must accept any optimizer implementation, not just the ones
// shipped in optim.
func TestEmotionalOptimizer_WrapsThirdPartyOptimizer(t *testing.T) {
	noop := noopOptimizer{}

	opt, err := emotion.New(noop,
		emotion.WithEnabled(false),
	)
	require.NoError(t, err)

	require.NoError(t, opt.Step())
	assert.Equal(t, 1, opt.StepCount())
}

type noopOptimizer struct{}

func (noopOptimizer) Step() error { return nil }
func (noopOptimizer) ZeroGrad()   {}
