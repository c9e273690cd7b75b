package emotion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every stateless built-in must speak on the first window, on a decrease,
// and on an increase. Plateau behavior is personality-specific and tested
// separately.
func TestBuiltins_TrendResponses(t *testing.T) {
	builtins := map[string]PersonalityFunc{
		"wholesome": Wholesome,
		"sassy":     Sassy,
		"nervous":   Nervous,
		"chaotic":   Chaotic,
		"arrogant":  Arrogant,
		"tired":     Tired,
		"hype":      Hype,
		"academic":  Academic,
		"pirate":    Pirate,
		"zen":       Zen,
	}

	prev := 1.0
	for name, p := range builtins {
		t.Run(name, func(t *testing.T) {
			assert.NotEmpty(t, p(1.0, nil, 1), "first window message")
			assert.NotEmpty(t, p(0.5, &prev, 2), "decrease message")
			assert.NotEmpty(t, p(1.5, &prev, 2), "increase message")
		})
	}
}

func TestBuiltins_PlateauResponses(t *testing.T) {
	prev := 1.0

	// Wholesome is the one built-in that stays silent on a plateau.
	assert.Empty(t, Wholesome(1.0, &prev, 2))

	for name, p := range map[string]PersonalityFunc{
		"sassy":    Sassy,
		"nervous":  Nervous,
		"chaotic":  Chaotic,
		"arrogant": Arrogant,
		"tired":    Tired,
		"hype":     Hype,
		"academic": Academic,
		"pirate":   Pirate,
		"zen":      Zen,
	} {
		assert.NotEmpty(t, p(1.0, &prev, 2), "%s plateau message", name)
	}
}

func TestWholesome_Messages(t *testing.T) {
	first := Wholesome(1.0, nil, 1)
	assert.Contains(t, first, "Let's get started")
	assert.Contains(t, first, "1.0000")

	prev := 1.0
	assert.Contains(t, Wholesome(0.5, &prev, 2), "Nice!")
	assert.Contains(t, Wholesome(1.5, &prev, 2), "It's okay!")
}

func TestSassy_Messages(t *testing.T) {
	assert.Contains(t, Sassy(1.0, nil, 1), "Fine")

	prev := 1.0
	assert.Contains(t, Sassy(0.5, &prev, 2), "About time")
	assert.Contains(t, Sassy(1.5, &prev, 2), "Bold move")
	assert.Contains(t, Sassy(1.0, &prev, 2), "Exactly the same")
}

func TestQuiet_EmitsEveryNthCall(t *testing.T) {
	q := NewQuiet(5)

	for call := 1; call <= 4; call++ {
		assert.Empty(t, q.React(1.0, nil, call), "call %d should stay silent", call)
	}

	msg := q.React(1.0, nil, 5)
	require.NotEmpty(t, msg)
	assert.Contains(t, msg, "Step 5")

	// Counter keeps running: next emission is five calls later.
	for call := 6; call <= 9; call++ {
		assert.Empty(t, q.React(1.0, nil, call))
	}
	assert.NotEmpty(t, q.React(1.0, nil, 10))
}

func TestQuiet_CountsOwnCallsNotDecoratorSteps(t *testing.T) {
	q := NewQuiet(2)

	// The decorator step numbers are sparse, but quiet only cares how often
	// it has been asked.
	assert.Empty(t, q.React(1.0, nil, 10))
	assert.NotEmpty(t, q.React(1.0, nil, 20))
}

func TestNewQuiet_DefaultInterval(t *testing.T) {
	q := NewQuiet(0)
	assert.Equal(t, 10, q.everyN)
}

func TestAcademic_ReportsPercentChange(t *testing.T) {
	prev := 2.0

	decrease := Academic(1.0, &prev, 2)
	assert.Contains(t, decrease, "50.00% reduction")

	increase := Academic(3.0, &prev, 2)
	assert.Contains(t, increase, "50.00% increase")
}

func TestAcademic_ZeroPreviousLoss(t *testing.T) {
	prev := 0.0
	assert.NotPanics(t, func() {
		assert.NotEmpty(t, Academic(1.0, &prev, 2))
	})
}

func TestChaotic_PicksKnownVariants(t *testing.T) {
	prev := 1.0

	// Random choice: run enough times to exercise all branches.
	for i := 0; i < 30; i++ {
		for _, msg := range []string{
			Chaotic(1.0, nil, 1),
			Chaotic(0.5, &prev, 2),
			Chaotic(1.5, &prev, 2),
		} {
			require.NotEmpty(t, msg)
			assert.False(t, strings.Contains(msg, "%!"), "formatting verb leaked into %q", msg)
		}
	}
}
