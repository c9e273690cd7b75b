package emotion

import (
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SeedsBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{
		"wholesome", "sassy", "quiet", "nervous", "chaotic",
		"arrogant", "tired", "hype", "academic", "pirate", "zen",
	} {
		p, err := r.Resolve(name)
		require.NoError(t, err, "builtin %q should resolve", name)
		assert.NotNil(t, p)
	}
}

func TestRegistry_ResolveCaseInsensitive(t *testing.T) {
	r := NewRegistry()

	lower, err := r.Resolve("wholesome")
	require.NoError(t, err)
	upper, err := r.Resolve("WHOLESOME")
	require.NoError(t, err)

	// Function values aren't comparable; check both resolve to the same
	// behavior instead.
	prev := 1.0
	assert.Equal(t, lower.React(0.5, &prev, 2), upper.React(0.5, &prev, 2))
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("nonexistent")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownPersonality)
	assert.Contains(t, err.Error(), "available:")
	assert.Contains(t, err.Error(), "zen")
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := NewRegistry()

	dummy := PersonalityFunc(func(loss float64, prevLoss *float64, step int) string {
		return "dummy"
	})

	err := r.Register("wholesome", dummy, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicatePersonality)

	// Case-insensitive: different casing is still a duplicate.
	err = r.Register("Wholesome", dummy, false)
	assert.ErrorIs(t, err, ErrDuplicatePersonality)
}

func TestRegistry_RegisterOverwrite(t *testing.T) {
	r := NewRegistry()

	replacement := PersonalityFunc(func(loss float64, prevLoss *float64, step int) string {
		return "replacement"
	})

	require.NoError(t, r.Register("sassy", replacement, true))

	p, err := r.Resolve("sassy")
	require.NoError(t, err)
	assert.Equal(t, "replacement", p.React(1.0, nil, 1))
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := NewRegistry()
	assert.Error(t, r.Register("nothing", nil, false))
}

func TestRegistry_RegisterNewName(t *testing.T) {
	r := NewRegistry()

	custom := PersonalityFunc(func(loss float64, prevLoss *float64, step int) string {
		return "custom"
	})
	require.NoError(t, r.Register("Custom", custom, false))

	// Registered names resolve case-insensitively.
	p, err := r.Resolve("CUSTOM")
	require.NoError(t, err)
	assert.Equal(t, "custom", p.React(1.0, nil, 1))

	assert.Contains(t, slices.Collect(r.Names()), "custom")
}

func TestRegistry_NamesSortedAndRestartable(t *testing.T) {
	r := NewRegistry()

	first := slices.Collect(r.Names())
	second := slices.Collect(r.Names())

	assert.Len(t, first, 11)
	assert.True(t, sort.StringsAreSorted(first), "names must be alphabetically sorted")
	assert.Equal(t, first, second, "the sequence must be restartable")

	// Early break must not panic or corrupt anything.
	for range r.Names() {
		break
	}
	assert.Equal(t, first, slices.Collect(r.Names()))
}

func TestRegistries_DoNotShareQuietState(t *testing.T) {
	a, err := NewRegistry().Resolve("quiet")
	require.NoError(t, err)
	b, err := NewRegistry().Resolve("quiet")
	require.NoError(t, err)

	assert.NotSame(t, a, b, "each registry must get its own stateful quiet instance")
}
