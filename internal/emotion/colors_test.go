package emotion

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColoredPrinter_Disabled(t *testing.T) {
	var buf bytes.Buffer
	printer := NewColoredPrinter("hype", false)
	printer.Out = &buf

	printer.Print("hello")

	assert.Equal(t, "hello\n", buf.String(), "disabled printer must pass text through untouched")
}

func TestColoredPrinter_MessageSurvivesStyling(t *testing.T) {
	var buf bytes.Buffer
	printer := NewColoredPrinter("wholesome", true)
	printer.Out = &buf

	printer.Print("loss improved")

	// Whether or not the environment supports color, the text itself must
	// come through.
	assert.Contains(t, buf.String(), "loss improved")
}

func TestColoredPrinter_UnknownPersonality(t *testing.T) {
	var buf bytes.Buffer
	printer := NewColoredPrinter("no-such-personality", true)
	printer.Out = &buf

	require.NotPanics(t, func() { printer.Print("still works") })
	assert.Contains(t, buf.String(), "still works")
}

func TestPersonalityStyle_CaseInsensitive(t *testing.T) {
	lower := PersonalityStyle("pirate")
	upper := PersonalityStyle("PIRATE")

	assert.Equal(t, lower.Render("arr"), upper.Render("arr"))
}

func TestPersonalityStyle_AllBuiltinsHaveStyles(t *testing.T) {
	r := NewRegistry()
	for name := range r.Names() {
		_, ok := personalityStyles[name]
		assert.True(t, ok, "builtin %q should have a color scheme", name)
	}
}
