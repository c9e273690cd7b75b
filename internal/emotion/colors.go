package emotion

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Per-personality color schemes, roughly matching each personality's tone.
var personalityStyles = map[string]lipgloss.Style{
	"wholesome": lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
	"sassy":     lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	"quiet":     lipgloss.NewStyle().Faint(true),
	"nervous":   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	"chaotic":   lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	"arrogant":  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Italic(true),
	"tired":     lipgloss.NewStyle().Faint(true).Italic(true),
	"hype":      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	"academic":  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	"pirate":    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	"zen":       lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Faint(true),
}

// PersonalityStyle returns the color style for a personality name.
// Unknown names get an unstyled fallback.
func PersonalityStyle(name string) lipgloss.Style {
	if style, ok := personalityStyles[normalize(name)]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// ColoredPrinter writes messages styled with a personality's color scheme.
//
// Its Print method satisfies the decorator's sink signature:
//
//	printer := emotion.NewColoredPrinter("hype", true)
//	opt, err := emotion.New(base, emotion.WithPersonality("hype"), emotion.WithPrintFn(printer.Print))
type ColoredPrinter struct {
	// Out is the destination, os.Stdout unless replaced.
	Out io.Writer

	style   lipgloss.Style
	enabled bool
}

// NewColoredPrinter creates a printer using the named personality's colors.
// With enabled false (or an unknown name) messages pass through unstyled.
func NewColoredPrinter(personality string, enabled bool) *ColoredPrinter {
	return &ColoredPrinter{
		Out:     os.Stdout,
		style:   PersonalityStyle(personality),
		enabled: enabled,
	}
}

// Print writes one message followed by a newline.
func (c *ColoredPrinter) Print(msg string) {
	if c.enabled {
		msg = c.style.Render(msg)
	}
	fmt.Fprintln(c.Out, msg)
}
