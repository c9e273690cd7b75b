// Copyright 2026 The emotigrad Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package emotion

import (
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/emotigrad-ml/emotigrad/internal/emotion"
)

// EmotionalOptimizer decorates an optimizer with loss-trend commentary.
type EmotionalOptimizer = emotion.EmotionalOptimizer

// Optimizer is the interface a wrapped optimizer must satisfy.
type Optimizer = emotion.Optimizer

// Personality generates a status message from the loss trend.
type Personality = emotion.Personality

// PersonalityFunc adapts a plain function to the Personality interface.
type PersonalityFunc = emotion.PersonalityFunc

// Registry maps names to personalities.
type Registry = emotion.Registry

// Quiet is the stateful built-in that only speaks every Nth reaction.
type Quiet = emotion.Quiet

// ColoredPrinter writes messages styled with a personality's colors.
type ColoredPrinter = emotion.ColoredPrinter

// Config holds decorator settings in a YAML-loadable form.
type Config = emotion.Config

// Option configures an EmotionalOptimizer at construction time.
type Option = emotion.Option

// Sentinel errors surfaced by construction and registry operations.
var (
	ErrDuplicatePersonality = emotion.ErrDuplicatePersonality
	ErrUnknownPersonality   = emotion.ErrUnknownPersonality
	ErrInvalidMessageEvery  = emotion.ErrInvalidMessageEvery
)

// New wraps opt in an EmotionalOptimizer.
//
// Example:
//
//	opt, err := emotion.New(base,
//	    emotion.WithPersonality("zen"),
//	    emotion.WithMessageEvery(25),
//	)
func New(opt Optimizer, opts ...Option) (*EmotionalOptimizer, error) {
	return emotion.New(opt, opts...)
}

// WithPersonality selects a built-in (or registered) personality by name.
// The default is "wholesome".
func WithPersonality(name string) Option {
	return emotion.WithPersonality(name)
}

// WithCustomPersonality supplies a personality directly, bypassing the
// registry.
func WithCustomPersonality(p Personality) Option {
	return emotion.WithCustomPersonality(p)
}

// WithEnabled toggles message emission.
func WithEnabled(enabled bool) Option {
	return emotion.WithEnabled(enabled)
}

// WithPrintFn routes generated messages to a custom sink.
func WithPrintFn(fn func(string)) Option {
	return emotion.WithPrintFn(fn)
}

// WithMessageEvery sets the message cadence; 0 disables messaging.
func WithMessageEvery(n int) Option {
	return emotion.WithMessageEvery(n)
}

// WithRegistry resolves the personality name against a caller-owned registry.
func WithRegistry(r *Registry) Option {
	return emotion.WithRegistry(r)
}

// WithLogger sets the logger used to report swallowed personality failures.
func WithLogger(logger *zap.Logger) Option {
	return emotion.WithLogger(logger)
}

// NewRegistry creates a registry pre-populated with the built-in
// personalities.
func NewRegistry() *Registry {
	return emotion.NewRegistry()
}

// NewQuiet creates a Quiet personality that emits every everyN reactions.
func NewQuiet(everyN int) *Quiet {
	return emotion.NewQuiet(everyN)
}

// NewColoredPrinter creates a printer using the named personality's colors.
func NewColoredPrinter(personality string, enabled bool) *ColoredPrinter {
	return emotion.NewColoredPrinter(personality, enabled)
}

// PersonalityStyle returns the color style for a personality name.
func PersonalityStyle(name string) lipgloss.Style {
	return emotion.PersonalityStyle(name)
}

// DefaultConfig returns the decorator defaults.
func DefaultConfig() Config {
	return emotion.DefaultConfig()
}

// LoadConfig reads a YAML config file, layering it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return emotion.LoadConfig(path)
}
