package emotion

import "errors"

// Sentinel errors for the emotion package.
// Use errors.Is to check: errors.Is(err, emotion.ErrUnknownPersonality)
var (
	ErrDuplicatePersonality = errors.New("emotion: personality already registered")
	ErrUnknownPersonality   = errors.New("emotion: unknown personality")
	ErrInvalidMessageEvery  = errors.New("emotion: message cadence must be non-negative")
)
