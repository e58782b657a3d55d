// Package engine orchestrates a single compile: lexer -> parser -> ast ->
// dfa, plus the optional literal prefilter, producing one Program.
package engine

import (
	"fmt"

	"github.com/coregx/dfarx/ast"
)

// Config bounds the resources a single compile may spend. It mirrors the
// teacher's meta.Config shape, scaled to what this pipeline needs to guard:
// the position table, repetition desugaring, and the DFA's state count.
type Config struct {
	// MaxPositions caps how many Symbol leaves (position-table entries) a
	// single pattern may allocate, across both literal parsing and
	// repetition/named-group expansion.
	MaxPositions int

	// MaxRepeatExpansion caps the total number of copies of the repeated
	// operand a single {low,top} repetition may desugar into (summed over
	// all its branches), and the lower bound of a {low,} repetition.
	MaxRepeatExpansion int

	// MaxDFAStates caps how many states the subset construction may build
	// before giving up.
	MaxDFAStates int
}

// DefaultConfig returns the limits dfarx.Compile uses when no Config is
// supplied explicitly.
func DefaultConfig() Config {
	limits := ast.DefaultLimits()
	return Config{
		MaxPositions:       limits.MaxPositions,
		MaxRepeatExpansion: limits.MaxRepeatExpansion,
		MaxDFAStates:       4096,
	}
}

// Validate reports whether every limit is a usable positive value.
func (c Config) Validate() error {
	if c.MaxPositions <= 0 {
		return fmt.Errorf("engine: MaxPositions must be positive, got %d", c.MaxPositions)
	}
	if c.MaxRepeatExpansion <= 0 {
		return fmt.Errorf("engine: MaxRepeatExpansion must be positive, got %d", c.MaxRepeatExpansion)
	}
	if c.MaxDFAStates <= 0 {
		return fmt.Errorf("engine: MaxDFAStates must be positive, got %d", c.MaxDFAStates)
	}
	return nil
}

func (c Config) astLimits() ast.Limits {
	return ast.Limits{
		MaxPositions:       c.MaxPositions,
		MaxRepeatExpansion: c.MaxRepeatExpansion,
	}
}
