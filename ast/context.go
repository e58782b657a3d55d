package ast

import (
	"fmt"

	"github.com/coregx/dfarx/internal/sparse"
)

// Limits bounds the resources a single compile may spend building the
// syntax tree and its followpos table. A pattern that would exceed them
// fails the compile with a diagnostic rather than growing Context's tables
// without bound.
type Limits struct {
	MaxPositions       int
	MaxRepeatExpansion int
}

// DefaultLimits is what engine.DefaultConfig wires into a fresh Context.
func DefaultLimits() Limits {
	return Limits{
		MaxPositions:       4096,
		MaxRepeatExpansion: 1024,
	}
}

// Context is the per-compile position table, followpos table, and named
// group table. engine.Compile constructs a fresh Context for every call;
// nothing here is shared or reused across compiles.
type Context struct {
	Limits Limits

	positions []*Symbol // position id -> the Symbol leaf at that position
	follow    []*PosSet // position id -> that position's followpos set

	// Groups holds named group definitions (<name> reg), keyed by name, so
	// a later bare <name> reference can be expanded via Copy.
	Groups map[string]Node

	Errors []string
}

// NewContext builds an empty Context ready for a single compile.
func NewContext(limits Limits) *Context {
	return &Context{
		Limits: limits,
		Groups: make(map[string]Node),
	}
}

// NumPositions returns how many real positions have been allocated so far.
func (c *Context) NumPositions() int { return len(c.positions) }

// allocPosition reserves the next position id for leaf and gives it an
// empty followpos set. Returns invalidPos without allocating if the
// compile has already hit Limits.MaxPositions.
func (c *Context) allocPosition(leaf *Symbol) int {
	if len(c.positions) >= c.Limits.MaxPositions {
		c.AddError(fmt.Sprintf("pattern exceeds maximum position count (%d)", c.Limits.MaxPositions))
		return invalidPos
	}
	id := len(c.positions)
	c.positions = append(c.positions, leaf)
	c.follow = append(c.follow, c.NewPosSet())
	return id
}

// NewPosSet allocates an empty PosSet sized to this compile's position
// universe.
func (c *Context) NewPosSet() *PosSet {
	return newPosSet(sparse.NewSparseSet(uint32(c.Limits.MaxPositions)))
}

// Singleton returns a PosSet containing exactly id (a real position id or
// EndMarker).
func (c *Context) Singleton(id int) *PosSet {
	s := c.NewPosSet()
	s.Add(id)
	return s
}

// Symbol returns the leaf allocated at position id.
func (c *Context) Symbol(id int) *Symbol { return c.positions[id] }

// Positions returns every leaf allocated during this compile, indexed by
// position id. Used by dfa.Build to derive the pattern's literal alphabet.
func (c *Context) Positions() []*Symbol { return c.positions }

// FollowPos returns the followpos set at position id, built up during
// ComputeFollowPos.
func (c *Context) FollowPos(id int) *PosSet {
	if id < 0 || id >= len(c.follow) {
		return c.NewPosSet()
	}
	return c.follow[id]
}

// addFollow merges into into the followpos set at position id.
func (c *Context) addFollow(id int, into *PosSet) {
	if id < 0 || id >= len(c.follow) {
		return
	}
	c.follow[id].Union(into)
}

// AddError appends a diagnostic to the compile's ordered error list.
func (c *Context) AddError(msg string) { c.Errors = append(c.Errors, msg) }

// Ok reports whether the compile has accumulated no errors so far.
func (c *Context) Ok() bool { return len(c.Errors) == 0 }
