// Package ast implements the augmented syntax tree for a compiled pattern
// and the Aho–Sethi–Ullman attribute algebra (nullable, firstpos, lastpos,
// followpos) that drives DFA construction directly from the tree, with no
// NFA intermediate.
package ast

// Node is a syntax-tree node carrying the Aho–Sethi–Ullman attributes.
// FirstPos and LastPos are pure functions of the subtree's shape and can be
// queried repeatedly; ComputeFollowPos has a side effect on ctx's followpos
// table and is meant to be called exactly once per compile, from Root.
type Node interface {
	Nullable() bool
	FirstPos() *PosSet
	LastPos() *PosSet
	ComputeFollowPos(ctx *Context)
}

// Symbol is a leaf node matching one literal rune, or (when Any is set by
// the "." token) any single rune. Every Symbol occupies exactly one entry
// in its Context's position table, identified by ID.
type Symbol struct {
	Ch  rune
	Any bool
	ctx *Context
	id  int
}

// NewSymbol allocates a fresh position for the literal rune ch. If the
// compile has already exceeded Limits.MaxPositions, the returned Symbol
// carries an invalid id and ctx records the overflow as a diagnostic; the
// tree is still well-formed enough for the parser to finish, but
// engine.Compile must not proceed to DFA construction once ctx has errors.
func NewSymbol(ctx *Context, ch rune) *Symbol {
	s := &Symbol{Ch: ch, ctx: ctx}
	s.id = ctx.allocPosition(s)
	return s
}

// NewAnySymbol allocates a fresh position for a "." wildcard leaf, which
// matches any single rune.
func NewAnySymbol(ctx *Context) *Symbol {
	s := &Symbol{Any: true, ctx: ctx}
	s.id = ctx.allocPosition(s)
	return s
}

// ID returns the Symbol's position id.
func (s *Symbol) ID() int { return s.id }

// Matches reports whether this leaf accepts rune r.
func (s *Symbol) Matches(r rune) bool {
	return s.Any || s.Ch == r
}

func (s *Symbol) Nullable() bool    { return false }
func (s *Symbol) FirstPos() *PosSet { return s.ctx.Singleton(s.id) }
func (s *Symbol) LastPos() *PosSet  { return s.ctx.Singleton(s.id) }
func (s *Symbol) ComputeFollowPos(ctx *Context) {}

// Empty matches the zero-length string and contributes no position.
type Empty struct {
	ctx *Context
}

func NewEmpty(ctx *Context) *Empty { return &Empty{ctx: ctx} }

func (e *Empty) Nullable() bool                { return true }
func (e *Empty) FirstPos() *PosSet             { return e.ctx.NewPosSet() }
func (e *Empty) LastPos() *PosSet              { return e.ctx.NewPosSet() }
func (e *Empty) ComputeFollowPos(ctx *Context) {}

// Or is alternation: Left|Right.
type Or struct {
	Left, Right Node
	ctx         *Context
}

func NewOr(ctx *Context, left, right Node) *Or {
	return &Or{Left: left, Right: right, ctx: ctx}
}

func (o *Or) Nullable() bool    { return o.Left.Nullable() || o.Right.Nullable() }
func (o *Or) FirstPos() *PosSet { return Merge(o.Left.FirstPos(), o.Right.FirstPos()) }
func (o *Or) LastPos() *PosSet  { return Merge(o.Left.LastPos(), o.Right.LastPos()) }
func (o *Or) ComputeFollowPos(ctx *Context) {
	o.Left.ComputeFollowPos(ctx)
	o.Right.ComputeFollowPos(ctx)
}

// Concat is juxtaposition: Left followed by Right.
type Concat struct {
	Left, Right Node
	ctx         *Context
}

func NewConcat(ctx *Context, left, right Node) *Concat {
	return &Concat{Left: left, Right: right, ctx: ctx}
}

func (c *Concat) Nullable() bool { return c.Left.Nullable() && c.Right.Nullable() }

func (c *Concat) FirstPos() *PosSet {
	if c.Left.Nullable() {
		return Merge(c.Left.FirstPos(), c.Right.FirstPos())
	}
	return c.Left.FirstPos()
}

func (c *Concat) LastPos() *PosSet {
	if c.Right.Nullable() {
		return Merge(c.Left.LastPos(), c.Right.LastPos())
	}
	return c.Right.LastPos()
}

func (c *Concat) ComputeFollowPos(ctx *Context) {
	rightFirst := c.Right.FirstPos()
	for _, p := range c.Left.LastPos().SortedIDs() {
		ctx.addFollow(p, rightFirst)
	}
	c.Left.ComputeFollowPos(ctx)
	c.Right.ComputeFollowPos(ctx)
}

// Closure is Kleene star: Child repeated zero or more times.
type Closure struct {
	Child Node
	ctx   *Context
}

func NewClosure(ctx *Context, child Node) *Closure {
	return &Closure{Child: child, ctx: ctx}
}

func (k *Closure) Nullable() bool    { return true }
func (k *Closure) FirstPos() *PosSet { return k.Child.FirstPos() }
func (k *Closure) LastPos() *PosSet  { return k.Child.LastPos() }
func (k *Closure) ComputeFollowPos(ctx *Context) {
	childFirst := k.Child.FirstPos()
	for _, p := range k.Child.LastPos().SortedIDs() {
		ctx.addFollow(p, childFirst)
	}
	k.Child.ComputeFollowPos(ctx)
}

// NCG (named capture group) is a transparent wrapper recorded in
// Context.Groups under Name at parse time; its attributes forward to Child
// unchanged so it never affects DFA construction on its own.
type NCG struct {
	Name  string
	Child Node
	ctx   *Context
}

func NewNCG(ctx *Context, name string, child Node) *NCG {
	return &NCG{Name: name, Child: child, ctx: ctx}
}

func (n *NCG) Nullable() bool               { return n.Child.Nullable() }
func (n *NCG) FirstPos() *PosSet             { return n.Child.FirstPos() }
func (n *NCG) LastPos() *PosSet              { return n.Child.LastPos() }
func (n *NCG) ComputeFollowPos(ctx *Context) { n.Child.ComputeFollowPos(ctx) }

// Root is the augmented start symbol: conceptually Concat(Child, #), where #
// is EndMarker. Unlike a real Concat, # is never allocated a position, so
// Root computes its own attributes instead of delegating to Concat.
//
// FirstPos and LastPos are literal passthroughs to Child's, matching
// RootNode.firstpos/lastpos in the reference engine exactly: # is never
// added to either set directly. EndMarker only enters the DFA by being
// threaded into followpos (see ComputeFollowPos), so a pattern whose root
// is nullable does not make the DFA's start state accepting — an overall
// match against the empty string is never produced, however surprising
// that is for a pattern like "a?". This is preserved on purpose; see
// DESIGN.md.
type Root struct {
	Child Node
	ctx   *Context
}

func NewRoot(ctx *Context, child Node) *Root {
	return &Root{Child: child, ctx: ctx}
}

func (r *Root) Nullable() bool { return r.Child.Nullable() }

func (r *Root) FirstPos() *PosSet { return r.Child.FirstPos() }

func (r *Root) LastPos() *PosSet { return r.Child.LastPos() }

func (r *Root) ComputeFollowPos(ctx *Context) {
	for _, p := range r.Child.LastPos().SortedIDs() {
		ctx.addFollow(p, ctx.Singleton(EndMarker))
	}
	r.Child.ComputeFollowPos(ctx)
}
