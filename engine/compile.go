package engine

import (
	"sort"

	"github.com/coregx/dfarx/ast"
	"github.com/coregx/dfarx/dfa"
	"github.com/coregx/dfarx/literal"
	"github.com/coregx/dfarx/parser"
	"github.com/coregx/dfarx/prefilter"
)

// Program is the fully compiled form of a pattern.
type Program struct {
	Automaton *dfa.Automaton
	Groups    []string
	Prefilter prefilter.Prefilter // nil unless the pattern is a pure literal alternation
	Errors    []string
}

// Ok reports whether the compile produced a usable Program with no
// diagnostics.
func (p *Program) Ok() bool { return len(p.Errors) == 0 }

// Compile runs the lexer -> parser -> ast -> dfa pipeline once for pattern.
// A fresh ast.Context is constructed for every call, so nothing from a
// previous Compile leaks into this one. If parsing produced any
// diagnostics, Compile returns immediately without attempting to build a
// DFA over a tree that may contain invalid positions.
func Compile(pattern string, cfg Config) *Program {
	ctx := ast.NewContext(cfg.astLimits())
	root := parser.Parse(ctx, pattern)

	if !ctx.Ok() {
		return &Program{Errors: ctx.Errors}
	}

	automaton, err := dfa.Build(ctx, root, cfg.MaxDFAStates)
	if err != nil {
		return &Program{Errors: append(ctx.Errors, err.Error())}
	}

	groups := make([]string, 0, len(ctx.Groups))
	for name := range ctx.Groups {
		groups = append(groups, name)
	}
	sort.Strings(groups)

	p := &Program{Automaton: automaton, Groups: groups}

	if lits, ok := literal.ExtractAlternation(root); ok && len(lits) > 0 {
		if pf, err := prefilter.NewAhoCorasick(lits); err == nil {
			p.Prefilter = pf
		}
	}

	return p
}
