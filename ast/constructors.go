package ast

import "fmt"

// NewOpt desugars a? into a|ε at construction time; there is no runtime
// Opt variant to keep attribute queries in sync with.
func NewOpt(ctx *Context, child Node) Node {
	return NewOr(ctx, child, NewEmpty(ctx))
}

// NewPositClos desugars a+ into a followed by a* over a fresh copy of a, so
// the mandatory first occurrence and the repeated tail don't share position
// ids. The mandatory operand keeps the caller's child as-is; only the
// closure operand is copied, matching spec.md's literal
// Concat(child, Closure(Copy(child))) wording.
func NewPositClos(ctx *Context, child Node) Node {
	return NewConcat(ctx, child, NewClosure(ctx, Copy(ctx, child)))
}

// NewRepit desugars bounded repetition {low,top} (top == -1 means
// unbounded, i.e. {low,}) into Or/Concat/Closure/Symbol/Empty, each branch
// built from independent copies of child so no position id is shared
// between repetitions.
func NewRepit(ctx *Context, child Node, low, top int) Node {
	if low > 0 && top == 0 {
		ctx.AddError("Upper bound must be greater then 0!")
		return NewEmpty(ctx)
	}
	if top != -1 && top < low {
		ctx.AddError("Upper bound must not be less then lower one!")
		return NewEmpty(ctx)
	}

	if top == -1 {
		if low > ctx.Limits.MaxRepeatExpansion {
			ctx.AddError(fmt.Sprintf("repetition count %d exceeds maximum expansion limit (%d)", low, ctx.Limits.MaxRepeatExpansion))
			return NewEmpty(ctx)
		}
		if low == 0 {
			return NewClosure(ctx, child)
		}
		mandatory := exactCopies(ctx, child, low)
		return NewConcat(ctx, mandatory, NewClosure(ctx, Copy(ctx, child)))
	}

	total := 0
	for k := low; k <= top; k++ {
		total += k
	}
	if total > ctx.Limits.MaxRepeatExpansion {
		ctx.AddError(fmt.Sprintf("repetition {%d,%d} exceeds maximum expansion limit (%d)", low, top, ctx.Limits.MaxRepeatExpansion))
		return NewEmpty(ctx)
	}

	var result Node
	for k := low; k <= top; k++ {
		branch := exactCopies(ctx, child, k)
		if result == nil {
			result = branch
		} else {
			result = NewOr(ctx, result, branch)
		}
	}
	return result
}

// exactCopies builds a concatenation of k independent copies of child,
// each with freshly allocated position ids. k == 0 yields Empty.
func exactCopies(ctx *Context, child Node, k int) Node {
	if k == 0 {
		return NewEmpty(ctx)
	}
	node := Copy(ctx, child)
	for i := 1; i < k; i++ {
		node = NewConcat(ctx, node, Copy(ctx, child))
	}
	return node
}

// Copy deep-copies n, allocating a fresh position id for every Symbol leaf
// encountered. Named-group expansion and bounded-repetition desugaring both
// rely on this: reusing a subtree verbatim would let two unrelated places
// in the pattern share a followpos entry.
func Copy(ctx *Context, n Node) Node {
	switch v := n.(type) {
	case *Symbol:
		if v.Any {
			return NewAnySymbol(ctx)
		}
		return NewSymbol(ctx, v.Ch)
	case *Empty:
		return NewEmpty(ctx)
	case *Or:
		return NewOr(ctx, Copy(ctx, v.Left), Copy(ctx, v.Right))
	case *Concat:
		return NewConcat(ctx, Copy(ctx, v.Left), Copy(ctx, v.Right))
	case *Closure:
		return NewClosure(ctx, Copy(ctx, v.Child))
	case *NCG:
		return NewNCG(ctx, v.Name, Copy(ctx, v.Child))
	case *Root:
		return NewRoot(ctx, Copy(ctx, v.Child))
	default:
		panic(fmt.Sprintf("ast: Copy: unsupported node type %T", n))
	}
}
