package literal

import "github.com/coregx/dfarx/ast"

// ExtractAlternation reports the literal strings that make up root's
// pattern when root is nothing but a "|"-separated set of fixed non-empty
// strings — no ".", no "+" or unbounded repetition, no branch that matches
// the empty string (so no optional branches). Bounded repetition with a
// lower bound of at least 1 desugars to fixed alternatives and is accepted.
// ok is false for any other
// shape, in which case no prefilter can be built for this pattern at all.
func ExtractAlternation(root ast.Node) (lits []string, ok bool) {
	body := root
	if r, isRoot := root.(*ast.Root); isRoot {
		body = r.Child
	}
	var out []string
	if !collectBranches(body, &out) {
		return nil, false
	}
	return out, true
}

// collectBranches flattens an Or-chain into literal strings, appending to
// out. It returns false the moment any branch isn't a pure, non-empty
// literal.
func collectBranches(n ast.Node, out *[]string) bool {
	if or, isOr := n.(*ast.Or); isOr {
		return collectBranches(or.Left, out) && collectBranches(or.Right, out)
	}
	s, ok := literalString(n)
	if !ok || s == "" {
		return false
	}
	*out = append(*out, s)
	return true
}

// literalString returns the fixed string n matches, if n is built purely
// from Symbol, Concat, Empty, and NCG nodes with no wildcard, closure, or
// nested alternation.
func literalString(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.Empty:
		return "", true
	case *ast.Symbol:
		if v.Any {
			return "", false
		}
		return string(v.Ch), true
	case *ast.Concat:
		left, ok := literalString(v.Left)
		if !ok {
			return "", false
		}
		right, ok := literalString(v.Right)
		if !ok {
			return "", false
		}
		return left + right, true
	case *ast.NCG:
		return literalString(v.Child)
	default:
		return "", false
	}
}
