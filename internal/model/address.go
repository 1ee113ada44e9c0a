package model

import "fmt"

// AccessorPath compiles the shortest accessor expression locating node,
// rooted at the query expression rootExpr (typically the application
// variable, e.g. "app"). Identifier/label-keyed lookup is preferred over
// positional indexing because it survives UI reflows.
//
// The main window never appears as a segment, and unclassified elements with
// no identifier or label are transparent. ok is false when the terminal node
// itself is unclassified and unindexed: such a path is unresolvable, not a
// best-effort guess. Geometry and traits never influence the result.
func AccessorPath(node *ElementNode, rootExpr string) (string, bool) {
	if node == nil {
		return "", false
	}

	// Ancestor chain in root-to-node order, excluding the application
	// element, which rootExpr already represents.
	var chain []*ElementNode
	for n := node; n != nil && n.Type != TypeApplication; n = n.Parent {
		chain = append([]*ElementNode{n}, chain...)
	}

	expr := rootExpr
	for i, el := range chain {
		terminal := i == len(chain)-1
		if el.MainWindow {
			continue
		}
		if el.Type == TypeOther && el.Index() == "" {
			if terminal {
				return "", false
			}
			continue
		}

		expr += "." + Accessor(el.Type)
		if idx := el.Index(); idx != "" {
			expr += fmt.Sprintf("[%q]", idx)
		} else if pos, ok := el.NumericIndex(); ok {
			expr += fmt.Sprintf(".elementAtIndex(%d)", pos)
		} else {
			// Sentinel the caller must treat as "manual review required".
			expr += ".elementAtIndex(-1)"
		}
	}
	return expr, true
}
