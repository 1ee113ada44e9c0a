package model

// AccessorDump parses a full debug description and returns one accessor
// statement per locatable element, in pre-order. Returns nil when the text
// does not yield a tree. Pure: no side effects beyond the returned list.
func AccessorDump(rootVar, text string) []string {
	root := BuildTreeFromDescription(text)
	if root == nil {
		return nil
	}
	return AccessorDumpTree(root, rootVar)
}

// AccessorDumpTree collects accessor statements for every element of an
// already-parsed tree. Unresolvable elements are dropped, as are elements
// that contribute no segment beyond the root expression (the application
// element itself and the main window).
func AccessorDumpTree(root *ElementNode, rootVar string) []string {
	var out []string
	root.Walk(func(el *ElementNode) {
		path, ok := AccessorPath(el, rootVar)
		if !ok || path == rootVar {
			return
		}
		out = append(out, path)
	})
	return out
}
