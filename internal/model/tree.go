package model

import (
	"fmt"
	"regexp"
	"strings"
)

// ParseError reports a line that does not match the element shape.
type ParseError struct {
	Line string
	Num  int // 1-based position within the subtree section
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d does not parse as an element: %q", e.Num, e.Line)
}

// StructureError reports a node whose depth cannot be attached anywhere in
// the tree: the backtrack propagated past the root.
type StructureError struct {
	Node *ElementNode
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("no parent at depth %d for element: %q", e.Node.Depth-1, e.Node.Raw)
}

// subtreeRe isolates the element-subtree section of a full debug description.
// The section runs from its header to the first blank line or end of text.
var subtreeRe = regexp.MustCompile(`(?s)Element subtree:\n(.*?)(?:\n\s*\n|$)`)

// BuildTree parses an ordered sequence of element lines and assembles them
// into a tree. Any line that fails to parse aborts the whole build with a
// ParseError; a line whose depth fits nowhere aborts with a StructureError.
func BuildTree(lines []string) (*ElementNode, error) {
	nodes, err := parseLines(lines)
	if err != nil {
		return nil, err
	}
	return assemble(nodes)
}

// ParseDescription extracts the element subtree section from a full debug
// description and builds the element tree. Every line is verified to parse
// before structural assembly begins, so depth recovery never has to deal
// with malformed lines.
func ParseDescription(text string) (*ElementNode, error) {
	m := subtreeRe.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("no element subtree section found")
	}

	var lines []string
	for _, ln := range strings.Split(m[1], "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, strings.TrimRight(ln, "\r"))
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("element subtree section is empty")
	}

	nodes, err := parseLines(lines)
	if err != nil {
		return nil, err
	}
	return assemble(nodes)
}

// BuildTreeFromDescription is the best-effort variant of ParseDescription:
// it returns nil on any parse or structural failure instead of an error.
func BuildTreeFromDescription(text string) *ElementNode {
	root, err := ParseDescription(text)
	if err != nil {
		return nil
	}
	return root
}

func parseLines(lines []string) ([]*ElementNode, error) {
	nodes := make([]*ElementNode, 0, len(lines))
	for i, ln := range lines {
		el := ParseLine(ln)
		if el == nil {
			return nil, &ParseError{Line: ln, Num: i + 1}
		}
		nodes = append(nodes, el)
	}
	return nodes, nil
}

// assemble links a flat node list into a tree using depth bookkeeping.
func assemble(nodes []*ElementNode) (*ElementNode, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no elements to assemble")
	}
	root := nodes[0]
	if root.Depth != 0 {
		return nil, &StructureError{Node: root}
	}

	out := attachChildren(root, nodes, 1)
	if out.pending != nil {
		// The backtrack climbed past the root without finding a level
		// whose depth fits the pending node.
		return nil, &StructureError{Node: out.pending}
	}
	return root, nil
}

// attachOutcome is the result of building one subtree level: how far into the
// node list construction advanced, and the node (if any) whose depth did not
// fit this level and is waiting for a shallower ancestor to claim it.
type attachOutcome struct {
	next    int
	pending *ElementNode
}

// attachChildren attaches nodes[i:] under parent. A node is a direct child
// only when its depth is exactly parent depth + 1; anything else is a
// backtrack signal carried up through the outcome. When a deeper level hands
// back a pending node that fits here, the loop resumes at that node's
// position in the sequence (fast-forward). Running out of input is normal
// termination.
func attachChildren(parent *ElementNode, nodes []*ElementNode, i int) attachOutcome {
	for i < len(nodes) {
		n := nodes[i]
		if n.Depth != parent.Depth+1 {
			return attachOutcome{next: i, pending: n}
		}
		n.Parent = parent
		parent.Children = append(parent.Children, n)

		sub := attachChildren(n, nodes, i+1)
		i = sub.next
		if sub.pending == nil {
			return attachOutcome{next: i}
		}
		// sub.pending == nodes[i]: retry it at this level, or propagate
		// further up if the depth still does not fit.
	}
	return attachOutcome{next: i}
}
