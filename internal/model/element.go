package model

// Geometry is an element's frame in screen points.
type Geometry struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"w" json:"w"`
	Height float64 `yaml:"h" json:"h"`
}

// ElementNode is one node in a reconstructed accessibility hierarchy.
// Nodes are created by parsing one line of a debug description; parent and
// children links are set during tree assembly and never mutated afterward.
type ElementNode struct {
	Raw              string   `yaml:"-"              json:"-"`
	Depth            int      `yaml:"d"              json:"d"`
	Type             string   `yaml:"t"              json:"t"`
	Handle           uint64   `yaml:"h"              json:"h"`
	Traits           uint64   `yaml:"tr,omitempty"   json:"tr,omitempty"`
	Geometry         Geometry `yaml:"g"              json:"g"`
	MainWindow       bool     `yaml:"main,omitempty" json:"main,omitempty"`
	Label            string   `yaml:"l,omitempty"    json:"l,omitempty"`
	Identifier       string   `yaml:"id,omitempty"   json:"id,omitempty"`
	Value            string   `yaml:"v,omitempty"    json:"v,omitempty"`
	PlaceholderValue string   `yaml:"pv,omitempty"   json:"pv,omitempty"`

	Children []*ElementNode `yaml:"c,omitempty" json:"c,omitempty"`
	// Parent is a traversal back-reference only; nil for the root.
	Parent *ElementNode `yaml:"-" json:"-"`
}

// Index returns the stable lookup key for the element: identifier if present,
// else label. Empty when the element has neither.
func (e *ElementNode) Index() string {
	if e.Identifier != "" {
		return e.Identifier
	}
	return e.Label
}

// NumericIndex returns the element's 0-based position among same-type
// siblings under its parent. ok is false for unattached elements (the root)
// or when the element cannot be located among its parent's children.
func (e *ElementNode) NumericIndex() (int, bool) {
	if e.Parent == nil {
		return 0, false
	}
	n := 0
	for _, sib := range e.Parent.Children {
		if sib.Type != e.Type {
			continue
		}
		if sib.Same(e) {
			return n, true
		}
		n++
	}
	return 0, false
}

// Same reports whether two elements refer to the same node, compared by
// debug handle. Handles are memory addresses from the source dump and are
// only meaningful within one parsed tree.
func (e *ElementNode) Same(other *ElementNode) bool {
	if other == nil {
		return false
	}
	return e.Handle == other.Handle
}

// Walk visits the element and all descendants in pre-order.
func (e *ElementNode) Walk(fn func(*ElementNode)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}
