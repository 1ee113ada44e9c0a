package model

// FlatNode is an element with a breadcrumb path and compiled accessor
// instead of children.
type FlatNode struct {
	Type             string   `yaml:"t"               json:"t"`
	Handle           uint64   `yaml:"h"               json:"h"`
	Depth            int      `yaml:"d"               json:"d"`
	Traits           uint64   `yaml:"tr,omitempty"    json:"tr,omitempty"`
	Geometry         Geometry `yaml:"g"               json:"g"`
	MainWindow       bool     `yaml:"main,omitempty"  json:"main,omitempty"`
	Label            string   `yaml:"l,omitempty"     json:"l,omitempty"`
	Identifier       string   `yaml:"id,omitempty"    json:"id,omitempty"`
	Value            string   `yaml:"v,omitempty"     json:"v,omitempty"`
	PlaceholderValue string   `yaml:"pv,omitempty"    json:"pv,omitempty"`
	Accessor         string   `yaml:"a,omitempty"     json:"a,omitempty"`
	Path             string   `yaml:"p,omitempty"     json:"p,omitempty"`
}

// FlattenTree converts an element tree into a flat pre-order list. Each entry
// gets a path string showing its location in the tree using type names joined
// with " > ", plus its compiled accessor expression (empty when unresolvable).
func FlattenTree(root *ElementNode, rootExpr string) []FlatNode {
	var result []FlatNode
	flattenRecursive(root, "", rootExpr, &result)
	return result
}

func flattenRecursive(el *ElementNode, parentPath, rootExpr string, result *[]FlatNode) {
	currentPath := el.Type
	if parentPath != "" {
		currentPath = parentPath + " > " + el.Type
	}

	accessor, ok := AccessorPath(el, rootExpr)
	if !ok {
		accessor = ""
	}

	*result = append(*result, FlatNode{
		Type:             el.Type,
		Handle:           el.Handle,
		Depth:            el.Depth,
		Traits:           el.Traits,
		Geometry:         el.Geometry,
		MainWindow:       el.MainWindow,
		Label:            el.Label,
		Identifier:       el.Identifier,
		Value:            el.Value,
		PlaceholderValue: el.PlaceholderValue,
		Accessor:         accessor,
		Path:             currentPath,
	})

	for _, child := range el.Children {
		flattenRecursive(child, currentPath, rootExpr, result)
	}
}

// FilterFlat returns the entries whose type is in the given set.
// An empty set keeps everything.
func FilterFlat(nodes []FlatNode, types []string) []FlatNode {
	if len(types) == 0 {
		return nodes
	}
	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[t] = true
	}
	var result []FlatNode
	for _, n := range nodes {
		if typeSet[n.Type] {
			result = append(result, n)
		}
	}
	return result
}
