package model

import (
	"crypto/sha256"
	"fmt"
)

// NodeChange represents a changed element detected by hash-based diffing.
type NodeChange struct {
	Type    string               `yaml:"t"               json:"t"`
	Label   string               `yaml:"l,omitempty"     json:"l,omitempty"`
	Path    string               `yaml:"p,omitempty"     json:"p,omitempty"`
	Changes map[string][2]string `yaml:"changes"         json:"changes"`
}

// TreeDiff is the result of comparing two dump snapshots by content hash.
type TreeDiff struct {
	Added          []FlatNode   `yaml:"added,omitempty"   json:"added,omitempty"`
	Removed        []FlatNode   `yaml:"removed,omitempty" json:"removed,omitempty"`
	Changed        []NodeChange `yaml:"changed,omitempty" json:"changed,omitempty"`
	UnchangedCount int          `yaml:"unchanged_count"   json:"unchanged_count"`
}

// NodeHash computes a stable identity hash for an element based on its
// semantic content and position in the tree. Debug handles shift between
// dumps, so identity across two dumps of the same screen has to come from
// type, identifier, label, and breadcrumb path.
func NodeHash(n FlatNode) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", n.Type, n.Identifier, n.Label, n.Path)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}

// diffKeys assigns each node its content hash extended with an occurrence
// ordinal. Unlabeled same-type siblings at the same breadcrumb path share a
// hash, so without the ordinal a repeated cell row would collapse into one
// map entry and count changes between dumps would go unreported.
func diffKeys(nodes []FlatNode) ([]string, map[string]FlatNode) {
	seen := make(map[string]int, len(nodes))
	keys := make([]string, len(nodes))
	byKey := make(map[string]FlatNode, len(nodes))
	for i, n := range nodes {
		h := NodeHash(n)
		keys[i] = fmt.Sprintf("%s#%d", h, seen[h])
		seen[h]++
		byKey[keys[i]] = n
	}
	return keys, byKey
}

// DiffDumps compares two flattened dumps using content hashing for stable
// identity, reporting elements added, removed, and changed in place. Nodes
// with identical content match up by dump order.
func DiffDumps(prev, curr []FlatNode) TreeDiff {
	prevKeys, prevByKey := diffKeys(prev)
	currKeys, currByKey := diffKeys(curr)

	var diff TreeDiff

	for i, n := range curr {
		prevNode, existed := prevByKey[currKeys[i]]
		if !existed {
			diff.Added = append(diff.Added, n)
			continue
		}
		changes := diffNodeProperties(prevNode, n)
		if len(changes) > 0 {
			diff.Changed = append(diff.Changed, NodeChange{
				Type:    n.Type,
				Label:   n.Label,
				Path:    n.Path,
				Changes: changes,
			})
		} else {
			diff.UnchangedCount++
		}
	}

	for i, n := range prev {
		if _, exists := currByKey[prevKeys[i]]; !exists {
			diff.Removed = append(diff.Removed, n)
		}
	}

	return diff
}

// diffNodeProperties compares mutable properties between two elements matched
// by content hash. Type, identifier, label, and path are part of the hash so
// they cannot differ; value, placeholder, geometry, and traits can.
func diffNodeProperties(prev, curr FlatNode) map[string][2]string {
	diffs := make(map[string][2]string)

	if prev.Value != curr.Value {
		diffs["v"] = [2]string{prev.Value, curr.Value}
	}
	if prev.PlaceholderValue != curr.PlaceholderValue {
		diffs["pv"] = [2]string{prev.PlaceholderValue, curr.PlaceholderValue}
	}
	if prev.Geometry != curr.Geometry {
		diffs["g"] = [2]string{
			fmt.Sprintf("%v", prev.Geometry),
			fmt.Sprintf("%v", curr.Geometry),
		}
	}
	if prev.Traits != curr.Traits {
		diffs["tr"] = [2]string{
			fmt.Sprintf("%d", prev.Traits),
			fmt.Sprintf("%d", curr.Traits),
		}
	}

	if len(diffs) == 0 {
		return nil
	}
	return diffs
}
