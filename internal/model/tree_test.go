package model

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// lineAt builds a well-formed element line at the given depth.
func lineAt(depth int, typeName string, handle uint64, extras string) string {
	indent := strings.Repeat("  ", depth+1)
	line := fmt.Sprintf("%s%s 0x%x: {{0.0, 0.0}, {100.0, 100.0}}", indent, typeName, handle)
	if extras != "" {
		line += ", " + extras
	}
	return line
}

func TestBuildTree_SimpleNesting(t *testing.T) {
	lines := []string{
		lineAt(0, "Application", 0xa0, ""),
		lineAt(1, "Window", 0xa1, ""),
		lineAt(2, "Button", 0xa2, "label: 'OK'"),
	}

	root, err := BuildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Type != "Application" || root.Depth != 0 || root.Parent != nil {
		t.Fatalf("bad root: %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	win := root.Children[0]
	if win.Type != "Window" || win.Parent != root {
		t.Fatalf("bad window: %+v", win)
	}
	if len(win.Children) != 1 || win.Children[0].Type != "Button" {
		t.Fatalf("bad window children: %+v", win.Children)
	}
}

func TestBuildTree_DepthInvariant(t *testing.T) {
	lines := []string{
		lineAt(0, "Application", 0x10, ""),
		lineAt(1, "Window", 0x11, ""),
		lineAt(2, "Other", 0x12, ""),
		lineAt(3, "Button", 0x13, ""),
		lineAt(3, "Button", 0x14, ""),
		lineAt(2, "Toolbar", 0x15, ""),
		lineAt(1, "Window", 0x16, ""),
	}

	root, err := BuildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root.Walk(func(el *ElementNode) {
		if el.Parent == nil {
			if el.Depth != 0 {
				t.Errorf("root depth = %d, want 0", el.Depth)
			}
			return
		}
		if el.Depth != el.Parent.Depth+1 {
			t.Errorf("%s depth = %d, parent depth = %d", el.Type, el.Depth, el.Parent.Depth)
		}
	})
}

func TestBuildTree_Backtrack(t *testing.T) {
	// Depth sequence 0,1,2,1,2,3,1: the second depth-1 element must become a
	// sibling of the first under the root, not a child of the depth-2 element.
	lines := []string{
		lineAt(0, "Application", 0x1, ""),
		lineAt(1, "Window", 0x2, ""),
		lineAt(2, "Button", 0x3, ""),
		lineAt(1, "Window", 0x4, ""),
		lineAt(2, "Table", 0x5, ""),
		lineAt(3, "Cell", 0x6, ""),
		lineAt(1, "Window", 0x7, ""),
	}

	root, err := BuildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 3 {
		t.Fatalf("root children = %d, want 3", len(root.Children))
	}
	for i, wantHandle := range []uint64{0x2, 0x4, 0x7} {
		if root.Children[i].Handle != wantHandle {
			t.Errorf("root child %d handle = %#x, want %#x", i, root.Children[i].Handle, wantHandle)
		}
	}
	second := root.Children[1]
	if len(second.Children) != 1 || second.Children[0].Handle != 0x5 {
		t.Fatalf("second window children: %+v", second.Children)
	}
	table := second.Children[0]
	if len(table.Children) != 1 || table.Children[0].Handle != 0x6 {
		t.Fatalf("table children: %+v", table.Children)
	}
}

func TestBuildTree_MultiLevelBacktrack(t *testing.T) {
	// Depth drops from 4 straight back to 1.
	lines := []string{
		lineAt(0, "Application", 0x1, ""),
		lineAt(1, "Window", 0x2, ""),
		lineAt(2, "ScrollView", 0x3, ""),
		lineAt(3, "Table", 0x4, ""),
		lineAt(4, "Cell", 0x5, ""),
		lineAt(1, "Window", 0x6, ""),
	}

	root, err := BuildTree(lines)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}
	if root.Children[1].Handle != 0x6 {
		t.Errorf("second root child handle = %#x, want 0x6", root.Children[1].Handle)
	}
}

func TestBuildTree_DepthJumpFails(t *testing.T) {
	// A depth that skips a level fits nowhere: structurally invalid dump.
	lines := []string{
		lineAt(0, "Application", 0x1, ""),
		lineAt(1, "Window", 0x2, ""),
		lineAt(3, "Button", 0x3, ""),
	}

	_, err := BuildTree(lines)
	var serr *StructureError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
	if serr.Node.Handle != 0x3 {
		t.Errorf("offending node handle = %#x, want 0x3", serr.Node.Handle)
	}
}

func TestBuildTree_NonZeroRootFails(t *testing.T) {
	_, err := BuildTree([]string{lineAt(1, "Application", 0x1, "")})
	var serr *StructureError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StructureError, got %v", err)
	}
}

func TestBuildTree_MalformedLine(t *testing.T) {
	lines := []string{
		lineAt(0, "Application", 0x1, ""),
		"this is not an element",
		lineAt(1, "Window", 0x2, ""),
	}

	_, err := BuildTree(lines)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if perr.Num != 2 {
		t.Errorf("offending line number = %d, want 2", perr.Num)
	}
	if perr.Line != "this is not an element" {
		t.Errorf("offending line = %q", perr.Line)
	}
}

const sampleDescription = `Attributes: Application, pid: 501

Element subtree:
  Application 0x7fb30d41b9d0: {{0.0, 0.0}, {375.0, 667.0}}, label: 'Test App'
    Window 0x7fb30d51bc40: Main Window, {{0.0, 0.0}, {375.0, 667.0}}
      Button 0x7fb30d6652d0: traits: 8589934593, {{129.0, 288.0}, {117.0, 52.0}}, identifier: 'OK'

Path to element:
  Application, pid: 501
`

func TestParseDescription(t *testing.T) {
	root, err := ParseDescription(sampleDescription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Type != "Application" || root.Label != "Test App" {
		t.Fatalf("bad root: %+v", root)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	win := root.Children[0]
	if !win.MainWindow {
		t.Error("window should be flagged as main window")
	}
	if len(win.Children) != 1 || win.Children[0].Identifier != "OK" {
		t.Fatalf("window children: %+v", win.Children)
	}
}

func TestParseDescription_NoSection(t *testing.T) {
	if _, err := ParseDescription("some unrelated text"); err == nil {
		t.Fatal("expected error for text with no subtree section")
	}
	if root := BuildTreeFromDescription(""); root != nil {
		t.Fatal("expected nil tree for empty text")
	}
}

func TestBuildTreeFromDescription_MalformedLineMidDump(t *testing.T) {
	// Line 2 of 3 is malformed: the whole parse must fail, never a
	// partial 2-node tree.
	text := "Element subtree:\n" +
		lineAt(0, "Application", 0x1, "") + "\n" +
		"  Window garbage\n" +
		lineAt(1, "Window", 0x2, "") + "\n"

	if root := BuildTreeFromDescription(text); root != nil {
		t.Fatalf("expected nil tree, got %+v", root)
	}
}
