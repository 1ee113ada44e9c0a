package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadDumpInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	if err := os.WriteFile(path, []byte("Element subtree:\n"), 0644); err != nil {
		t.Fatal(err)
	}

	text, err := readDumpInput([]string{path})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Element subtree:\n" {
		t.Errorf("text = %q", text)
	}
}

func TestReadDumpInput_MissingFile(t *testing.T) {
	if _, err := readDumpInput([]string{"/nonexistent/dump.txt"}); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{
		"root": "app",
		"num":  42,
	}
	if got := stringParam(params, "root", "x"); got != "app" {
		t.Errorf("stringParam(root) = %q", got)
	}
	if got := stringParam(params, "missing", "fallback"); got != "fallback" {
		t.Errorf("stringParam(missing) = %q", got)
	}
	// Non-string values are formatted rather than dropped
	if got := stringParam(params, "num", ""); got != "42" {
		t.Errorf("stringParam(num) = %q", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{
		"flat":  true,
		"other": "yes",
	}
	if !boolParam(params, "flat", false) {
		t.Error("boolParam(flat) = false")
	}
	if boolParam(params, "missing", false) {
		t.Error("boolParam(missing) = true")
	}
	// Non-bool values fall back to the default
	if boolParam(params, "other", false) {
		t.Error("boolParam(other) = true")
	}
}
