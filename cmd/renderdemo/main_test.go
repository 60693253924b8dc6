package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteOutputsWritesPageAndStylesheet(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "site", "index.html")

	if err := writeOutputs(out, []byte("<!DOCTYPE html>")); err != nil {
		t.Fatalf("write outputs: %v", err)
	}
	page, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	if string(page) != "<!DOCTYPE html>" {
		t.Fatalf("unexpected page %q", page)
	}
	css, err := os.ReadFile(filepath.Join(dir, "site", "portfolio.css"))
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if !strings.Contains(string(css), ".hero") {
		t.Fatalf("unexpected stylesheet contents")
	}
}
