package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileSourceSelection(t *testing.T) {
	path := writeFile(t, "main.go", "line0\nline1\nline2\nline3\nline4\n")

	src, err := NewFileSource(path, 1, 3)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}

	sel, err := src.Selection()
	if err != nil {
		t.Fatalf("Selection failed: %v", err)
	}
	if sel.Text != "line1\nline2\nline3" {
		t.Errorf("Text = %q", sel.Text)
	}
	if sel.Language != "go" {
		t.Errorf("Language = %q, want go", sel.Language)
	}
	if sel.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", sel.LineCount())
	}
	if src.LineCount() != 5 {
		t.Errorf("document LineCount = %d, want 5", src.LineCount())
	}
}

func TestFileSourceWholeFileByDefault(t *testing.T) {
	path := writeFile(t, "script.py", "a\nb\nc\n")

	src, err := NewFileSource(path, 0, -1)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}
	sel, _ := src.Selection()
	if sel.Text != "a\nb\nc" {
		t.Errorf("Text = %q", sel.Text)
	}
	if sel.Language != "python" {
		t.Errorf("Language = %q", sel.Language)
	}
}

func TestFileSourceClampsRange(t *testing.T) {
	path := writeFile(t, "x.ts", "only\n")

	src, err := NewFileSource(path, 5, 90)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}
	sel, _ := src.Selection()
	if sel.Text != "only" {
		t.Errorf("Text = %q, want clamped to last line", sel.Text)
	}
}

func TestLineRange(t *testing.T) {
	path := writeFile(t, "f.go", "0\n1\n2\n3\n4\n5\n")
	src, err := NewFileSource(path, 2, 3)
	if err != nil {
		t.Fatalf("NewFileSource failed: %v", err)
	}

	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"inner range", 1, 3, "1\n2\n3"},
		{"clamped low", -4, 1, "0\n1"},
		{"clamped high", 4, 99, "4\n5"},
		{"inverted", 5, 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := src.LineRange(tt.start, tt.end)
			if err != nil {
				t.Fatalf("LineRange failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("LineRange(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestNewFileSourceMissingFile(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "nope.go"), 0, -1)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestStdinSource(t *testing.T) {
	src := NewStdinSource("x := 1\ny := 2", "go")
	sel, _ := src.Selection()
	if sel.Text != "x := 1\ny := 2" {
		t.Errorf("Text = %q", sel.Text)
	}
	if sel.StartLine != 0 || sel.EndLine != 1 {
		t.Errorf("range = %d..%d, want 0..1", sel.StartLine, sel.EndLine)
	}
}

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a/b/main.go", "go"},
		{"app.TSX", "typescriptreact"},
		{"query.sql", "sql"},
		{"Makefile", "plaintext"},
	}
	for _, tt := range tests {
		if got := LanguageForPath(tt.path); got != tt.want {
			t.Errorf("LanguageForPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
