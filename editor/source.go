// Package editor supplies the code selection the panel explains.
//
// The session orchestrator consumes the Source interface and never touches
// files itself; FileSource implements it over a file plus an optional line
// range, and stdin input is handled by materializing it into the same shape.
package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Selection is the text the user asked about, with the line positions
// needed for context expansion.
type Selection struct {
	Text      string
	Language  string
	StartLine int // zero-based, inclusive
	EndLine   int // zero-based, inclusive
}

// LineCount returns the number of lines in the selection.
func (s Selection) LineCount() int {
	return strings.Count(s.Text, "\n") + 1
}

// Source exposes the current selection and wider line-range reads around it.
type Source interface {
	// Selection returns the current selection.
	Selection() (Selection, error)

	// LineRange returns the document text from start through end
	// (zero-based, inclusive), clamped to the document bounds.
	LineRange(start, end int) (string, error)

	// LineCount returns the number of lines in the document.
	LineCount() int
}

// FileSource is a Source over an in-memory copy of one document.
type FileSource struct {
	lines     []string
	language  string
	startLine int
	endLine   int
}

// NewFileSource reads path and selects lines start through end (zero-based,
// inclusive). A negative end selects through the last line.
func NewFileSource(path string, start, end int) (*FileSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return newSource(string(data), LanguageForPath(path), start, end), nil
}

// NewStdinSource wraps already-read stdin content; the whole input is the
// selection.
func NewStdinSource(content, language string) *FileSource {
	return newSource(content, language, 0, -1)
}

func newSource(content, language string, start, end int) *FileSource {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	if start < 0 {
		start = 0
	}
	if start > len(lines)-1 {
		start = len(lines) - 1
	}
	if end < 0 || end > len(lines)-1 {
		end = len(lines) - 1
	}
	if end < start {
		end = start
	}

	return &FileSource{
		lines:     lines,
		language:  language,
		startLine: start,
		endLine:   end,
	}
}

// SetLanguage overrides the detected language.
func (f *FileSource) SetLanguage(language string) {
	f.language = language
}

// Selection implements Source.
func (f *FileSource) Selection() (Selection, error) {
	text := strings.Join(f.lines[f.startLine:f.endLine+1], "\n")
	return Selection{
		Text:      text,
		Language:  f.language,
		StartLine: f.startLine,
		EndLine:   f.endLine,
	}, nil
}

// LineRange implements Source.
func (f *FileSource) LineRange(start, end int) (string, error) {
	if start < 0 {
		start = 0
	}
	if end > len(f.lines)-1 {
		end = len(f.lines) - 1
	}
	if end < start {
		return "", nil
	}
	return strings.Join(f.lines[start:end+1], "\n"), nil
}

// LineCount implements Source.
func (f *FileSource) LineCount() int {
	return len(f.lines)
}

// extensionLanguages maps file extensions to editor language identifiers.
var extensionLanguages = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascriptreact",
	".ts":    "typescript",
	".tsx":   "typescriptreact",
	".java":  "java",
	".cs":    "csharp",
	".cpp":   "cpp",
	".cc":    "cpp",
	".c":     "c",
	".h":     "c",
	".rs":    "rust",
	".rb":    "ruby",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".html":  "html",
	".css":   "css",
	".scss":  "scss",
	".json":  "json",
	".yaml":  "yaml",
	".yml":   "yaml",
	".md":    "markdown",
	".sql":   "sql",
	".sh":    "shellscript",
	".bash":  "bash",
	".ps1":   "powershell",
}

// LanguageForPath derives the editor language identifier from a file path.
// Unknown extensions return "plaintext".
func LanguageForPath(path string) string {
	if lang, ok := extensionLanguages[strings.ToLower(filepath.Ext(path))]; ok {
		return lang
	}
	return "plaintext"
}
