package prompt

import "strings"

// languageDisplayNames maps editor language identifiers to human-readable
// names for the panel header.
var languageDisplayNames = map[string]string{
	"typescriptreact": "TypeScript React",
	"javascriptreact": "JavaScript React",
	"typescript":      "TypeScript",
	"javascript":      "JavaScript",
	"python":          "Python",
	"java":            "Java",
	"csharp":          "C#",
	"cpp":             "C++",
	"c":               "C",
	"go":              "Go",
	"rust":            "Rust",
	"ruby":            "Ruby",
	"php":             "PHP",
	"swift":           "Swift",
	"kotlin":          "Kotlin",
	"html":            "HTML",
	"css":             "CSS",
	"scss":            "SCSS",
	"json":            "JSON",
	"yaml":            "YAML",
	"markdown":        "Markdown",
	"sql":             "SQL",
	"shellscript":     "Shell",
	"bash":            "Bash",
	"powershell":      "PowerShell",
}

// DisplayLanguage returns the human-readable name for a language identifier,
// falling back to the identifier with its first letter capitalized.
func DisplayLanguage(languageID string) string {
	if name, ok := languageDisplayNames[languageID]; ok {
		return name
	}
	if languageID == "" {
		return ""
	}
	return strings.ToUpper(languageID[:1]) + languageID[1:]
}
