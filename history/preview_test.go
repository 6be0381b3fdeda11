package history

import (
	"strings"
	"testing"
)

func TestExtractCodeTitle(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"go function", "func handleRequest(w http.ResponseWriter) {}", "handleRequest"},
		{"go method", "func (s *Store) Add(item Item) error {", "Add"},
		{"python def", "def parse_config(path):\n    pass", "parse_config"},
		{"react component", "const UserCard = (props) => {}", "UserCard"},
		{"js function", "function fetchData() {}", "fetchData"},
		{"class", "class PaymentService {", "PaymentService"},
		{"hook", "useEffect(() => {}, [])", "useEffect"},
		{"fallback to first line", "x = y + z", "x = y + z"},
		{"fallback skips comments", "// setup\n/* more */\ntotal := a + b", "total := a + b"},
		{"fallback skips shell comments", "# setup\nexport PATH=$HOME/bin", "export PATH=$HOME/bin"},
		{"empty", "", "Code snippet"},
		{"only comments", "// nothing here", "Code snippet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCodeTitle(tt.code); got != tt.want {
				t.Errorf("ExtractCodeTitle(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestExtractCodeTitleTruncatesLongFallback(t *testing.T) {
	long := strings.Repeat("a", 40)
	got := ExtractCodeTitle(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("long fallback %q should be truncated with ellipsis", got)
	}
	if len([]rune(got)) != 28 {
		t.Errorf("truncated title length = %d runes, want 28", len([]rune(got)))
	}
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("## Ek Line Mein\n\nYeh **loop** hai.")
	if !strings.Contains(html, "<h2") {
		t.Errorf("expected heading in %q", html)
	}
	if !strings.Contains(html, "<strong>loop</strong>") {
		t.Errorf("expected bold term in %q", html)
	}
}

func TestRenderMarkdownSkipsRawHTML(t *testing.T) {
	html := RenderMarkdown(`hello <script>alert(1)</script>`)
	if strings.Contains(html, "<script>") {
		t.Errorf("raw HTML must not pass through: %q", html)
	}
}

func TestPreviewHTMLEscapes(t *testing.T) {
	s := NewStore(newFakeKV(), 5)
	if err := s.Add(Item{
		ID:   "id-1",
		Code: `<b>&"dangerous"</b>`,
	}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	out := s.PreviewHTML()
	if strings.Contains(out, "<b>") {
		t.Errorf("code must be escaped in preview: %q", out)
	}
	if !strings.Contains(out, `data-id="id-1"`) {
		t.Errorf("preview should carry the item id: %q", out)
	}
}

func TestPreviewHTMLEmptyStore(t *testing.T) {
	s := NewStore(newFakeKV(), 5)
	if got := s.PreviewHTML(); got != "" {
		t.Errorf("empty store preview = %q, want empty", got)
	}
}
