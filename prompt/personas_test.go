package prompt

import (
	"strings"
	"testing"
)

func TestSystemPromptPersonas(t *testing.T) {
	tests := []struct {
		name    string
		persona Persona
		marker  string
	}{
		{"strict", PersonaStrict, "strict but fair Senior Tech Lead"},
		{"balanced", PersonaBalanced, "helpful and experienced Senior Developer"},
		{"funny", PersonaFunny, "hilarious Tech Lead"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SystemPrompt(tt.persona)
			if !strings.Contains(got, tt.marker) {
				t.Errorf("SystemPrompt(%s) missing persona marker %q", tt.persona, tt.marker)
			}
			if !strings.Contains(got, "NEVER use Devanagari") {
				t.Errorf("SystemPrompt(%s) missing the script rule", tt.persona)
			}
			if !strings.Contains(got, "RESPONSE FORMAT:") {
				t.Errorf("SystemPrompt(%s) missing the format instruction", tt.persona)
			}
		})
	}
}

func TestSystemPromptUnknownFallsBack(t *testing.T) {
	if got := SystemPrompt(Persona("savage")); got != SystemPrompt(PersonaBalanced) {
		t.Error("unknown persona did not fall back to balanced")
	}
	if got := SystemPrompt(Persona("")); got != SystemPrompt(PersonaBalanced) {
		t.Error("empty persona did not fall back to balanced")
	}
}

func TestDisplayLanguage(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"javascript", "JavaScript"},
		{"cpp", "C++"},
		{"go", "Go"},
		{"kotlin", "Kotlin"},
		{"zig", "Zig"}, // not in the table, capitalized fallback
		{"", ""},
	}

	for _, tt := range tests {
		if got := DisplayLanguage(tt.id); got != tt.want {
			t.Errorf("DisplayLanguage(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}
