package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultUserConfig(t *testing.T) {
	def := DefaultUserConfig()
	if def.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", def.Provider)
	}
	if def.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("default openai model = %q", def.OpenAIModel)
	}
	if def.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("default gemini model = %q", def.GeminiModel)
	}
	if def.PersonaIntensity != "balanced" {
		t.Errorf("default persona = %q", def.PersonaIntensity)
	}
	if def.MaxHistoryItems != 10 {
		t.Errorf("default max history = %d", def.MaxHistoryItems)
	}
}

func TestFillDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "empty config gets all defaults",
			in:   Config{},
			want: Config{
				Provider:         "gemini",
				OpenAIModel:      "gpt-4o-mini",
				GeminiModel:      "gemini-2.5-flash",
				PersonaIntensity: "balanced",
				MaxHistoryItems:  10,
			},
		},
		{
			name: "unknown provider falls back",
			in:   Config{Provider: "anthropic"},
			want: Config{
				Provider:         "gemini",
				OpenAIModel:      "gpt-4o-mini",
				GeminiModel:      "gemini-2.5-flash",
				PersonaIntensity: "balanced",
				MaxHistoryItems:  10,
			},
		},
		{
			name: "explicit values survive",
			in: Config{
				Provider:         "openai",
				OpenAIModel:      "gpt-4.1",
				PersonaIntensity: "funny",
				MaxHistoryItems:  25,
			},
			want: Config{
				Provider:         "openai",
				OpenAIModel:      "gpt-4.1",
				GeminiModel:      "gemini-2.5-flash",
				PersonaIntensity: "funny",
				MaxHistoryItems:  25,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.fillDefaults()
			if got.Provider != tt.want.Provider ||
				got.OpenAIModel != tt.want.OpenAIModel ||
				got.GeminiModel != tt.want.GeminiModel ||
				got.PersonaIntensity != tt.want.PersonaIntensity ||
				got.MaxHistoryItems != tt.want.MaxHistoryItems {
				t.Errorf("fillDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestModelFor(t *testing.T) {
	cfg := Config{OpenAIModel: "gpt-4o-mini", GeminiModel: "gemini-2.5-flash"}
	if got := cfg.ModelFor("openai"); got != "gpt-4o-mini" {
		t.Errorf("ModelFor(openai) = %q", got)
	}
	if got := cfg.ModelFor("gemini"); got != "gemini-2.5-flash" {
		t.Errorf("ModelFor(gemini) = %q", got)
	}
}

func TestCredentialStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := NewCredentialStore()
	store.Set("openai", "sk-test-123")
	store.Set("gemini", "AIza-test")
	if err := store.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Credentials files hold secrets; permissions must be user-only.
	info, err := os.Stat(filepath.Join(dir, "credentials.toml"))
	if err != nil {
		t.Fatalf("stat credentials: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("credentials perm = %o, want 0600", perm)
	}

	reloaded := NewCredentialStore()
	if err := reloaded.Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := reloaded.Get("openai"); got != "sk-test-123" {
		t.Errorf("Get(openai) = %q", got)
	}
	if got := reloaded.Get("gemini"); got != "AIza-test" {
		t.Errorf("Get(gemini) = %q", got)
	}
	if got := reloaded.Get("unknown"); got != "" {
		t.Errorf("Get(unknown) = %q, want empty", got)
	}
}

func TestCredentialStoreDelete(t *testing.T) {
	dir := t.TempDir()

	store := NewCredentialStore()
	store.Set("openai", "sk-test")
	store.Delete("openai")
	if err := store.Save(dir); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewCredentialStore()
	if err := reloaded.Load(dir); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := reloaded.Get("openai"); got != "" {
		t.Errorf("deleted key survived: %q", got)
	}
}

func TestCredentialStoreLoadMissingFile(t *testing.T) {
	store := NewCredentialStore()
	if err := store.Load(t.TempDir()); err != nil {
		t.Errorf("missing credentials file should not error: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := GetHomeDir()
	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(empty) = %q", got)
	}
}
