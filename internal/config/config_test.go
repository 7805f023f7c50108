package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	content := `input:
  path: notes.md
  html: false
output:
  path: notes.jira
trace:
  verbose: true
emoticons:
  extra:
    - "(heart)"
    - "(beer)"
code:
  normalizeLanguages: true
`
	cfg, err := Load(writeConfig(t, content))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.Input.Path != "notes.md" {
		t.Errorf("Input.Path = %q, want %q", cfg.Input.Path, "notes.md")
	}
	if cfg.Output.Path != "notes.jira" {
		t.Errorf("Output.Path = %q, want %q", cfg.Output.Path, "notes.jira")
	}
	if !cfg.Trace.Verbose {
		t.Error("Trace.Verbose = false, want true")
	}
	if len(cfg.Emoticons.Extra) != 2 || cfg.Emoticons.Extra[0] != "(heart)" {
		t.Errorf("Emoticons.Extra = %v", cfg.Emoticons.Extra)
	}
	if !cfg.Code.NormalizeLanguages {
		t.Error("Code.NormalizeLanguages = false, want true")
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigNotFound)
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "inptu:\n  path: typo.md\n"))
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigParse)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "input: [unclosed\n"))
	if !errors.Is(err, ErrConfigParse) {
		t.Errorf("Load() error = %v, want %v", err, ErrConfigParse)
	}
}

func TestValidateEmoticons(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid", token: "(heart)", wantErr: false},
		{name: "minimum length", token: "(a)", wantErr: false},
		{name: "too short", token: "()", wantErr: true},
		{name: "too long", token: "(waytoolonger)", wantErr: true},
		{name: "missing parens", token: "heart", wantErr: true},
		{name: "missing closing paren", token: "(heart", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			cfg.Emoticons.Extra = []string{tt.token}
			err := cfg.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidEmoticon) {
				t.Errorf("Validate() error = %v, want %v", err, ErrInvalidEmoticon)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Input.Path != "" || cfg.Output.Path != "" {
		t.Errorf("Default() = %+v, want zero paths", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}
