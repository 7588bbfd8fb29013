package config

import "testing"

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.MinTermLength != 3 {
		t.Errorf("MinTermLength = %d, want 3", cfg.MinTermLength)
	}
	if cfg.TitleBoost != 3.0 {
		t.Errorf("TitleBoost = %v, want 3.0", cfg.TitleBoost)
	}
	if cfg.SnippetLength != 500 {
		t.Errorf("SnippetLength = %d, want 500", cfg.SnippetLength)
	}
	if cfg.MaxSuggestions != 5 {
		t.Errorf("MaxSuggestions = %d, want 5", cfg.MaxSuggestions)
	}
	if len(cfg.StopWords) == 0 {
		t.Error("expected default stop words to be applied")
	}
}

func TestApplyDefaultsKeepsOverrides(t *testing.T) {
	cfg := &Config{
		StopWords:     []string{"foo"},
		MinTermLength: 2,
		TitleBoost:    5.0,
	}
	cfg.ApplyDefaults()

	if cfg.MinTermLength != 2 {
		t.Errorf("MinTermLength = %d, want 2", cfg.MinTermLength)
	}
	if cfg.TitleBoost != 5.0 {
		t.Errorf("TitleBoost = %v, want 5.0", cfg.TitleBoost)
	}
	if len(cfg.StopWords) != 1 || cfg.StopWords[0] != "foo" {
		t.Errorf("StopWords = %v, want [foo]", cfg.StopWords)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		wantProblems int
	}{
		{"valid defaults", func() Config { c := Config{}; c.ApplyDefaults(); return c }(), 0},
		{"negative min term length", Config{MinTermLength: -1, TitleBoost: 3, MaxSuggestions: 5}, 1},
		{"boost below one", Config{MinTermLength: 2, TitleBoost: 0.5, MaxSuggestions: 5}, 1},
		{"duplicate stop word", Config{MinTermLength: 2, TitleBoost: 3, MaxSuggestions: 5, StopWords: []string{"the", "the"}}, 1},
		{"blank stop word", Config{MinTermLength: 2, TitleBoost: 3, MaxSuggestions: 5, StopWords: []string{"  "}}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cfg.Validate()
			if len(got) != tt.wantProblems {
				t.Errorf("Validate() returned %d problems (%v), want %d", len(got), got, tt.wantProblems)
			}
		})
	}
}
