package priorityadapter

import (
	"context"
	"errors"
	"testing"
)

// TestParseConfigYAML decodes a writer block and builds a translator from it.
func TestParseConfigYAML(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
translations:
  7: emergency
  8: alert
includeEventAsContext: true
fallbackLevel: notice
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.TranslationOverrides[PriorityDebug] != LevelEmergency || cfg.TranslationOverrides[8] != LevelAlert {
		t.Fatalf("unexpected translations: %v", cfg.TranslationOverrides)
	}
	if !cfg.IncludeEventAsContext {
		t.Fatalf("expected includeEventAsContext to be true")
	}
	if cfg.FallbackLevel != LevelNotice {
		t.Fatalf("expected fallback notice, got %q", cfg.FallbackLevel)
	}

	rec := &recordingSink{}
	cfg.Sink = rec
	tr, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if tr.Level(PriorityDebug) != LevelEmergency || tr.Level(PriorityInfo) != LevelInfo {
		t.Fatalf("unexpected merged table: %v", tr.Translations())
	}
	if tr.Level(99) != LevelNotice {
		t.Fatalf("expected configured fallback, got %s", tr.Level(99))
	}
	if !tr.EventContext() {
		t.Fatalf("expected event context to be enabled")
	}
}

// TestParseConfigRejectsMalformedYAML ensures decoding errors are reported.
func TestParseConfigRejectsMalformedYAML(t *testing.T) {
	if _, err := ParseConfig([]byte("translations: [")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
	if _, err := ParseConfig([]byte("translations:\n  debug: info\n")); err == nil {
		t.Fatalf("expected error for non-numeric priority")
	}
}

// TestConfigFromEnv reads the same options from the environment.
func TestConfigFromEnv(t *testing.T) {
	t.Setenv("PRIORITY_TRANSLATIONS", "7:emergency,8:alert")
	t.Setenv("PRIORITY_INCLUDE_EVENT_AS_CONTEXT", "true")
	t.Setenv("PRIORITY_FALLBACK_LEVEL", "alert")

	cfg, err := ConfigFromEnv("priority")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TranslationOverrides[PriorityDebug] != LevelEmergency || cfg.TranslationOverrides[8] != LevelAlert {
		t.Fatalf("unexpected translations: %v", cfg.TranslationOverrides)
	}
	if !cfg.IncludeEventAsContext || cfg.FallbackLevel != LevelAlert {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	rec := &recordingSink{}
	cfg.Sink = rec
	tr, err := NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig returned error: %v", err)
	}
	if err := tr.Handle(context.Background(), Event{Priority: 9, Message: "test"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.calls[0].level != LevelAlert || rec.calls[0].fields[FieldPriority] != Priority(9) {
		t.Fatalf("unexpected call: %+v", rec.calls[0])
	}
}

// TestConfigFromEnvRejectsBadValues surfaces envconfig parse errors.
func TestConfigFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv("PRIORITY_INCLUDE_EVENT_AS_CONTEXT", "maybe")
	if _, err := ConfigFromEnv("priority"); err == nil {
		t.Fatalf("expected error for invalid boolean")
	}
}

// TestNewFromConfigRequiresSink covers a configuration block without a sink.
func TestNewFromConfigRequiresSink(t *testing.T) {
	_, err := NewFromConfig(Config{FallbackLevel: LevelAlert})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}
