package secrets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	if err := os.WriteFile(path, []byte("  s3cret \n"), 0o600); err != nil {
		t.Fatalf("writing secret file: %v", err)
	}

	got, err := Load(Source{Name: "api key", File: path, Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Fatalf("expected trimmed file secret, got %q", got)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TEST_API_KEY", " from-env ")

	got, err := Load(Source{Name: "api key", Env: "TEST_API_KEY", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "from-env" {
		t.Fatalf("expected env secret to win over inline value, got %q", got)
	}
}

func TestLoadFallsBackToValue(t *testing.T) {
	got, err := Load(Source{Name: "api key", Env: "TEST_API_KEY_UNSET", Value: "inline"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "inline" {
		t.Fatalf("expected inline value, got %q", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(Source{Name: "api key"}); err == nil {
		t.Fatalf("expected error when nothing is configured")
	}

	empty := filepath.Join(t.TempDir(), "empty")
	if err := os.WriteFile(empty, nil, 0o600); err != nil {
		t.Fatalf("writing empty file: %v", err)
	}
	if _, err := Load(Source{Name: "api key", File: empty}); err == nil {
		t.Fatalf("expected error for empty secret file")
	}

	if _, err := Load(Source{File: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected error for missing secret file")
	}
}
