package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvMissingFiles(t *testing.T) {
	tmp := t.TempDir()
	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 env files loaded, got %d", n)
	}
}

func TestLoadEnvLoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ".env.local")
	if err := os.WriteFile(path, []byte("ACCESSDESK_TEST_ENV_LOAD=ok\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	_ = os.Unsetenv("ACCESSDESK_TEST_ENV_LOAD")
	t.Cleanup(func() { _ = os.Unsetenv("ACCESSDESK_TEST_ENV_LOAD") })

	n, err := LoadEnv([]string{filepath.Join(tmp, ".env"), path})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("ACCESSDESK_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded, got %q", got)
	}
}

func TestTemplatePaths(t *testing.T) {
	opts := TemplateOptions{
		Dir:       "templates",
		Request:   "solicitud_template.html",
		Checklist: "checklist_template.html",
		Departure: "departure_template.html",
	}
	if got := opts.RequestPath(); got != filepath.Join("templates", "solicitud_template.html") {
		t.Fatalf("unexpected request path %q", got)
	}
	if got := opts.ChecklistPath(); got != filepath.Join("templates", "checklist_template.html") {
		t.Fatalf("unexpected checklist path %q", got)
	}
	if got := opts.DeparturePath(); got != filepath.Join("templates", "departure_template.html") {
		t.Fatalf("unexpected departure path %q", got)
	}
}
