package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadFromViperDefaults(t *testing.T) {
	cfg, err := LoadFromViper(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Export.SampleLimit != 5 {
		t.Errorf("expected default sample_limit 5, got %d", cfg.Export.SampleLimit)
	}
	if cfg.Import.ImportDir != "firestore_import" {
		t.Errorf("expected default import_dir 'firestore_import', got %s", cfg.Import.ImportDir)
	}
	if cfg.DatabaseName != DefaultDatabaseName {
		t.Errorf("expected default database name, got %s", cfg.DatabaseName)
	}
}

func TestLoadFromViperValues(t *testing.T) {
	v := viper.New()
	v.Set("project_id", "staging-project")
	v.Set("service_account_path", "/tmp/staging.json")
	v.Set("export.sample_limit", "8")
	v.Set("import.dry_run", "true")

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ProjectID != "staging-project" {
		t.Errorf("expected project 'staging-project', got %s", cfg.ProjectID)
	}
	if cfg.ServiceAccountPath != "/tmp/staging.json" {
		t.Errorf("expected credential path '/tmp/staging.json', got %s", cfg.ServiceAccountPath)
	}
	if cfg.Export.SampleLimit != 8 {
		t.Errorf("expected sample_limit 8, got %d", cfg.Export.SampleLimit)
	}
	if !cfg.Import.DryRun {
		t.Errorf("expected dry_run enabled")
	}
}

func TestLoadFromViperNormalizesDatabaseName(t *testing.T) {
	v := viper.New()
	v.Set("database_name", "default")

	cfg, err := LoadFromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DatabaseName != DefaultDatabaseName {
		t.Errorf("expected 'default' normalized to '(default)', got %s", cfg.DatabaseName)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvProjectID, "env-project")
	t.Setenv(EnvDryRun, "true")
	t.Setenv(EnvSampleLimit, "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ProjectID != "env-project" {
		t.Errorf("expected project 'env-project', got %s", cfg.ProjectID)
	}
	if !cfg.Import.DryRun {
		t.Errorf("expected dry_run enabled from %s", EnvDryRun)
	}
	if cfg.Export.SampleLimit != 3 {
		t.Errorf("expected sample_limit 3, got %d", cfg.Export.SampleLimit)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	_, err := Load("/nonexistent/path/.env")
	if err == nil {
		t.Fatalf("expected error for missing env file")
	}
}

func TestResolveReportsDir(t *testing.T) {
	tests := []struct {
		name      string
		importDir string
		reports   string
		want      string
	}{
		{
			name:      "relative default",
			importDir: "firestore_import",
			want:      "firestore_import_reports",
		},
		{
			name:      "absolute import dir",
			importDir: "/data/firestore_import",
			want:      "/data/firestore_import_reports",
		},
		{
			name:      "explicit reports dir untouched",
			importDir: "firestore_import",
			reports:   "/var/reports",
			want:      "/var/reports",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Import.ImportDir = tt.importDir
			cfg.Import.ReportsDir = tt.reports
			if got := cfg.ResolveReportsDir(); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestProjectFromCredentials(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "staging.json")
	content := `{"type": "service_account", "project_id": "mantra-earn-staging"}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	project, err := ProjectFromCredentials(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if project != "mantra-earn-staging" {
		t.Errorf("expected project 'mantra-earn-staging', got %s", project)
	}
}

func TestProjectFromCredentialsMissingField(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, []byte(`{}`), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := ProjectFromCredentials(path); err == nil {
		t.Errorf("expected error for credentials without project_id")
	}
}

func TestProjectFromCredentialsMissingFile(t *testing.T) {
	if _, err := ProjectFromCredentials("/nonexistent/creds.json"); err == nil {
		t.Errorf("expected error for missing credentials file")
	}
}
