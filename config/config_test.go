package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(cfg *Config) {},
			wantErr: false,
		},
		{
			name:    "missing API key",
			mutate:  func(cfg *Config) { cfg.OMDb.APIKey = "" },
			wantErr: true,
		},
		{
			name:    "placeholder API key",
			mutate:  func(cfg *Config) { cfg.OMDb.APIKey = "your-api-key-here" },
			wantErr: true,
		},
		{
			name:    "negative timeout",
			mutate:  func(cfg *Config) { cfg.OMDb.TimeoutMS = -1 },
			wantErr: true,
		},
		{
			name:    "invalid logging level",
			mutate:  func(cfg *Config) { cfg.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "invalid logging format",
			mutate:  func(cfg *Config) { cfg.Logging.Format = "xml" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				OMDb: OMDbConfig{
					APIKey:    "valid-api-key",
					TimeoutMS: 30000,
				},
				Logging: LoggingConfig{
					Level:  "info",
					Format: "console",
				},
			}
			tt.mutate(cfg)

			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("from file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := []byte(`
omdb:
  api_key: file-key
  timeout_ms: 5000
filter:
  default: Year > 2000
  presets:
    recent: Year >= 2020
logging:
  level: debug
  format: json
`)
		if err := os.WriteFile(path, content, 0o600); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OMDb.APIKey != "file-key" {
			t.Errorf("APIKey = %q, want %q", cfg.OMDb.APIKey, "file-key")
		}
		if cfg.OMDb.TimeoutMS != 5000 {
			t.Errorf("TimeoutMS = %d, want 5000", cfg.OMDb.TimeoutMS)
		}
		if cfg.Filter.Presets["recent"] != "Year >= 2020" {
			t.Errorf("preset recent = %q", cfg.Filter.Presets["recent"])
		}
		if cfg.Logging.Format != "json" {
			t.Errorf("Format = %q, want json", cfg.Logging.Format)
		}
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil {
			t.Fatal("Load() expected error for missing explicit config file")
		}
	})

	t.Run("env only", func(t *testing.T) {
		t.Setenv("OMDB_API_KEY", "env-key")

		// Run from an empty directory with an empty home so no stray
		// config.yaml on the host machine is picked up.
		t.Setenv("HOME", t.TempDir())
		wd, err := os.Getwd()
		if err != nil {
			t.Fatal(err)
		}
		if err := os.Chdir(t.TempDir()); err != nil {
			t.Fatal(err)
		}
		defer os.Chdir(wd)

		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.OMDb.APIKey != "env-key" {
			t.Errorf("APIKey = %q, want env-key", cfg.OMDb.APIKey)
		}
		if cfg.OMDb.TimeoutMS != 30000 {
			t.Errorf("TimeoutMS = %d, want default 30000", cfg.OMDb.TimeoutMS)
		}
	})
}
