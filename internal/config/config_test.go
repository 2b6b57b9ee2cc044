package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Bake.Normals != NormalsCorrected {
		t.Errorf("expected normals %q, got %q", NormalsCorrected, cfg.Bake.Normals)
	}
	if cfg.Bake.CenterXZ {
		t.Error("expected center_xz to be false by default")
	}
	if cfg.Output.Dump {
		t.Error("expected dump to be false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Bake.Normals = "sideways"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown normals mode")
	}

	cfg = Default()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "posetool.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "pose.log"

bake:
  normals: linear
  center_xz: true

output:
  node_id: 12
  dump: true
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "pose.log" {
		t.Errorf("expected log file 'pose.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Bake.Normals != NormalsLinear {
		t.Errorf("expected normals 'linear', got %s", cfg.Bake.Normals)
	}
	if !cfg.Bake.CenterXZ {
		t.Error("expected center_xz to be true")
	}
	if cfg.Output.NodeID != 12 {
		t.Errorf("expected node id 12, got %d", cfg.Output.NodeID)
	}
	if !cfg.Output.Dump {
		t.Error("expected dump to be true")
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  node_id: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if filepath.Base(dir) != "pose" {
		t.Errorf("ConfigDir should end in 'pose', got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	t.Setenv("HOME", tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "posetool.yaml")
	if err := os.WriteFile(configPath, []byte("bake:\n  normals: linear\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find posetool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "normals flag",
			setup: func() { *flagNormals = NormalsLinear },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Bake.Normals != NormalsLinear {
					t.Errorf("expected normals 'linear', got %s", cfg.Bake.Normals)
				}
			},
			teardown: func() { *flagNormals = "" },
		},
		{
			name:  "center flag",
			setup: func() { *flagCenter = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Bake.CenterXZ {
					t.Error("expected center_xz with center flag")
				}
			},
			teardown: func() { *flagCenter = false },
		},
		{
			name: "node and dump flags",
			setup: func() {
				*flagNode = 99
				*flagDump = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Output.NodeID != 99 {
					t.Errorf("expected node id 99, got %d", cfg.Output.NodeID)
				}
				if !cfg.Output.Dump {
					t.Error("expected dump with dump flag")
				}
			},
			teardown: func() {
				*flagNode = 0
				*flagDump = false
			},
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "out.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "out.log" {
					t.Errorf("expected log file 'out.log', got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "posetool.yaml")

	yamlContent := `
bake:
  normals: linear
output:
  node_id: 5
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Flag overrides the file
	*flagConfig = configPath
	*flagNode = 8
	defer func() {
		*flagConfig = ""
		*flagNode = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Output.NodeID != 8 {
		t.Errorf("expected node id 8 from flag, got %d", cfg.Output.NodeID)
	}
	if cfg.Bake.Normals != NormalsLinear {
		t.Errorf("expected normals 'linear' from file, got %s", cfg.Bake.Normals)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "posetool.yaml")
	if err := os.WriteFile(configPath, []byte("bake:\n  normals: sideways\n"), 0644); err != nil {
		t.Fatal(err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected Load to reject unknown normals mode")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Bake.CenterXZ = true
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !loaded.Bake.CenterXZ {
		t.Error("saved value was not reloaded")
	}
}
