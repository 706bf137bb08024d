package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.InputDir != "data_input" {
		t.Fatalf("InputDir=%q", cfg.Data.InputDir)
	}
	if cfg.Merge.Workers != 4 {
		t.Fatalf("Workers=%d", cfg.Merge.Workers)
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "缺失.toml")); err == nil {
		t.Fatalf("显式指定的配置文件缺失应报错")
	}
}

func TestLoad_FileOverridesAndBackfills(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
input_dir = "原始数据"

[merge]
workers = 8
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.InputDir != "原始数据" {
		t.Fatalf("InputDir=%q", cfg.Data.InputDir)
	}
	if cfg.Merge.Workers != 8 {
		t.Fatalf("Workers=%d", cfg.Merge.Workers)
	}
	// 未配置的字段回落默认值
	if cfg.Data.OutputPath == "" {
		t.Fatalf("OutputPath 应有默认值")
	}
}

func TestLoad_InvalidToml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[data\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("坏 toml 应报错")
	}
}
