package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// DefaultPath 默认配置文件路径
const DefaultPath = "config.toml"

// AppConfig 合并工具配置
type AppConfig struct {
	Data  DataConfig  `toml:"data"`
	Merge MergeConfig `toml:"merge"`
}

// DataConfig 数据路径配置
type DataConfig struct {
	InputDir   string `toml:"input_dir"`
	OutputPath string `toml:"output_path"`
}

// MergeConfig 合并行为配置
type MergeConfig struct {
	Workers int `toml:"workers"`
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Data: DataConfig{
			InputDir:   "data_input",
			OutputPath: filepath.Join("data_output", "合并数据_汇总.xlsx"),
		},
		Merge: MergeConfig{
			Workers: 4,
		},
	}
}

// Load 加载配置文件，缺失字段补默认值
// path 为空时尝试 DefaultPath；默认路径的文件不存在不算错误。
func Load(path string) (*AppConfig, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if cfg.Data.InputDir == "" {
		cfg.Data.InputDir = DefaultConfig().Data.InputDir
	}
	if cfg.Data.OutputPath == "" {
		cfg.Data.OutputPath = DefaultConfig().Data.OutputPath
	}
	if cfg.Merge.Workers <= 0 {
		cfg.Merge.Workers = DefaultConfig().Merge.Workers
	}
	return cfg, nil
}
