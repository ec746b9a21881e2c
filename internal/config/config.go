package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
)

// Config 应用程序配置
type Config struct {
	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 解析器启发式配置
	Parser parser.Config `yaml:"parser"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			Level:  "info",
			Format: "pretty",
		},
		Parser: parser.Config{},
	}
}

// LoadConfig 从文件加载配置
// 未指定路径时在常见位置查找；找不到配置文件时返回默认配置而不报错
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-parser", "config.yaml"),
		}

		// 可执行文件所在目录也纳入查找范围
		if execPath, err := os.Executable(); err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths,
				filepath.Join(execDir, "config.yaml"),
				filepath.Join(execDir, "..", "config.yaml"),
			)
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		if configPath == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败 %s: %w", configPath, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件失败 %s: %w", configPath, err)
	}

	return cfg, nil
}

// CreateSampleConfig 在指定路径生成一份带默认值的示例配置文件
func CreateSampleConfig(filePath string) error {
	sample := &Config{
		Logger: logger.Config{
			Level:      "info",
			Format:     "pretty",
			TimeFormat: "",
		},
		Parser: parser.Config{
			CustomSectionKeywords: map[string][]string{
				"SKILLS": {"tech stack"},
			},
			MaxHeaderLen:         50,
			MinSplitParagraphLen: 160,
			MinBulletPieceLen:    12,
		},
	}

	data, err := yaml.Marshal(sample)
	if err != nil {
		return fmt.Errorf("序列化示例配置失败: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return fmt.Errorf("写入示例配置失败: %w", err)
	}
	return nil
}
