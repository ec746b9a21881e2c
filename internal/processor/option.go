package processor

import (
	"github.com/rs/zerolog"
)

// ComponentOpt 组件选项类型，仅改变 Components 结构体内的字段
type ComponentOpt func(*Components)

// SettingOpt 设置选项类型，仅改变 Settings 结构体内的字段
type SettingOpt func(*Settings)

// WithcompParser 设置文本解析组件
func WithcompParser(p TextParser) ComponentOpt {
	return func(c *Components) {
		c.Parser = p
	}
}

// WithcompScorer 设置置信度评分组件
func WithcompScorer(s ConfidenceScorer) ComponentOpt {
	return func(c *Components) {
		c.Scorer = s
	}
}

// WithsetDebug 设置调试模式
func WithsetDebug(debug bool) SettingOpt {
	return func(s *Settings) {
		s.Debug = debug
	}
}

// WithsetLogger 设置日志记录器
func WithsetLogger(l zerolog.Logger) SettingOpt {
	return func(s *Settings) {
		s.Logger = l
	}
}
