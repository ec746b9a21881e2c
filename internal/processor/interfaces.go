package processor

import (
	"resume-parser-go/internal/types"
)

// TextParser 简历文本解析接口
type TextParser interface {
	Parse(text string) types.StructuredRecord
}

// ConfidenceScorer 置信度评分接口
type ConfidenceScorer interface {
	Score(rec types.StructuredRecord) types.ConfidenceReport
}

// ScorerFunc 函数式的ConfidenceScorer适配器
type ScorerFunc func(rec types.StructuredRecord) types.ConfidenceReport

// Score 实现ConfidenceScorer接口
func (f ScorerFunc) Score(rec types.StructuredRecord) types.ConfidenceReport {
	return f(rec)
}
