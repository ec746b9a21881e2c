package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

func fullRecord() types.StructuredRecord {
	return types.StructuredRecord{
		Contact: types.Contact{
			Email: "john@example.com",
			Phone: "(555) 123-4567",
		},
		Experiences: []types.Experience{{ID: 1, JobTitle: "Engineer"}},
		Education:   []types.Education{{ID: 1, School: "MIT"}},
		Skills:      []types.Skill{{ID: 1, Name: "Go"}},
		Summary:     "Experienced engineer.",
	}
}

// TestConfidenceFullRecord 五项俱全的记录得满分
func TestConfidenceFullRecord(t *testing.T) {
	report := CalculateParsingConfidence(fullRecord())

	assert.Equal(t, 100, report.OverallScore)
	assert.Len(t, report.SectionsFound, 5)
	assert.Empty(t, report.MissingSections)
	assert.Empty(t, report.Suggestions)
}

// TestConfidenceEmailOnly 仅有邮箱的记录得20分，缺失其余四项
func TestConfidenceEmailOnly(t *testing.T) {
	rec := types.StructuredRecord{
		Contact: types.Contact{Email: "john@example.com"},
	}

	report := CalculateParsingConfidence(rec)

	assert.Equal(t, 20, report.OverallScore)
	assert.Equal(t, []string{constants.ChecklistContact}, report.SectionsFound)
	assert.Len(t, report.MissingSections, 4)
	assert.Len(t, report.Suggestions, 4)
	assert.Contains(t, report.MissingSections, constants.ChecklistExperiences)
	assert.Contains(t, report.MissingSections, constants.ChecklistSummary)
}

// TestConfidenceEmptyRecord 全空记录得0分，五项全部缺失并各有一条建议
func TestConfidenceEmptyRecord(t *testing.T) {
	report := CalculateParsingConfidence(types.StructuredRecord{})

	assert.Equal(t, 0, report.OverallScore)
	assert.Empty(t, report.SectionsFound)
	assert.Len(t, report.MissingSections, 5)
	assert.Len(t, report.Suggestions, 5)

	// 列表字段初始化为空切片而非nil，保证JSON序列化为[]
	assert.NotNil(t, report.SectionsFound)
}

// TestConfidenceChecklistOrder 清单顺序固定：联系方式、经历、教育、技能、总结
func TestConfidenceChecklistOrder(t *testing.T) {
	report := CalculateParsingConfidence(fullRecord())

	assert.Equal(t, []string{
		constants.ChecklistContact,
		constants.ChecklistExperiences,
		constants.ChecklistEducation,
		constants.ChecklistSkills,
		constants.ChecklistSummary,
	}, report.SectionsFound)
}

// TestConfidenceIdempotent 对同一条记录重复计算得到完全相同的报告
func TestConfidenceIdempotent(t *testing.T) {
	rec := fullRecord()
	assert.Equal(t, CalculateParsingConfidence(rec), CalculateParsingConfidence(rec))
}

// TestConfidencePureWhitespaceSummary 纯空白的总结不计分
func TestConfidencePureWhitespaceSummary(t *testing.T) {
	rec := fullRecord()
	rec.Summary = "   \n  "

	report := CalculateParsingConfidence(rec)
	assert.Equal(t, 80, report.OverallScore)
	assert.Contains(t, report.MissingSections, constants.ChecklistSummary)
}
