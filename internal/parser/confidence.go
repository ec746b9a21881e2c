package parser

import (
	"strings"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

// checklistItem 置信度清单中的单个检查项
// 每项固定20分，不设部分得分
type checklistItem struct {
	name       string
	suggestion string
	satisfied  func(rec types.StructuredRecord) bool
}

// confidenceChecklist 固定的五项完整度清单，顺序即报告中的呈现顺序
var confidenceChecklist = []checklistItem{
	{
		name:       constants.ChecklistContact,
		suggestion: "Add your email address and phone number",
		satisfied: func(rec types.StructuredRecord) bool {
			// 邮箱或电话任一存在即视为联系方式可用
			return rec.Contact.Email != "" || rec.Contact.Phone != ""
		},
	},
	{
		name:       constants.ChecklistExperiences,
		suggestion: "Add your work experience",
		satisfied: func(rec types.StructuredRecord) bool {
			return len(rec.Experiences) > 0
		},
	},
	{
		name:       constants.ChecklistEducation,
		suggestion: "Add your education history",
		satisfied: func(rec types.StructuredRecord) bool {
			return len(rec.Education) > 0
		},
	},
	{
		name:       constants.ChecklistSkills,
		suggestion: "Add your skills",
		satisfied: func(rec types.StructuredRecord) bool {
			return len(rec.Skills) > 0
		},
	},
	{
		name:       constants.ChecklistSummary,
		suggestion: "Add a professional summary",
		satisfied: func(rec types.StructuredRecord) bool {
			return strings.TrimSpace(rec.Summary) != ""
		},
	},
}

// CalculateParsingConfidence 计算解析置信度报告
// 纯函数且幂等：对同一条记录重复计算得到完全相同的报告；
// 可以在外部编辑结构化数据之后单独调用，无需重新解析
func CalculateParsingConfidence(rec types.StructuredRecord) types.ConfidenceReport {
	report := types.ConfidenceReport{
		SectionsFound:   []string{},
		MissingSections: []string{},
		Suggestions:     []string{},
	}

	for _, item := range confidenceChecklist {
		if item.satisfied(rec) {
			report.OverallScore += constants.SectionScoreWeight
			report.SectionsFound = append(report.SectionsFound, item.name)
			continue
		}
		report.MissingSections = append(report.MissingSections, item.name)
		report.Suggestions = append(report.Suggestions, item.suggestion)
	}

	return report
}
