package parser

import (
	"fmt"
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

var (
	nonDigitRe     = regexp.MustCompile(`\D`)
	versionShapeRe = regexp.MustCompile(`(?i)^v\d+(?:\.\d+)*$`)
)

// Normalizer 字段规范化器
// 提取完成后的纯转换：不修改入参，返回独立的规范化副本，且幂等
type Normalizer struct{}

// NewNormalizer 创建规范化器
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// NormalizeRecord 规范化整条结构化记录
func (n *Normalizer) NormalizeRecord(rec types.StructuredRecord) types.StructuredRecord {
	out := rec

	out.Contact.Phone = NormalizePhone(rec.Contact.Phone)
	out.Contact.Email = NormalizeEmail(rec.Contact.Email)

	out.Experiences = make([]types.Experience, len(rec.Experiences))
	for i, exp := range rec.Experiences {
		exp.StartDate = NormalizeDate(exp.StartDate)
		exp.EndDate = NormalizeDate(exp.EndDate)
		out.Experiences[i] = exp
	}

	out.Education = make([]types.Education, len(rec.Education))
	for i, edu := range rec.Education {
		edu.StartDate = NormalizeDate(edu.StartDate)
		edu.EndDate = NormalizeDate(edu.EndDate)
		out.Education[i] = edu
	}

	out.Skills = make([]types.Skill, len(rec.Skills))
	for i, skill := range rec.Skills {
		skill.Level = NormalizeSkillLevel(skill.Level)
		out.Skills[i] = skill
	}

	out.Summary = strings.TrimSpace(rec.Summary)
	return out
}

// NormalizePhone 把电话号码重排为规范的分组形态
// 10位数字排为 "(ddd) ddd-dddd"，带国家码1的11位排为 "+1 (ddd) ddd-dddd"，
// 其余长度原样保留（仅去除首尾空白）
func NormalizePhone(phone string) string {
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return ""
	}

	digits := nonDigitRe.ReplaceAllString(trimmed, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}
	return trimmed
}

// NormalizeEmail 邮箱统一小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDate 规范化自由文本日期词元
// "present"/"current"/"now" 统一为字面值 "Present"，
// 字母开头的词元首字母大写（"jan 2020" -> "Jan 2020"）
func NormalizeDate(date string) string {
	trimmed := strings.TrimSpace(date)
	if trimmed == "" {
		return ""
	}
	if isPresentWord(trimmed) {
		return "Present"
	}

	fields := strings.Fields(trimmed)
	for i, field := range fields {
		if field[0] >= 'a' && field[0] <= 'z' || field[0] >= 'A' && field[0] <= 'Z' {
			fields[i] = capitalizeWord(field)
		}
	}
	return strings.Join(fields, " ")
}

// NormalizeSkillLevel 规范化技能熟练度
// 版本形态的值（如"v18"）原样保留，普通词做首字母大写
func NormalizeSkillLevel(level string) string {
	trimmed := strings.TrimSpace(level)
	if trimmed == "" {
		return ""
	}
	if versionShapeRe.MatchString(trimmed) {
		return trimmed
	}

	fields := strings.Fields(trimmed)
	for i, field := range fields {
		fields[i] = capitalizeWord(field)
	}
	return strings.Join(fields, " ")
}
