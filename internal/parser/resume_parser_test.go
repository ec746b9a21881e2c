package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFullResume 测试完整简历文本的端到端解析
func TestParseFullResume(t *testing.T) {
	text := `PERSONAL INFORMATION
Name: John Doe
Email: John@Example.COM
Phone: 555.123.4567
Desired Job Title: Senior Engineer

PROFESSIONAL SUMMARY
Backend engineer focused on distributed systems and reliability.

WORK EXPERIENCE
Software Engineer at Tech Corp
2020-2022
• Led development of microservices

EDUCATION
Bachelor of Science in Computer Science
University of Technology
2016-2020

SKILLS
JavaScript (advanced), React v18, Go`

	record := NewResumeParser(Config{}).Parse(text)

	// 联系方式：提取后经过规范化
	assert.Equal(t, "John", record.Contact.FirstName)
	assert.Equal(t, "Doe", record.Contact.LastName)
	assert.Equal(t, "john@example.com", record.Contact.Email)
	assert.Equal(t, "(555) 123-4567", record.Contact.Phone)
	assert.Equal(t, "Senior Engineer", record.Contact.DesiredJobTitle)

	// 总结
	assert.Equal(t, "Backend engineer focused on distributed systems and reliability.", record.Summary)

	// 工作经历
	require.Len(t, record.Experiences, 1)
	exp := record.Experiences[0]
	assert.Equal(t, 1, exp.ID)
	assert.Equal(t, "Software Engineer", exp.JobTitle)
	assert.Equal(t, "Tech Corp", exp.Company)
	assert.Equal(t, "2020", exp.StartDate)
	assert.Equal(t, "2022", exp.EndDate)

	// 教育经历
	require.Len(t, record.Education, 1)
	edu := record.Education[0]
	assert.Equal(t, "Bachelor of Science in Computer Science", edu.Degree)
	assert.Equal(t, "University of Technology", edu.School)
	assert.Equal(t, "2016", edu.StartDate)
	assert.Equal(t, "2020", edu.EndDate)

	// 技能：熟练度规范化，版本词元原样保留
	require.Len(t, record.Skills, 3)
	assert.Equal(t, "JavaScript", record.Skills[0].Name)
	assert.Equal(t, "Advanced", record.Skills[0].Level)
	assert.Equal(t, "React", record.Skills[1].Name)
	assert.Equal(t, "v18", record.Skills[1].Level)
	assert.Equal(t, "Go", record.Skills[2].Name)
}

// TestParsePhoneNeverYearRange 头部块中的年份区间绝不会被填入电话字段
func TestParsePhoneNeverYearRange(t *testing.T) {
	text := `John Doe
2018-2022
john@example.com

SKILLS
Go`

	record := NewResumeParser(Config{}).Parse(text)
	assert.Empty(t, record.Contact.Phone)
	assert.Equal(t, "john@example.com", record.Contact.Email)
}

// TestParseDeduplicatesRepeatedEntries 重复条目在解析流水线末端被去重
func TestParseDeduplicatesRepeatedEntries(t *testing.T) {
	text := `WORK EXPERIENCE
Software Engineer at Tech Corp
2020-2022

Software Engineer at Tech Corp
2020-2022

Data Scientist at Facebook
2018-2020`

	record := NewResumeParser(Config{}).Parse(text)

	require.Len(t, record.Experiences, 2)
	assert.Equal(t, 1, record.Experiences[0].ID)
	assert.Equal(t, "Tech Corp", record.Experiences[0].Company)
	assert.Equal(t, 2, record.Experiences[1].ID)
	assert.Equal(t, "Facebook", record.Experiences[1].Company)
}

// TestParseEmptyInput 空白输入返回全空记录而非错误
func TestParseEmptyInput(t *testing.T) {
	record := NewResumeParser(Config{}).Parse("   \n  ")

	assert.Empty(t, record.Contact.Email)
	assert.Empty(t, record.Summary)
	// 列表字段为空切片而非nil
	assert.NotNil(t, record.Experiences)
	assert.Empty(t, record.Experiences)
	assert.NotNil(t, record.Education)
	assert.NotNil(t, record.Skills)
}

// TestParseIdempotentScoring 解析后反复计算置信度结果稳定
func TestParseIdempotentScoring(t *testing.T) {
	text := `John Doe
john@example.com

SKILLS
Go, Python`

	record := NewResumeParser(Config{}).Parse(text)

	first := CalculateParsingConfidence(record)
	second := CalculateParsingConfidence(record)
	assert.Equal(t, first, second)

	// 联系方式与技能得分，其余三项缺失
	assert.Equal(t, 40, first.OverallScore)
	assert.Len(t, first.MissingSections, 3)
}

// TestParseCustomSectionKeywords 配置追加的章节关键词参与分段
func TestParseCustomSectionKeywords(t *testing.T) {
	text := `TECH STACK
Go, Kubernetes`

	cfg := Config{
		CustomSectionKeywords: map[string][]string{
			"SKILLS": {"tech stack"},
		},
	}
	record := NewResumeParser(cfg).Parse(text)

	require.Len(t, record.Skills, 2)
	assert.Equal(t, "Go", record.Skills[0].Name)
	assert.Equal(t, "Kubernetes", record.Skills[1].Name)
}
