package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-parser-go/internal/types"
)

// TestIsBulletLine 测试各种列表项标记形态的识别
func TestIsBulletLine(t *testing.T) {
	bulletLines := []string{
		"• Led development of microservices",
		"- Improved system performance",
		"* Mentored junior engineers",
		"1. Designed the data pipeline",
		"a) Coordinated cross-team releases",
		"A. Established code review process",
		"  • 带前导空白的列表项也要识别",
	}
	for _, line := range bulletLines {
		assert.True(t, IsBulletLine(line), "应识别为列表项: %q", line)
	}

	plainLines := []string{
		"Led development of microservices",
		"Software Engineer at Tech Corp",
		"2020-2022",
		"",
	}
	for _, line := range plainLines {
		assert.False(t, IsBulletLine(line), "不应识别为列表项: %q", line)
	}
}

// TestBulletContent 测试列表项标记的剥离
func TestBulletContent(t *testing.T) {
	assert.Equal(t, "Led development", BulletContent("• Led development"))
	assert.Equal(t, "Improved latency", BulletContent("- Improved latency"))
	assert.Equal(t, "Designed the pipeline", BulletContent("1. Designed the pipeline"))
	// 非列表项仅去除首尾空白
	assert.Equal(t, "plain text", BulletContent("  plain text  "))
}

// TestFindPhoneToken 测试电话号码形态的提取
func TestFindPhoneToken(t *testing.T) {
	testCases := []struct {
		line     string
		expected string
	}{
		{"Phone: (555) 123-4567", "(555) 123-4567"},
		{"555-123-4567", "555-123-4567"},
		{"Call me at 555.123.4567 anytime", "555.123.4567"},
		{"Tel: 1-555-123-4567", "1-555-123-4567"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FindPhoneToken(tc.line), "行: %q", tc.line)
	}
}

// TestFindPhoneTokenRejectsYearShapes 关键约束：年份和年份区间绝不能被当作电话号码
func TestFindPhoneTokenRejectsYearShapes(t *testing.T) {
	yearLines := []string{
		"2018-2022",
		"Phone: 2020",
		"2020 - Present",
		"Jan 2019 - Dec 2021",
		"1998",
	}
	for _, line := range yearLines {
		assert.Empty(t, FindPhoneToken(line), "年份形态不应命中电话: %q", line)
	}
}

// TestFindPhoneTokenPrecedence 同一行同时存在电话和年份区间时，电话优先
func TestFindPhoneTokenPrecedence(t *testing.T) {
	line := "2018-2022 | (555) 123-4567"
	assert.Equal(t, "(555) 123-4567", FindPhoneToken(line))
}

// TestFindEmailToken 测试邮箱提取
func TestFindEmailToken(t *testing.T) {
	assert.Equal(t, "john@example.com", FindEmailToken("Email: john@example.com"))
	assert.Equal(t, "jane.doe+cv@corp.io", FindEmailToken("jane.doe+cv@corp.io / GitHub: janedoe"))
	assert.Empty(t, FindEmailToken("no email here"))
}

// TestMatchSectionHeader 测试章节标题的识别与类型归类
func TestMatchSectionHeader(t *testing.T) {
	c := NewLineClassifier(0, nil)

	testCases := []struct {
		line string
		kind types.SectionKind
	}{
		{"WORK EXPERIENCE", types.SectionExperience},
		{"Professional Experience", types.SectionExperience},
		{"Employment History", types.SectionExperience},
		{"EDUCATION", types.SectionEducation},
		{"Academic Background", types.SectionEducation},
		{"SKILLS", types.SectionSkills},
		{"Technical Skills", types.SectionSkills},
		{"Core Competencies", types.SectionSkills},
		{"PERSONAL INFORMATION", types.SectionContact},
		{"Contact Details", types.SectionContact},
		{"PROFESSIONAL SUMMARY", types.SectionSummary},
		{"Objective", types.SectionSummary},
	}
	for _, tc := range testCases {
		kind, ok := c.MatchSectionHeader(tc.line)
		require.True(t, ok, "应识别为章节标题: %q", tc.line)
		assert.Equal(t, tc.kind, kind, "章节类型不符: %q", tc.line)
	}
}

// TestMatchSectionHeaderLengthGuard 过长且关键词不在行首的行不应误判为标题
func TestMatchSectionHeaderLengthGuard(t *testing.T) {
	c := NewLineClassifier(0, nil)

	// 正文中顺带提到"experience"的长句
	_, ok := c.MatchSectionHeader("I have extensive experience building large scale distributed systems")
	assert.False(t, ok, "正文长句不应被判定为标题")

	// 关键词位于行首时长度限制放宽
	kind, ok := c.MatchSectionHeader("Experience with distributed systems and cloud infrastructure at scale")
	assert.True(t, ok)
	assert.Equal(t, types.SectionExperience, kind)
}

// TestMatchSectionHeaderCustomKeywords 测试配置追加的章节关键词
func TestMatchSectionHeaderCustomKeywords(t *testing.T) {
	c := NewLineClassifier(0, map[string][]string{
		string(types.SectionSkills): {"tech stack"},
	})

	kind, ok := c.MatchSectionHeader("Tech Stack")
	require.True(t, ok)
	assert.Equal(t, types.SectionSkills, kind)

	// 默认关键词仍然有效
	kind, ok = c.MatchSectionHeader("SKILLS")
	require.True(t, ok)
	assert.Equal(t, types.SectionSkills, kind)
}

// TestIsDateLike 测试日期形态的识别
func TestIsDateLike(t *testing.T) {
	dateLines := []string{
		"Jan 2020 - Dec 2022",
		"January 2020",
		"3/2021",
		"2018-2022",
		"2019",
		"2020 - Present",
	}
	for _, line := range dateLines {
		assert.True(t, IsDateLike(line), "应识别为日期形态: %q", line)
	}

	assert.False(t, IsDateLike("Tech Corp"))
	assert.False(t, IsDateLike("Software Engineer"))
	assert.False(t, IsDateLike(""))
}

// TestMatchDateRange 测试日期区间的整行匹配与切分
func TestMatchDateRange(t *testing.T) {
	testCases := []struct {
		line  string
		start string
		end   string
	}{
		{"2020-2022", "2020", "2022"},
		{"Jan 2020 - Dec 2022", "Jan 2020", "Dec 2022"},
		{"2016 to 2020", "2016", "2020"},
		{"Mar 2021 - Present", "Mar 2021", "Present"},
		{"3/2019 - 6/2022", "3/2019", "6/2022"},
	}
	for _, tc := range testCases {
		start, end, ok := MatchDateRange(tc.line)
		require.True(t, ok, "应识别为日期区间: %q", tc.line)
		assert.Equal(t, tc.start, start)
		assert.Equal(t, tc.end, end)
	}

	// 非整行区间形态不命中
	_, _, ok := MatchDateRange("worked from 2020 to 2022 remotely")
	assert.False(t, ok)
	_, _, ok = MatchDateRange("Software Engineer")
	assert.False(t, ok)
}

// TestMatchSingleDate 测试单个日期词元的整行匹配
func TestMatchSingleDate(t *testing.T) {
	date, ok := MatchSingleDate("2019")
	require.True(t, ok)
	assert.Equal(t, "2019", date)

	date, ok = MatchSingleDate("May 2021")
	require.True(t, ok)
	assert.Equal(t, "May 2021", date)

	_, ok = MatchSingleDate("MIT")
	assert.False(t, ok)
}

// TestClassify 测试单行形态特征的汇总判定
func TestClassify(t *testing.T) {
	c := NewLineClassifier(0, nil)

	facts := c.Classify("• john@example.com")
	assert.True(t, facts.IsBullet)
	assert.True(t, facts.IsEmailLike)
	assert.False(t, facts.IsPhoneLike)

	facts = c.Classify("WORK EXPERIENCE")
	assert.True(t, facts.IsSectionHeaderLike)
	assert.False(t, facts.IsBullet)

	facts = c.Classify("Jan 2020 - Present")
	assert.True(t, facts.IsDateLike)
	assert.False(t, facts.IsSectionHeaderLike)
}
