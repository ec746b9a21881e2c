package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/types"
)

// 列表项标记模式，按出现频率排序
// 依次为：项目符号、数字编号、小写字母编号、大写字母编号
var bulletMarkerRes = []*regexp.Regexp{
	regexp.MustCompile(`^[•\-\*]\s+`),
	regexp.MustCompile(`^\d+\.\s+`),
	regexp.MustCompile(`^[a-z]\)\s+`),
	regexp.MustCompile(`^[A-Z][.)]\s+`),
}

// 电话号码形态模式，按优先级排序
// 关键约束：裸的四位年份或"YYYY-YYYY"区间绝不能命中其中任何一条，
// 因此每条模式都要求电话特有的分组标点（括号分组或典型分段长度）
var phoneShapeRes = []*regexp.Regexp{
	regexp.MustCompile(`\(\d{3}\)[\s.-]?\d{3}[-.\s]\d{4}`),
	regexp.MustCompile(`\+?1[-.\s]\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`),
	regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b`),
	regexp.MustCompile(`\b\d{3}\.\d{3}\.\d{4}\b`),
}

// 日期形态模式
var (
	monthYearRe = regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}\b`)
	slashDateRe = regexp.MustCompile(`\b\d{1,2}[/-]\d{4}\b|\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	bareYearRe  = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	presentRe   = regexp.MustCompile(`(?i)\b(?:present|current|now)\b`)

	// 词元级模式：整个词元就是一个年份或年份区间
	yearTokenRe = regexp.MustCompile(`^\d{4}$`)
	yearRangeRe = regexp.MustCompile(`(?i)^\d{4}\s*[-–—~]\s*(?:\d{4}|present|current|now)$`)
)

// 单个日期词元的子模式："Jan 2020"、"3/2021"、"2018" 等
const dateTokenPattern = `(?:(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}|\d{1,2}/\d{4}|\d{4})`

var (
	// dateRangeRe 匹配整行形态的日期区间，如 "2020-2022"、"Jan 2020 - Present"
	dateRangeRe = regexp.MustCompile(`(?i)^(` + dateTokenPattern + `)(?:\s+to\s+|\s*[-–—]\s*)(` + dateTokenPattern + `|present|current|now)$`)
	// singleDateRe 匹配整行只有一个日期词元的情况
	singleDateRe = regexp.MustCompile(`(?i)^(?:` + dateTokenPattern + `|present|current|now)$`)
)

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// sectionKeyword 章节类型到同义词表的映射
type sectionKeyword struct {
	kind     types.SectionKind
	synonyms []string
}

// defaultSectionKeywords 默认的章节关键词表
// 顺序即优先级：先匹配具体类型，同一类型内先匹配更长的同义词，
// 保证歧义行的归类结果可复现
var defaultSectionKeywords = []sectionKeyword{
	{types.SectionContact, []string{"personal information", "contact information", "contact details", "contact"}},
	{types.SectionSummary, []string{"professional summary", "career summary", "summary", "profile", "objective", "about me"}},
	{types.SectionExperience, []string{"work experience", "professional experience", "employment history", "work history", "career history", "employment", "experience"}},
	{types.SectionEducation, []string{"education", "academic background", "academic history", "qualifications"}},
	{types.SectionSkills, []string{"technical skills", "core competencies", "competencies", "skills", "technologies", "areas of expertise", "expertise"}},
}

// LineClassifier 行分类器
// 纯函数式组件：对单行文本判定形态特征，无任何跨调用状态
type LineClassifier struct {
	maxHeaderLen int
	table        []sectionKeyword
}

// NewLineClassifier 创建行分类器
// customKeywords 中的同义词会追加到对应类型的默认词表后面
func NewLineClassifier(maxHeaderLen int, customKeywords map[string][]string) *LineClassifier {
	if maxHeaderLen <= 0 {
		maxHeaderLen = constants.DefaultMaxHeaderLen
	}

	table := make([]sectionKeyword, len(defaultSectionKeywords))
	for i, entry := range defaultSectionKeywords {
		synonyms := append([]string(nil), entry.synonyms...)
		if extra, ok := customKeywords[string(entry.kind)]; ok {
			for _, syn := range extra {
				syn = strings.ToLower(strings.TrimSpace(syn))
				if syn != "" {
					synonyms = append(synonyms, syn)
				}
			}
		}
		table[i] = sectionKeyword{kind: entry.kind, synonyms: synonyms}
	}

	return &LineClassifier{
		maxHeaderLen: maxHeaderLen,
		table:        table,
	}
}

// Classify 判定单行文本的形态特征
func (c *LineClassifier) Classify(line string) types.LineFacts {
	_, isHeader := c.MatchSectionHeader(line)
	return types.LineFacts{
		IsBullet:            IsBulletLine(line),
		IsPhoneLike:         FindPhoneToken(line) != "",
		IsDateLike:          IsDateLike(line),
		IsEmailLike:         emailRe.MatchString(line),
		IsSectionHeaderLike: isHeader,
	}
}

// MatchSectionHeader 判断一行是否为某个已知章节的标题
// 规则：行内（不区分大小写）包含该章节的关键词，且行足够短或关键词位于行首，
// 以避免把正文中顺带提到"experience"的句子误判为标题
func (c *LineClassifier) MatchSectionHeader(line string) (types.SectionKind, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return types.SectionUnknown, false
	}

	lower := strings.ToLower(trimmed)
	for _, entry := range c.table {
		for _, syn := range entry.synonyms {
			if !strings.Contains(lower, syn) {
				continue
			}
			if len(trimmed) < c.maxHeaderLen || strings.HasPrefix(lower, syn) {
				return entry.kind, true
			}
		}
	}

	return types.SectionUnknown, false
}

// IsBulletLine 判断一行是否为列表项
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, re := range bulletMarkerRes {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// BulletContent 剥离列表项的前导标记，返回剩余内容
// 非列表项原样返回（仅去除首尾空白）
func BulletContent(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, re := range bulletMarkerRes {
		if loc := re.FindStringIndex(trimmed); loc != nil {
			return strings.TrimSpace(trimmed[loc[1]:])
		}
	}
	return trimmed
}

// FindPhoneToken 在一行中查找第一个真正电话形态的片段
// 电话形态模式优先于任何年份形态的词元：裸年份或年份区间即使出现在
// 含有"Phone"字样的行里也绝不会被当作电话号码返回
func FindPhoneToken(line string) string {
	for _, re := range phoneShapeRes {
		if m := re.FindString(line); m != "" {
			// 额外防御：命中片段本身不能是年份区间形态
			if yearTokenRe.MatchString(m) || yearRangeRe.MatchString(m) {
				continue
			}
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// FindEmailToken 在一行中查找第一个邮箱地址
func FindEmailToken(line string) string {
	return emailRe.FindString(line)
}

// IsDateLike 判断一行是否包含日期/日期区间形态的片段
func IsDateLike(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	return monthYearRe.MatchString(trimmed) ||
		slashDateRe.MatchString(trimmed) ||
		presentRe.MatchString(trimmed) ||
		bareYearRe.MatchString(trimmed)
}

// MatchDateRange 判断整行是否为日期区间，并切分出起止日期
// 第三个返回值指示是否命中
func MatchDateRange(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if m := dateRangeRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// MatchSingleDate 判断整行是否为单个日期词元
func MatchSingleDate(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if singleDateRe.MatchString(trimmed) {
		return trimmed, true
	}
	return "", false
}
