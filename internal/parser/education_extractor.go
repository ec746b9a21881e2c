package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// 学位类型关键词
var degreeKeywordRe = regexp.MustCompile(`(?i)\b(bachelor|master|ph\.?d|doctorate|doctor|associate|diploma|certificate|mba|b\.?sc?\.?|b\.?a\.?|b\.?e\.?|m\.?sc?\.?|m\.?a\.?|m\.?eng\.?)\b`)

// "<Degree> in/of <Subject>" 形态
var degreeShapeRe = regexp.MustCompile(`^[A-Z][A-Za-z. ]+\s(?:in|of)\s[A-Z][A-Za-z ]+`)

// 学校名关键词
var schoolKeywordRe = regexp.MustCompile(`(?i)\b(university|college|institute|school|academy|polytechnic)\b`)

// EducationExtractor 教育经历提取器
// 与工作经历提取器对称：学位对应职位，学校对应公司
type EducationExtractor struct {
	classifier *LineClassifier
}

// NewEducationExtractor 创建教育经历提取器
func NewEducationExtractor(classifier *LineClassifier) *EducationExtractor {
	return &EducationExtractor{classifier: classifier}
}

// Extract 从教育内容块提取全部教育经历条目
// 既无学位也无学校的条目视为噪声丢弃
func (e *EducationExtractor) Extract(block string) []types.Education {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	var entries []types.Education
	for _, group := range blankRunRe.Split(block, -1) {
		if entry, ok := e.extractGroup(group); ok {
			entries = append(entries, entry)
		}
	}

	for i := range entries {
		entries[i].ID = i + 1
	}
	return entries
}

// extractGroup 解析一个空行段内的单条教育经历
func (e *EducationExtractor) extractGroup(group string) (types.Education, bool) {
	var entry types.Education
	var desc []string

	for _, line := range strings.Split(group, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if entry.StartDate == "" && entry.EndDate == "" {
			if start, end, ok := MatchDateRange(trimmed); ok {
				entry.StartDate, entry.EndDate = start, end
				continue
			}
			if date, ok := MatchSingleDate(trimmed); ok {
				if isPresentWord(date) {
					entry.EndDate = date
				} else {
					entry.EndDate = date // 教育经历单个年份通常是毕业年份
				}
				continue
			}
		}

		if entry.Location == "" {
			if m := cityStateRe.FindStringSubmatch(trimmed); m != nil {
				entry.Location = trimmed
				continue
			}
		}

		if entry.Degree == "" && isDegreeLine(trimmed) {
			entry.Degree = trimmed
			continue
		}

		if entry.School == "" && isSchoolCandidate(trimmed) {
			entry.School = trimmed
			continue
		}

		desc = append(desc, trimmed)
	}

	entry.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	if entry.Degree == "" && entry.School == "" {
		return types.Education{}, false
	}
	return entry, true
}

// isDegreeLine 判断一行是否为学位行
// 优先匹配学位类型关键词，其次匹配"<Degree> in/of <Subject>"形态
func isDegreeLine(line string) bool {
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	return degreeKeywordRe.MatchString(line) || degreeShapeRe.MatchString(line)
}

// isSchoolCandidate 判断一行是否可能是学校名
func isSchoolCandidate(line string) bool {
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	if cityStateRe.MatchString(line) {
		return false
	}
	if len(line) > 80 {
		return false
	}
	if schoolKeywordRe.MatchString(line) {
		return true
	}
	return jobTitleLineRe.MatchString(line) && len(strings.Fields(line)) <= 8
}
