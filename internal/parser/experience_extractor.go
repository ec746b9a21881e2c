package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// 空行段分隔：一个或多个空白行
var blankRunRe = regexp.MustCompile(`\n[ \t]*\n+`)

// 头部行内的"职位 @ 公司"分隔符，按常见程度排序
var headerSeparators = []string{" at ", " | ", " – ", " — ", " - ", " • ", " @ "}

// 头部行尾部携带的日期区间，如 "Data Scientist - Facebook, 2020-2022"
var trailingDateRangeRe = regexp.MustCompile(`(?i)[,\s]+(` + dateTokenPattern + `)\s*(?:[-–—]|to)\s*(` + dateTokenPattern + `|present|current|now)\s*$`)

// ExperienceExtractor 工作经历提取器
// 在经历内容块内按空行段或新出现的职位形态行切分条目
type ExperienceExtractor struct {
	classifier *LineClassifier
}

// NewExperienceExtractor 创建工作经历提取器
func NewExperienceExtractor(classifier *LineClassifier) *ExperienceExtractor {
	return &ExperienceExtractor{classifier: classifier}
}

// Extract 从经历内容块提取全部工作经历条目
// ID按文档顺序从1开始分配；既无职位也无公司的条目视为噪声丢弃
func (e *ExperienceExtractor) Extract(block string) []types.Experience {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	var entries []types.Experience
	for _, group := range blankRunRe.Split(block, -1) {
		entries = append(entries, e.extractGroup(group)...)
	}

	// 过滤噪声条目并重排ID
	var out []types.Experience
	for _, entry := range entries {
		if entry.JobTitle == "" && entry.Company == "" {
			continue
		}
		entry.ID = len(out) + 1
		out = append(out, entry)
	}
	return out
}

// extractGroup 解析一个空行段内的条目
// 段内再次出现职位形态的行（且当前条目已积累内容）时开启新条目，
// 以容忍没有空行分隔的简历
func (e *ExperienceExtractor) extractGroup(group string) []types.Experience {
	var entries []types.Experience
	var cur *types.Experience
	var desc []string

	closeCurrent := func() {
		if cur == nil {
			return
		}
		cur.Description = strings.TrimSpace(strings.Join(desc, "\n"))
		entries = append(entries, *cur)
		cur = nil
		desc = nil
	}

	for _, line := range strings.Split(group, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if cur == nil {
			cur = &types.Experience{}
			if start, end, ok := MatchDateRange(trimmed); ok {
				cur.StartDate, cur.EndDate = start, end
			} else {
				e.parseEntryHeader(cur, trimmed)
			}
			continue
		}

		if cur.StartDate == "" && cur.EndDate == "" {
			if start, end, ok := MatchDateRange(trimmed); ok {
				cur.StartDate, cur.EndDate = start, end
				continue
			}
			if date, ok := MatchSingleDate(trimmed); ok {
				if isPresentWord(date) {
					cur.EndDate = date
				} else {
					cur.StartDate = date
				}
				continue
			}
		}

		if cur.Location == "" {
			if m := cityStateRe.FindStringSubmatch(trimmed); m != nil {
				cur.Location = trimmed
				continue
			}
		}

		if cur.Company == "" && e.isCompanyCandidate(trimmed) {
			cur.Company = trimmed
			continue
		}

		// 当前条目已经积累了日期或描述之后再次出现职位形态的行：新条目开始
		if (cur.StartDate != "" || len(desc) > 0) && e.isJobHeaderCandidate(trimmed) {
			closeCurrent()
			cur = &types.Experience{}
			e.parseEntryHeader(cur, trimmed)
			continue
		}

		desc = append(desc, trimmed)
	}

	closeCurrent()
	return entries
}

// parseEntryHeader 解析条目首行
// 尾随的日期区间先剥离，再按分隔符切出职位与公司；无分隔符时整行作为职位
func (e *ExperienceExtractor) parseEntryHeader(entry *types.Experience, line string) {
	if m := trailingDateRangeRe.FindStringSubmatch(line); m != nil {
		entry.StartDate = strings.TrimSpace(m[1])
		entry.EndDate = strings.TrimSpace(m[2])
		line = strings.TrimSpace(trailingDateRangeRe.ReplaceAllString(line, ""))
	}

	for _, sep := range headerSeparators {
		idx := strings.Index(line, sep)
		if idx <= 0 {
			continue
		}
		title := strings.TrimSpace(line[:idx])
		company := strings.TrimSpace(line[idx+len(sep):])
		if title == "" || company == "" || IsDateLike(company) {
			continue
		}
		entry.JobTitle = title
		entry.Company = strings.Trim(company, ",")
		return
	}

	entry.JobTitle = strings.TrimSpace(line)
}

// isCompanyCandidate 判断一行是否可能是公司名
// 排除日期区间行与"City, ST"尾缀形态的地点行
func (e *ExperienceExtractor) isCompanyCandidate(line string) bool {
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	if cityStateRe.MatchString(line) {
		return false
	}
	if _, _, ok := MatchDateRange(line); ok {
		return false
	}
	if len(line) > 60 || len(strings.Fields(line)) > 7 {
		return false
	}
	// 以动作动词开头的行更可能是描述
	if loc := actionVerbRe.FindStringIndex(line); loc != nil && loc[0] == 0 {
		return false
	}
	return jobTitleLineRe.MatchString(line)
}

// isJobHeaderCandidate 判断一行是否可能是新条目的职位行
func (e *ExperienceExtractor) isJobHeaderCandidate(line string) bool {
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	if cityStateRe.MatchString(line) {
		return false
	}
	if len(line) > 60 || len(strings.Fields(line)) > 7 {
		return false
	}
	if loc := actionVerbRe.FindStringIndex(line); loc != nil && loc[0] == 0 {
		return false
	}
	for _, sep := range headerSeparators {
		if strings.Contains(line, sep) {
			return true
		}
	}
	return jobTitleLineRe.MatchString(line)
}

// isPresentWord 判断词元是否为"在职"字样
func isPresentWord(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "present", "current", "now":
		return true
	}
	return false
}
