package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// "Key: Value" 形态的字段标签行，标签不区分大小写
// 较长的标签排在前面，避免"title"先于"desired job title"命中
var contactLabelRe = regexp.MustCompile(`(?i)^(full name|name|e-?mail|phone number|telephone|phone|tel|mobile|address|location|city|country|desired job title|desired title|job title|title|post ?code|zip code|zip)\s*[:：]\s*(.*)$`)

// 姓名行形态：仅字母及常见姓名标点
var nameLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*$`)

// 意向职位行形态
var jobTitleLineRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9 /&,.'()+-]*$`)

// "City, ST" 形态（两位州缩写）
var cityStateRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]+),\s*([A-Z]{2})$`)

// "City, Country" 形态
var cityCountryRe = regexp.MustCompile(`^([A-Z][A-Za-z .'-]+),\s*([A-Z][A-Za-z .'-]{2,})$`)

// ContactExtractor 联系方式提取器
// 作用于头部内容块：首个已识别章节之前的内容，加上显式的"Personal Information"块
type ContactExtractor struct {
	classifier *LineClassifier
}

// NewContactExtractor 创建联系方式提取器
func NewContactExtractor(classifier *LineClassifier) *ContactExtractor {
	return &ContactExtractor{classifier: classifier}
}

// Extract 从头部内容块提取联系方式
// 电话与邮箱扫描块内全部行并取各自的首个命中；
// 年份形态的词元绝不会作为电话值被接受，即使没有其他候选
func (e *ContactExtractor) Extract(block string) types.Contact {
	var contact types.Contact
	if strings.TrimSpace(block) == "" {
		return contact
	}

	rawLines := strings.Split(block, "\n")

	// 第一遍：全块扫描电话与邮箱
	for _, line := range rawLines {
		if contact.Email == "" {
			contact.Email = FindEmailToken(line)
		}
		if contact.Phone == "" {
			contact.Phone = FindPhoneToken(line)
		}
	}

	// 第二遍：处理"Key: Value"标签行
	nameLine := ""
	for _, line := range rawLines {
		m := contactLabelRe.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		label := strings.ToLower(m[1])
		value := strings.TrimSpace(m[2])
		if value == "" {
			continue
		}
		switch {
		case label == "name" || label == "full name":
			if nameLine == "" {
				nameLine = value
			}
		case label == "desired job title" || label == "desired title" || label == "job title" || label == "title":
			if contact.DesiredJobTitle == "" {
				contact.DesiredJobTitle = value
			}
		case label == "address":
			contact.Address = value
		case label == "city":
			contact.City = value
		case label == "country":
			contact.Country = value
		case label == "location":
			e.assignLocation(&contact, value)
		case strings.HasPrefix(label, "post") || strings.HasPrefix(label, "zip"):
			contact.PostCode = value
		}
	}

	// 第三遍：无标签时按位置推断姓名行与职位行
	nameIdx := -1
	if nameLine == "" {
		for i, line := range rawLines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if !e.isNameCandidate(trimmed) {
				continue
			}
			nameLine = trimmed
			nameIdx = i
			break
		}
	}

	if contact.DesiredJobTitle == "" && nameIdx >= 0 && nameIdx+1 < len(rawLines) {
		// 姓名行的下一行（两行之间不能有空行）可能是意向职位
		next := strings.TrimSpace(rawLines[nameIdx+1])
		if next != "" && e.isJobTitleCandidate(next) {
			contact.DesiredJobTitle = next
		}
	}

	// 未标注的"City, ST"或"City, Country"行
	if contact.City == "" {
		for _, line := range rawLines {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || contactLabelRe.MatchString(trimmed) {
				continue
			}
			if m := cityStateRe.FindStringSubmatch(trimmed); m != nil {
				contact.City = m[1]
				break
			}
		}
	}

	// 姓名按首个空白段切分：首词元为名，其余为姓，保留原始大小写
	if nameLine != "" {
		fields := strings.Fields(nameLine)
		contact.FirstName = fields[0]
		if len(fields) > 1 {
			contact.LastName = strings.Join(fields[1:], " ")
		}
	}

	return contact
}

// isNameCandidate 判断一行是否可能是姓名行
func (e *ContactExtractor) isNameCandidate(line string) bool {
	if _, header := e.classifier.MatchSectionHeader(line); header {
		return false
	}
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	if FindEmailToken(line) != "" || FindPhoneToken(line) != "" {
		return false
	}
	if contactLabelRe.MatchString(line) {
		return false
	}
	fields := strings.Fields(line)
	if len(fields) < 1 || len(fields) > 5 {
		return false
	}
	return nameLineRe.MatchString(line)
}

// isJobTitleCandidate 判断一行是否可能是意向职位行
func (e *ContactExtractor) isJobTitleCandidate(line string) bool {
	if _, header := e.classifier.MatchSectionHeader(line); header {
		return false
	}
	if IsBulletLine(line) || IsDateLike(line) {
		return false
	}
	if FindEmailToken(line) != "" || FindPhoneToken(line) != "" {
		return false
	}
	if contactLabelRe.MatchString(line) || cityStateRe.MatchString(line) {
		return false
	}
	if len(line) >= 60 || len(strings.Fields(line)) > 6 {
		return false
	}
	return jobTitleLineRe.MatchString(line)
}

// assignLocation 把location标签的值拆到City/Country字段
func (e *ContactExtractor) assignLocation(contact *types.Contact, value string) {
	if m := cityStateRe.FindStringSubmatch(value); m != nil {
		contact.City = m[1]
		return
	}
	if m := cityCountryRe.FindStringSubmatch(value); m != nil {
		contact.City = m[1]
		contact.Country = m[2]
		return
	}
	contact.City = value
}
