package parser

import (
	"regexp"
	"strconv"
	"strings"

	"resume-parser-go/internal/types"
)

// 显式分页/分节标记行，形如 "=== PAGE 2 ===" 或 "=== SECTION 3 ==="
var pageMarkerRe = regexp.MustCompile(`^===\s*(?:PAGE|SECTION)\s+(\d+)\s*===$`)

// 疑似页码：整行只有一个1-3位的裸数字
var pageNumberLineRe = regexp.MustCompile(`^\d{1,3}$`)

// SegmentResult 分段结果
type SegmentResult struct {
	// Sections 章节类型到内容的映射
	// 同一类型的标题再次出现时内容会被覆盖（CONTACT除外，头部信息累加），
	// 单个内容块内的多条目拆分由对应的提取器负责
	Sections map[types.SectionKind]string

	// Spans 按文档顺序排列的全部章节区间（重复类型各自保留）
	Spans []types.SectionSpan

	// Pages 页号到页上下文的映射，仅在文档携带显式分页标记时非空
	Pages map[int]types.PageContext

	// MultiPage 文档是否为多页：存在显式分页标记，或出现多于一行的裸页码
	MultiPage bool
}

// SectionSegmenter 章节分段器
// 对整篇文本做一次线性扫描，使用行分类器的标题启发式把行区间归入逻辑章节
type SectionSegmenter struct {
	classifier *LineClassifier
}

// NewSectionSegmenter 创建章节分段器
func NewSectionSegmenter(classifier *LineClassifier) *SectionSegmenter {
	return &SectionSegmenter{classifier: classifier}
}

// Segment 将整篇简历文本切分为章节
// 首个标题之前的行归入合成的头部（CONTACT）区间；
// 分页标记行只进入分页簿记，不进入任何章节内容
func (s *SectionSegmenter) Segment(text string) *SegmentResult {
	// 统一换行符
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")

	result := &SegmentResult{
		Sections: make(map[types.SectionKind]string),
		Pages:    make(map[int]types.PageContext),
	}

	// 当前打开的章节
	currentKind := types.SectionContact
	currentTitle := ""
	spanStart := 0
	var buffer []string

	// 分页簿记
	sawPageMarker := false
	pageNumberLines := 0
	currentPage := 1
	pageStart := 0
	var pageBuffer []string

	flushSection := func(endLine int) {
		content := strings.TrimSpace(strings.Join(buffer, "\n"))
		if content == "" {
			return
		}
		result.Spans = append(result.Spans, types.SectionSpan{
			Kind:      currentKind,
			Title:     currentTitle,
			StartLine: spanStart,
			EndLine:   endLine,
			Content:   content,
		})
		if currentKind == types.SectionContact {
			// 头部信息可能分散在文首与显式的"Personal Information"块里，累加而非覆盖
			if prev, ok := result.Sections[types.SectionContact]; ok && prev != "" {
				result.Sections[types.SectionContact] = prev + "\n" + content
				return
			}
		}
		result.Sections[currentKind] = content
	}

	flushPage := func(endLine int) {
		content := strings.TrimSpace(strings.Join(pageBuffer, "\n"))
		if content == "" {
			return
		}
		result.Pages[currentPage] = types.PageContext{
			Content:   content,
			LineStart: pageStart,
			LineEnd:   endLine,
		}
	}

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		// 显式分页标记：关闭当前页，打开新页，标记行本身不进入内容
		if m := pageMarkerRe.FindStringSubmatch(trimmed); m != nil {
			sawPageMarker = true
			flushPage(i - 1)
			if n, err := strconv.Atoi(m[1]); err == nil {
				currentPage = n
			} else {
				currentPage++
			}
			pageStart = i + 1
			pageBuffer = pageBuffer[:0]
			continue
		}

		if pageNumberLineRe.MatchString(trimmed) {
			pageNumberLines++
		}
		pageBuffer = append(pageBuffer, line)

		// 标题行：关闭当前章节并打开新章节
		if kind, ok := s.classifier.MatchSectionHeader(trimmed); ok {
			flushSection(i - 1)
			currentKind = kind
			currentTitle = trimmed
			spanStart = i + 1
			buffer = buffer[:0]
			continue
		}

		buffer = append(buffer, line)
	}

	flushSection(len(lines) - 1)

	if sawPageMarker {
		flushPage(len(lines) - 1)
	} else {
		// 无显式标记时不产出分页上下文
		result.Pages = make(map[int]types.PageContext)
	}

	result.MultiPage = sawPageMarker || pageNumberLines > 1
	return result
}
