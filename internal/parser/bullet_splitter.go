package parser

import (
	"regexp"
	"sort"
	"strings"

	"resume-parser-go/internal/constants"
)

// 简历常见的动作动词词表，用于段落的动词边界拆分
// 固定词表：新增词条追加到末尾即可，拆分结果只取决于词条在文本中的出现位置
var actionVerbs = []string{
	"achieved", "architected", "automated", "built", "collaborated",
	"coordinated", "created", "delivered", "designed", "developed",
	"directed", "drove", "established", "implemented", "improved",
	"increased", "launched", "led", "maintained", "managed",
	"mentored", "optimized", "organized", "oversaw", "reduced",
	"spearheaded", "streamlined",
}

var (
	actionVerbRe = regexp.MustCompile(`(?i)\b(` + strings.Join(actionVerbs, "|") + `)\b`)

	// "Title: content" 形态的冒号子句起点
	colonClauseRe = regexp.MustCompile(`\b[A-Z][A-Za-z0-9 /&'-]{0,39}:\s+`)

	// 句号后跟大写字母的边界（手工切点，RE2不支持前瞻）
	periodCapRe = regexp.MustCompile(`\.\s+[A-Z]`)

	semicolonRe = regexp.MustCompile(`;\s*`)

	// 逗号后跟（可带and的）动作动词短语的边界
	commaVerbRe = regexp.MustCompile(`(?i),\s+(and\s+)?(` + strings.Join(actionVerbs, "|") + `)\b`)

	// 句末标点
	sentenceEndRe = regexp.MustCompile(`[.!?]+`)
)

// BulletSplitter 要点拆分器
// 把一段描述文本拆成要点列表：已含列表项的段落按标记拆分，
// 过长的纯段落按固定优先级的启发式策略拆分
type BulletSplitter struct {
	minParagraphLen int
	minPieceLen     int
}

// NewBulletSplitter 创建要点拆分器
// minParagraphLen 以下的段落不做启发式拆分，minPieceLen 约束按标点拆分时的片段长度
func NewBulletSplitter(minParagraphLen, minPieceLen int) *BulletSplitter {
	if minParagraphLen <= 0 {
		minParagraphLen = constants.DefaultMinSplitParagraphLen
	}
	if minPieceLen <= 0 {
		minPieceLen = constants.DefaultMinBulletPieceLen
	}
	return &BulletSplitter{
		minParagraphLen: minParagraphLen,
		minPieceLen:     minPieceLen,
	}
}

// SplitIntoBullets 把一段文本拆成有序的要点列表
// 策略按优先级尝试：冒号子句、动作动词边界、从句标点、句末标点；
// 第一个产出多于一个有效片段的策略生效，全部失败时原样返回单元素
func (s *BulletSplitter) SplitIntoBullets(paragraph string) []string {
	// 已含列表项：逐条剥离标记后原样输出
	if bullets := extractMarkedBullets(paragraph); len(bullets) > 0 {
		return bullets
	}

	// 折叠为单行段落
	flat := strings.Join(strings.Fields(paragraph), " ")
	if flat == "" {
		return nil
	}
	if len(flat) <= s.minParagraphLen {
		return []string{flat}
	}

	if pieces := splitColonClauses(flat); len(pieces) > 1 {
		return pieces
	}
	if pieces := splitOnActionVerbs(flat); len(pieces) > 1 {
		return pieces
	}
	if pieces := s.splitOnClausePunctuation(flat); len(pieces) > 2 {
		return pieces
	}
	if pieces := splitSentences(flat); len(pieces) > 1 {
		return pieces
	}

	return []string{flat}
}

// extractMarkedBullets 收集段落中所有列表项的内容
func extractMarkedBullets(paragraph string) []string {
	var bullets []string
	for _, line := range strings.Split(paragraph, "\n") {
		if IsBulletLine(line) {
			if content := BulletContent(line); content != "" {
				bullets = append(bullets, content)
			}
		}
	}
	return bullets
}

// splitColonClauses 按"Title: content"冒号子句拆分
// 只有找到多于一个子句起点时才拆
func splitColonClauses(flat string) []string {
	starts := colonClauseRe.FindAllStringIndex(flat, -1)
	if len(starts) < 2 {
		return nil
	}

	var cuts []int
	for _, loc := range starts {
		cuts = append(cuts, loc[0])
	}
	return cutAt(flat, cuts, 3)
}

// splitOnActionVerbs 按动作动词边界拆分
// 每个片段重整为"动词（首字母大写）: 其余内容"的形式
func splitOnActionVerbs(flat string) []string {
	matches := actionVerbRe.FindAllStringIndex(flat, -1)
	if len(matches) < 2 {
		return nil
	}

	var cuts []int
	for _, loc := range matches {
		cuts = append(cuts, loc[0])
	}

	segments := cutAt(flat, cuts, 3)
	var bullets []string
	for _, seg := range segments {
		fields := strings.Fields(seg)
		if len(fields) < 2 {
			continue
		}
		verb := capitalizeWord(strings.Trim(fields[0], ",.;"))
		rest := strings.Trim(strings.Join(fields[1:], " "), " ,.;")
		if rest == "" {
			continue
		}
		bullets = append(bullets, verb+": "+rest)
	}
	if len(bullets) < 2 {
		return nil
	}
	return bullets
}

// splitOnClausePunctuation 按从句标点拆分：
// 句号后跟大写、分号、逗号后跟动作动词短语
// 要求片段数多于2且每个片段不短于最小长度
func (s *BulletSplitter) splitOnClausePunctuation(flat string) []string {
	var cuts []int

	for _, loc := range periodCapRe.FindAllStringIndex(flat, -1) {
		// 在大写字母处切开，句号留给前一片段
		cuts = append(cuts, loc[1]-1)
	}
	for _, loc := range semicolonRe.FindAllStringIndex(flat, -1) {
		cuts = append(cuts, loc[1])
	}
	for _, loc := range commaVerbRe.FindAllStringSubmatchIndex(flat, -1) {
		// loc[4]是动词分组的起点，在动词处切开
		cuts = append(cuts, loc[4])
	}

	pieces := cutAt(flat, cuts, s.minPieceLen)
	if len(pieces) <= 2 {
		return nil
	}
	for _, piece := range pieces {
		if len(piece) < s.minPieceLen {
			return nil
		}
	}
	return pieces
}

// splitSentences 按句末标点拆分，最后的兜底策略
func splitSentences(flat string) []string {
	var cuts []int
	for _, loc := range sentenceEndRe.FindAllStringIndex(flat, -1) {
		if loc[1] < len(flat) {
			cuts = append(cuts, loc[1])
		}
	}
	return cutAt(flat, cuts, 3)
}

// cutAt 在给定的位置把文本切成片段，去除首尾空白与孤立的结尾标点，
// 丢弃短于minLen的琐碎片段
func cutAt(text string, cuts []int, minLen int) []string {
	if len(cuts) == 0 {
		return nil
	}
	sort.Ints(cuts)

	var pieces []string
	prev := 0
	appendPiece := func(raw string) {
		piece := strings.TrimSpace(raw)
		piece = strings.TrimRight(piece, ";,")
		piece = strings.TrimSpace(piece)
		if len(piece) >= minLen {
			pieces = append(pieces, piece)
		}
	}
	for _, cut := range cuts {
		if cut <= prev || cut >= len(text) {
			continue
		}
		appendPiece(text[prev:cut])
		prev = cut
	}
	appendPiece(text[prev:])
	return pieces
}

// capitalizeWord 首字母大写，其余小写
func capitalizeWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
}
