package parser

import (
	"strings"

	"resume-parser-go/internal/types"
)

// Config 解析器的可调启发式配置
// 零值即默认行为；阈值是可调的启发式参数，不是正确性保证
type Config struct {
	// CustomSectionKeywords 追加的章节关键词映射（章节类型 -> 同义词表）
	// 例如 {"SKILLS": ["tech stack"]}
	CustomSectionKeywords map[string][]string `yaml:"custom_section_keywords"`

	// MaxHeaderLen 章节标题判定的行长度上限
	MaxHeaderLen int `yaml:"max_header_len"`

	// MinSplitParagraphLen 段落启发式拆分的长度下限
	MinSplitParagraphLen int `yaml:"min_split_paragraph_len"`

	// MinBulletPieceLen 按标点拆分时单个片段的最小长度
	MinBulletPieceLen int `yaml:"min_bullet_piece_len"`
}

// ResumeParser 简历文本解析器
// 公共入口：对一段原始提取文本驱动 分段 -> 提取 -> 规范化 -> 去重 流水线
// 纯同步计算，不持有跨调用状态，可被多个goroutine并发调用
type ResumeParser struct {
	classifier  *LineClassifier
	segmenter   *SectionSegmenter
	splitter    *BulletSplitter
	contacts    *ContactExtractor
	experiences *ExperienceExtractor
	education   *EducationExtractor
	skills      *SkillExtractor
	normalizer  *Normalizer
}

// NewResumeParser 创建简历解析器
func NewResumeParser(cfg Config) *ResumeParser {
	classifier := NewLineClassifier(cfg.MaxHeaderLen, cfg.CustomSectionKeywords)
	return &ResumeParser{
		classifier:  classifier,
		segmenter:   NewSectionSegmenter(classifier),
		splitter:    NewBulletSplitter(cfg.MinSplitParagraphLen, cfg.MinBulletPieceLen),
		contacts:    NewContactExtractor(classifier),
		experiences: NewExperienceExtractor(classifier),
		education:   NewEducationExtractor(classifier),
		skills:      NewSkillExtractor(),
		normalizer:  NewNormalizer(),
	}
}

// Parse 把原始简历文本解析为结构化记录
// 空白输入返回全空的记录而非错误；无法归类的行会被静默排除在结构化字段之外
func (p *ResumeParser) Parse(text string) types.StructuredRecord {
	record := types.StructuredRecord{
		Experiences: []types.Experience{},
		Education:   []types.Education{},
		Skills:      []types.Skill{},
	}
	if strings.TrimSpace(text) == "" {
		return record
	}

	seg := p.segmenter.Segment(text)

	record.Contact = p.contacts.Extract(seg.Sections[types.SectionContact])
	if exps := p.experiences.Extract(seg.Sections[types.SectionExperience]); exps != nil {
		record.Experiences = exps
	}
	if edus := p.education.Extract(seg.Sections[types.SectionEducation]); edus != nil {
		record.Education = edus
	}
	if skills := p.skills.Extract(seg.Sections[types.SectionSkills]); skills != nil {
		record.Skills = skills
	}
	record.Summary = strings.TrimSpace(seg.Sections[types.SectionSummary])

	record = p.normalizer.NormalizeRecord(record)
	record.Experiences = DedupExperiences(record.Experiences)
	record.Education = DedupEducation(record.Education)
	return record
}

// Segment 暴露分段结果，供需要页级上下文的调用方使用
func (p *ResumeParser) Segment(text string) *SegmentResult {
	return p.segmenter.Segment(text)
}

// SplitIntoBullets 把一段描述文本拆成要点列表
func (p *ResumeParser) SplitIntoBullets(paragraph string) []string {
	return p.splitter.SplitIntoBullets(paragraph)
}

// Classifier 暴露行分类器，供复用相同关键词表的调用方使用
func (p *ResumeParser) Classifier() *LineClassifier {
	return p.classifier
}
