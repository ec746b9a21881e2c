package parser

import (
	"regexp"
	"strings"

	"resume-parser-go/internal/types"
)

// "Name (Level)" 形态的括号熟练度后缀
var parenLevelRe = regexp.MustCompile(`^(.+?)\s*\(([^()]+)\)$`)

// "Name vNN" 形态的版本后缀
var versionLevelRe = regexp.MustCompile(`(?i)^(.+?)\s+(v\d+(?:\.\d+)*)$`)

// SkillExtractor 技能提取器
// 技能块按逗号/分号/竖线/换行切成候选词元
type SkillExtractor struct{}

// NewSkillExtractor 创建技能提取器
func NewSkillExtractor() *SkillExtractor {
	return &SkillExtractor{}
}

// Extract 从技能内容块提取技能列表
// 每个词元解析可选的括号熟练度（"JavaScript (Advanced)"）
// 或尾随版本词元（"React v18"），两者都没有时Level为空
func (e *SkillExtractor) Extract(block string) []types.Skill {
	if strings.TrimSpace(block) == "" {
		return nil
	}

	tokens := strings.FieldsFunc(block, func(r rune) bool {
		return r == ',' || r == ';' || r == '|' || r == '\n'
	})

	var skills []types.Skill
	for _, token := range tokens {
		token = BulletContent(token)
		if token == "" || len(token) < 2 || len(token) > 50 {
			continue
		}

		name, level := splitSkillToken(token)
		if name == "" {
			continue
		}
		skills = append(skills, types.Skill{
			ID:    len(skills) + 1,
			Name:  name,
			Level: level,
		})
	}
	return skills
}

// splitSkillToken 把一个技能词元切成名称与可选的熟练度/版本
func splitSkillToken(token string) (string, string) {
	if m := parenLevelRe.FindStringSubmatch(token); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	if m := versionLevelRe.FindStringSubmatch(token); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return token, ""
}
