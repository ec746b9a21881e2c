package parser

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"

	"resume-parser-go/internal/types"
)

// Deduplicate 按派生键去重，保留每个键的首次出现并维持原有顺序
// 幂等：对已去重的序列再次去重得到相同结果
func Deduplicate[T any](items []T, keyFn func(T) string) []T {
	if len(items) == 0 {
		return items
	}

	seen := make(map[string]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := keyFn(item)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

// ExperienceKey 工作经历的去重键：小写的 "职位|公司"
func ExperienceKey(exp types.Experience) string {
	return strings.ToLower(exp.JobTitle + "|" + exp.Company)
}

// EducationKey 教育经历的去重键：小写的 "学校|学位"
func EducationKey(edu types.Education) string {
	return strings.ToLower(edu.School + "|" + edu.Degree)
}

// SkillKey 具名条目的去重键：小写并去除首尾空白的名称
func SkillKey(skill types.Skill) string {
	return strings.ToLower(strings.TrimSpace(skill.Name))
}

// StructuralKey 兜底的结构哈希键：对整个条目的规范JSON做FNV哈希
// 两个条目键相等当且仅当其序列化形态完全一致
func StructuralKey(item any) string {
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Sprintf("%+v", item)
	}
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%016x", h.Sum64())
}

// DedupExperiences 去重工作经历并按文档顺序重排ID
func DedupExperiences(items []types.Experience) []types.Experience {
	out := Deduplicate(items, ExperienceKey)
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// DedupEducation 去重教育经历并按文档顺序重排ID
func DedupEducation(items []types.Education) []types.Education {
	out := Deduplicate(items, EducationKey)
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}

// DedupSkills 去重技能并按文档顺序重排ID
func DedupSkills(items []types.Skill) []types.Skill {
	out := Deduplicate(items, SkillKey)
	for i := range out {
		out[i].ID = i + 1
	}
	return out
}
