package constants

const (
	// Application-level constants
	DefaultParserVer = "1.0"

	// 章节标题判定：超过该长度的行不再视为候选标题，除非关键词位于行首
	DefaultMaxHeaderLen = 50

	// 段落拆分：低于该长度的段落不做启发式拆分
	DefaultMinSplitParagraphLen = 160

	// 段落按标点拆分时，单个片段的最小长度
	DefaultMinBulletPieceLen = 12

	// 置信度清单中每个检查项的权重
	SectionScoreWeight = 20
)

// 置信度清单中的固定章节名称
const (
	ChecklistContact     = "contact"
	ChecklistExperiences = "experiences"
	ChecklistEducation   = "education"
	ChecklistSkills      = "skills"
	ChecklistSummary     = "summary"
)
