package types

// SectionKind 表示简历章节类型
type SectionKind string

const (
	// SectionContact 联系方式/头部信息章节
	SectionContact SectionKind = "CONTACT"
	// SectionExperience 工作经历章节
	SectionExperience SectionKind = "EXPERIENCE"
	// SectionEducation 教育经历章节
	SectionEducation SectionKind = "EDUCATION"
	// SectionSkills 技能章节
	SectionSkills SectionKind = "SKILLS"
	// SectionSummary 个人总结章节
	SectionSummary SectionKind = "SUMMARY"
	// SectionOther 其他章节
	SectionOther SectionKind = "OTHER"
	// SectionUnknown 未分类内容章节
	SectionUnknown SectionKind = "UNKNOWN"
)

// SectionSpan 简历章节区间
// 由分段器产出，章节之间互不重叠
type SectionSpan struct {
	Kind      SectionKind // 章节类型
	Title     string      // 实际的章节标题行（合成的头部区间为空）
	StartLine int         // 起始行号（0起）
	EndLine   int         // 结束行号（含）
	Content   string      // 章节内容（按行拼接）
}

// PageContext 单页的上下文信息，仅在文档携带显式分页标记时产出
type PageContext struct {
	Content   string // 该页的原始文本
	LineStart int    // 页起始行号
	LineEnd   int    // 页结束行号
}

// LineFacts 单行文本的形态特征，由行分类器产出
type LineFacts struct {
	IsBullet            bool // 是否为列表项
	IsPhoneLike         bool // 是否包含电话号码形态的片段
	IsDateLike          bool // 是否包含日期/日期区间形态的片段
	IsEmailLike         bool // 是否包含邮箱地址
	IsSectionHeaderLike bool // 是否疑似章节标题
}

// Contact 联系方式信息块
// 姓名由单独的"姓名行"按空白切分得到：首个词元为FirstName，其余为LastName
type Contact struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DesiredJobTitle string `json:"desiredJobTitle"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Country         string `json:"country,omitempty"`
	City            string `json:"city,omitempty"`
	Address         string `json:"address,omitempty"`
	PostCode        string `json:"postCode,omitempty"`
}

// Experience 单条工作经历
// ID在一次解析内按文档顺序从1开始单调递增
type Experience struct {
	ID          int    `json:"id"`
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"` // 在职时为规范化后的"Present"
	Description string `json:"description,omitempty"`
}

// Education 单条教育经历
type Education struct {
	ID          int    `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description,omitempty"`
}

// Skill 单项技能
// Level 可以是熟练程度词（如"Advanced"）或版本形态词元（如"v18"）
type Skill struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level,omitempty"`
}

// StructuredRecord 一次解析得到的完整结构化简历记录
type StructuredRecord struct {
	Contact     Contact      `json:"contact"`
	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`
	Skills      []Skill      `json:"skills"`
	Summary     string       `json:"summary"`
}

// ConfidenceReport 解析置信度报告
// OverallScore 为0-100的完整度分数，按五项清单每项20分累加
type ConfidenceReport struct {
	OverallScore    int      `json:"overall_score"`
	SectionsFound   []string `json:"sections_found"`
	MissingSections []string `json:"missing_sections"`
	Suggestions     []string `json:"suggestions"`
}
