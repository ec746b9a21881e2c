package processor

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"resume-parser-go/internal/constants"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/types"
)

// Components 聚合全部功能组件依赖，便于集中管理和测试替换
type Components struct {
	Parser TextParser       // 简历文本解析接口
	Scorer ConfidenceScorer // 置信度评分接口
}

// Settings 纯配置项，不包含任何业务逻辑组件
type Settings struct {
	Debug  bool           // 是否开启调试模式
	Logger zerolog.Logger // 日志记录器
}

// ResumeService 简历解析服务
// 在纯解析内核外套一层：每次调用分配解析UUID、记录结构化日志、
// 把硬性前置条件违规转换为类型化错误
type ResumeService struct {
	Components
	Settings
}

// NewResumeService 创建简历解析服务
// 未显式注入的组件使用默认实现
func NewResumeService(cfg parser.Config, compOpts []ComponentOpt, setOpts []SettingOpt) *ResumeService {
	svc := &ResumeService{
		Settings: Settings{
			Logger: logger.Logger,
		},
	}

	for _, opt := range setOpts {
		opt(&svc.Settings)
	}
	for _, opt := range compOpts {
		opt(&svc.Components)
	}

	if svc.Parser == nil {
		svc.Parser = parser.NewResumeParser(cfg)
	}
	if svc.Scorer == nil {
		svc.Scorer = ScorerFunc(parser.CalculateParsingConfidence)
	}

	return svc
}

// ParseTextToStructuredData 把原始提取文本解析为结构化简历记录
// 空/纯空白输入返回全空记录而非错误；唯一的失败类别是硬性前置条件违规
// （非法UTF-8或含NUL字节的输入），此时返回 ErrInvalidInput 类的错误
func (s *ResumeService) ParseTextToStructuredData(ctx context.Context, text string) (types.StructuredRecord, error) {
	parseUUID := uuid.NewString()

	if !utf8.ValidString(text) {
		return types.StructuredRecord{}, NewInvalidInputError(parseUUID, "非法的UTF-8编码")
	}
	if strings.ContainsRune(text, 0) {
		return types.StructuredRecord{}, NewInvalidInputError(parseUUID, "输入包含NUL字节")
	}

	if s.Debug {
		s.Logger.Debug().
			Str("parse_uuid", parseUUID).
			Int("input_chars", len(text)).
			Str("input_head", logger.SafeResumeText(text)).
			Msg("开始解析简历文本")
	}

	record := s.Parser.Parse(text)

	if s.Debug {
		s.Logger.Debug().
			Str("parse_uuid", parseUUID).
			Str("email", logger.MaskPII(record.Contact.Email)).
			Str("phone", logger.MaskPII(record.Contact.Phone)).
			Msg("联系方式提取结果")
	}

	s.Logger.Info().
		Str("parse_uuid", parseUUID).
		Str("parser_ver", constants.DefaultParserVer).
		Int("experiences", len(record.Experiences)).
		Int("education", len(record.Education)).
		Int("skills", len(record.Skills)).
		Bool("has_email", record.Contact.Email != "").
		Bool("has_phone", record.Contact.Phone != "").
		Msg("简历解析完成")

	return record, nil
}

// CalculateParsingConfidence 对已有的结构化记录单独计算置信度
// 外部编辑结构化数据之后可以直接调用，无需重新解析
func (s *ResumeService) CalculateParsingConfidence(record types.StructuredRecord) types.ConfidenceReport {
	return s.Scorer.Score(record)
}
