package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"resume-parser-go/internal/config"
	"resume-parser-go/internal/logger"
	"resume-parser-go/internal/parser"
	"resume-parser-go/internal/processor"
	"resume-parser-go/internal/types"
)

// 命令行参数定义
var (
	inputFile    = pflag.StringP("file", "f", "", "简历文本文件路径 (必填)")
	configPath   = pflag.StringP("config", "c", "", "配置文件路径")
	outputFormat = pflag.String("format", "json", "输出格式: json 或 text")
	withReport   = pflag.Bool("confidence", false, "同时输出解析置信度报告")
	sampleConfig = pflag.String("sample-config", "", "在指定路径生成示例配置文件后退出")
	debug        = pflag.Bool("debug", false, "开启调试日志")
)

func main() {
	pflag.Parse()

	if *sampleConfig != "" {
		if err := config.CreateSampleConfig(*sampleConfig); err != nil {
			fmt.Printf("生成示例配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("示例配置已写入: %s\n", *sampleConfig)
		return
	}

	if *inputFile == "" {
		fmt.Println("错误: 必须提供简历文本文件路径。使用 -f 或 --file 参数。")
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Logger.Level = "debug"
	}
	logger.Init(cfg.Logger)

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *inputFile).Msg("读取简历文本文件失败")
	}

	svc := processor.NewResumeService(cfg.Parser,
		nil,
		[]processor.SettingOpt{processor.WithsetDebug(*debug)},
	)

	record, err := svc.ParseTextToStructuredData(context.Background(), string(data))
	if err != nil {
		logger.Fatal().Err(err).Msg("解析简历文本失败")
	}

	var report *types.ConfidenceReport
	if *withReport {
		r := svc.CalculateParsingConfidence(record)
		report = &r
	}

	switch *outputFormat {
	case "json":
		printJSON(record, report)
	case "text":
		printText(cfg.Parser, record, report)
	default:
		fmt.Printf("错误: 未知输出格式 '%s'。支持的格式: json, text\n", *outputFormat)
		os.Exit(1)
	}
}

// printJSON 以JSON输出解析结果
func printJSON(record types.StructuredRecord, report *types.ConfidenceReport) {
	out := struct {
		Record     types.StructuredRecord  `json:"record"`
		Confidence *types.ConfidenceReport `json:"confidence,omitempty"`
	}{Record: record, Confidence: report}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		logger.Fatal().Err(err).Msg("序列化解析结果失败")
	}
	fmt.Println(string(data))
}

// printText 以易读文本输出解析结果，经历描述拆成要点列表展示
func printText(parserCfg parser.Config, record types.StructuredRecord, report *types.ConfidenceReport) {
	splitter := parser.NewBulletSplitter(parserCfg.MinSplitParagraphLen, parserCfg.MinBulletPieceLen)

	fmt.Printf("===== 联系方式 =====\n")
	fmt.Printf("姓名: %s %s\n", record.Contact.FirstName, record.Contact.LastName)
	if record.Contact.DesiredJobTitle != "" {
		fmt.Printf("意向职位: %s\n", record.Contact.DesiredJobTitle)
	}
	fmt.Printf("邮箱: %s\n电话: %s\n", record.Contact.Email, record.Contact.Phone)

	if record.Summary != "" {
		fmt.Printf("\n===== 个人总结 =====\n%s\n", record.Summary)
	}

	fmt.Printf("\n===== 工作经历 (%d) =====\n", len(record.Experiences))
	for _, exp := range record.Experiences {
		fmt.Printf("[%d] %s @ %s (%s - %s) %s\n", exp.ID, exp.JobTitle, exp.Company, exp.StartDate, exp.EndDate, exp.Location)
		for _, bullet := range splitter.SplitIntoBullets(exp.Description) {
			fmt.Printf("  • %s\n", bullet)
		}
	}

	fmt.Printf("\n===== 教育经历 (%d) =====\n", len(record.Education))
	for _, edu := range record.Education {
		fmt.Printf("[%d] %s, %s (%s - %s)\n", edu.ID, edu.Degree, edu.School, edu.StartDate, edu.EndDate)
	}

	fmt.Printf("\n===== 技能 (%d) =====\n", len(record.Skills))
	for _, skill := range record.Skills {
		if skill.Level != "" {
			fmt.Printf("- %s (%s)\n", skill.Name, skill.Level)
		} else {
			fmt.Printf("- %s\n", skill.Name)
		}
	}

	if report != nil {
		fmt.Printf("\n===== 置信度 =====\n总分: %d/100\n", report.OverallScore)
		fmt.Printf("已识别: %v\n缺失: %v\n", report.SectionsFound, report.MissingSections)
		for _, s := range report.Suggestions {
			fmt.Printf("建议: %s\n", s)
		}
	}
}
